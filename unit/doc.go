// Package unit defines extension units and their initialization hooks.
//
// A Unit is a discrete extension directory contributing optional
// initialization hooks, one per context kind ("app" or "agent"). The
// ordered unit sequence comes from a Resolver; the order is
// authoritative and already encodes any dependency constraints, so
// nothing in this package reorders it.
//
// Hooks are well-typed extension-point capabilities: plain functions
// receiving the lifecycle context, resolved ahead of invocation
// through a Source. The Registry is the standard Source: units
// register their hooks by path and kind, and absence of a hook for a
// given kind is a skip, never an error.
package unit
