// Package lifecycle orchestrates the bootstrap of extension units.
//
// The Coordinator owns the readiness barrier and the extension loader.
// It drives the init → loading → waiting → ready state machine: units
// are loaded strictly in resolver order, each hook may register
// asynchronous work through the context it receives, and the
// coordinator reports ready exactly once when loading has finished and
// every registered task has completed. When nothing is pending at the
// end of loading the waiting state is skipped.
//
//	coord, err := lifecycle.New(cfg, nil, hooks)
//	if err != nil {
//	    return err
//	}
//	defer coord.Close()
//	if err := coord.Load(); err != nil {
//	    return err
//	}
//	coord.OnReady(func() { server.AcceptTraffic() })
//
// A synchronous hook failure aborts the whole bootstrap; asynchronous
// failures that escape their hook are normalized, logged through the
// coordinator's handler, and never block readiness.
package lifecycle
