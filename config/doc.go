// Package config provides configuration loading and validation for
// bootkit coordinators.
//
// Configuration is read from YAML files via viper with environment
// variable overrides and optional .env files. Construction arguments
// are validated before the bootstrap starts; a validation failure is
// surfaced as a CONFIGURATION_INVALID error and the lifecycle never
// leaves its initial state.
//
//	name: my-service
//	kind: app
//	base_dir: ./units
//	watchdog_delay: 10s
//	units:
//	  - db
//	  - cache
//	  - api
package config
