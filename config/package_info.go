// Package config contains the configuration of the jsoncompare command and comparison service.
//
// Configuration can come from a gcfg file (LoadConfigFile), from environment variables
// (LoadConfigFromEnvironment), or both; the environment is applied on top of whatever the file set.
// Unset optional values are filled in by the code that uses them, from the Default constants in this
// package.
package config
