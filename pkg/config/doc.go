// Package config handles configuration management for builder-doctor.
// Values are layered from embedded TOML defaults, an optional user file
// ($XDG_CONFIG_HOME/builder-doctor/config.toml), an optional project file
// (.builder-doctor.toml or .builder-doctor.yaml) and BUILDER_DOCTOR_ environment
// variables, in that order.
package config
