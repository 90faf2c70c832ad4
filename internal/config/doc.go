// Package config provides application configuration loaded from YAML files
// and environment variables, plus the canonical filesystem layout.
//
// Configuration is layered: defaults, then an optional config.yaml, then
// FLIGHTPULSE_* environment variables, which win. The Paths type is the
// single source of truth for where data, reports, charts and logs live on
// disk, always resolved relative to the executable directory.
package config
