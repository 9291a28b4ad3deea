// Package config defines the application configuration model and its
// loading logic. Values come from an optional YAML file and environment
// variables with the DAYLEX_ prefix; environment variables win.
package config
