// Package config assembles the runtime configuration of the campustrade
// CLI from three layers: built-in defaults, an optional JSON file, and
// command-line flags. Later layers override earlier ones.
package config
