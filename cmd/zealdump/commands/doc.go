// Package commands defines the zealdump CLI.
//
// Commands
//
//   - dump    Pull the save cartridge contents over serial into a .sav file
//
// # Implementation
//
// The root command resolves the effective options before any subcommand
// runs: built-in defaults, overlaid by the TOML config file (--config),
// overlaid by explicit flags. Logging goes to stderr so stdout carries only
// the dump output.
package commands
