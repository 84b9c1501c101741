// Package commands defines the munkres CLI.
//
// Commands
//
//   - solve    Solve an assignment problem read from a YAML/JSON(C) file
//   - random   Print a seeded random cost matrix
//   - verify   Cross-check the solver against brute force on random matrices
//
// # Implementation
//
// The root command loads the configuration file (--config), applies the
// environment overrides and builds the zap logger before any subcommand
// runs. Subcommand flags override configuration values only when set.
package commands
