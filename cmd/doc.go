// Package cmd implements the command line interface of the ucall client.
// The call command group invokes methods against a configured server and
// carries a benchmark subcommand; configuration flows through cobra flags
// bound to viper with an UCALL_-prefixed environment namespace and optional
// .env files.
package cmd
