package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ucall-rpc/ucall-go/cmd/call"
)

const (
	Version = "0.1.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "ucall",
		Short: "JSON-RPC socket client",
		Long: fmt.Sprintf(`ucall (v%s)

A client for JSON-RPC servers speaking over plain or TLS sockets,
framed HTTP-style or with NUL-terminated raw frames.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ucall",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ucall v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(call.CallCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
