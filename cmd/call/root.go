package call

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ucall-rpc/ucall-go/cmd/util"
	"github.com/ucall-rpc/ucall-go/rpc/client"
	"github.com/ucall-rpc/ucall-go/rpc/common"
)

var (
	rpcClient *client.Client

	// CallCommands represents the call command group
	CallCommands = &cobra.Command{
		Use:               "call",
		Short:             "Invoke methods on a ucall server",
		PersistentPreRunE: setupClient,
	}

	invokeCmd = &cobra.Command{
		Use:   "invoke [method] [params...]",
		Short: "Invoke a method with positional parameters",
		Long: util.WrapString("Invokes a method on the configured server. Each parameter is " +
			"parsed as a JSON value; parameters that do not parse are passed as strings."),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := args[0]
			params := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				params = append(params, parseParam(arg))
			}

			res, err := rpcClient.Call(method, common.Positional(params...))
			if err != nil {
				return err
			}

			value, err := res.JSON()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the call command group
	util.SetupClientFlags(CallCommands)

	// Add subcommands
	CallCommands.AddCommand(invokeCmd)
	CallCommands.AddCommand(perfCmd)
}

// setupClient builds the client from flags and environment
func setupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	rpcClient, err = util.NewClient()
	return err
}

// parseParam interprets an argument as a JSON value, falling back to a
// plain string
func parseParam(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}
