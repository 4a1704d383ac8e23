package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"lendbook/handler/render"
	"lendbook/handler/views"
	"lendbook/pkg/resthttp"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "call a running lendbook api server",
}

func provideClient(cmd *cobra.Command) *resthttp.Client {
	host, _ := cmd.Flags().GetString("host")
	token, _ := cmd.Flags().GetString("token")
	return resthttp.New(host, token)
}

func printData(cmd *cobra.Command, data json.RawMessage) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		cmd.Println(string(data))
		return
	}

	out, _ := json.MarshalIndent(v, "", "  ")
	cmd.Println(string(out))
}

var clientGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "GET an api path, eg /api/assets/1",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data json.RawMessage
		if err := provideClient(cmd).Execute(cmd.Context(), http.MethodGet, args[0], nil, &data); err != nil {
			return err
		}

		printData(cmd, data)
		return nil
	},
}

var clientPostCmd = &cobra.Command{
	Use:   "post <path> <json body>",
	Short: "POST a json body to an api path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data json.RawMessage
		body := json.RawMessage(args[1])
		if err := provideClient(cmd).Execute(cmd.Context(), http.MethodPost, args[0], body, &data); err != nil {
			return err
		}

		printData(cmd, data)
		return nil
	},
}

var clientBalanceCmd = &cobra.Command{
	Use:   "balance <asset> <account>",
	Short: "show the balance of an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := cast.ToUint64E(args[0])
		if err != nil {
			return err
		}

		var b views.Balance
		url := fmt.Sprintf("/api/balances/%d/%s", asset, args[1])
		if err := provideClient(cmd).Execute(cmd.Context(), http.MethodGet, url, nil, &b); err != nil {
			return err
		}

		cmd.Printf("balance %s free %s reserved %s\n", b.Balance, b.Free, b.Reserved)
		return nil
	},
}

var clientTransferCmd = &cobra.Command{
	Use:   "transfer <asset> <to> <value>",
	Short: "transfer value of asset from the token holder to another account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := cast.ToUint64E(args[0])
		if err != nil {
			return err
		}

		body := render.H{"asset": asset, "to": args[1], "value": args[2]}
		if err := provideClient(cmd).Execute(cmd.Context(), http.MethodPost, "/api/transfers", body, nil); err != nil {
			return err
		}

		cmd.Println("ok")
		return nil
	},
}

var clientSetPriceCmd = &cobra.Command{
	Use:   "set-price <asset> <price>",
	Short: "set the price of an asset, admin only",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := cast.ToUint64E(args[0])
		if err != nil {
			return err
		}

		body := render.H{"asset": asset, "price": args[1]}
		if err := provideClient(cmd).Execute(cmd.Context(), http.MethodPost, "/api/prices", body, nil); err != nil {
			return err
		}

		cmd.Println("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientCmd)
	clientCmd.PersistentFlags().String("host", "http://localhost:9000", "api server address")
	clientCmd.PersistentFlags().String("token", "", "access token")

	clientCmd.AddCommand(clientGetCmd)
	clientCmd.AddCommand(clientPostCmd)
	clientCmd.AddCommand(clientBalanceCmd)
	clientCmd.AddCommand(clientTransferCmd)
	clientCmd.AddCommand(clientSetPriceCmd)
}
