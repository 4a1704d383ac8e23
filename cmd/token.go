package cmd

import (
	"time"

	"lendbook/service/session"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "sign an access token for an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, _ := cmd.Flags().GetString("account")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := session.IssueToken(provideConfig().Session, account, ttl)
		if err != nil {
			return err
		}

		cmd.Println(token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().String("account", "", "account id, the token subject")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("account")
}
