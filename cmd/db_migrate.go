package cmd

import (
	"lendbook/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/spf13/cobra"
)

// creates the kv_entries table used by the sql store engine
var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Aliases: []string{"setdb"},
	Short:   "migrate the sql store tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Store.Engine != core.StoreEngineSQL {
			cmd.PrintErrf("store engine is %q, nothing to migrate\n", cfg.Store.Engine)
			return nil
		}

		database := provideDatabase()
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			return err
		}

		cmd.Println("kv_entries migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
