package cmd

import (
	"lendbook/worker/auditor"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "run the balance auditor against the configured store",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		store := provideKVStore()
		defer store.Close()

		w, err := auditor.New(provideConfig().Auditor, store)
		if err != nil {
			log.WithError(err).Fatal("init auditor failed")
		}

		if once, _ := cmd.Flags().GetBool("once"); once {
			violations, err := w.Audit(ctx)
			if err != nil {
				log.WithError(err).Fatal("audit failed")
			}

			cmd.Printf("%d violations\n", len(violations))
			return
		}

		ctx = signal.WithContext(ctx)
		_ = w.Start()
		<-ctx.Done()
		_ = w.Stop()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
	workerCmd.Flags().Bool("once", false, "audit once and exit")
}
