package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lendbook/handler"
	"lendbook/handler/hc"
	"lendbook/worker/auditor"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run lendbook api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		store := provideKVStore()
		defer store.Close()

		reg := provideRegistry()
		module := provideModule(store, provideEventBus(), reg)

		if audit, _ := cmd.Flags().GetBool("audit"); audit {
			w, err := auditor.New(provideConfig().Auditor, store)
			if err != nil {
				logrus.WithError(err).Fatal("init auditor failed")
			}

			_ = w.Start()
			defer w.Stop()
		}

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version, store))
		}

		{
			// metrics
			mux.Mount("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		}

		{
			//restful api
			svr := handler.New(provideSession(), module)
			mux.Mount("/", svr.HandleRestAPI())
		}

		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
	serverCmd.Flags().Bool("audit", false, "run the balance auditor in process")
}
