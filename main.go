package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mybooks/mybooks/config"
	"github.com/mybooks/mybooks/log"
	"github.com/mybooks/mybooks/server"
	"github.com/mybooks/mybooks/store"
	"github.com/mybooks/mybooks/store/db"
	"github.com/mybooks/mybooks/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:     "mybooks",
		Short:   "MyBooks is a bookstore management API",
		Version: version.GetCurrentVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.GetConfig(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger := log.New(opts)
			defer logger.Sync()

			session, err := db.NewCassandra(opts)
			if err != nil {
				logger.Error("Error connecting to cassandra", zap.Error(err))
				return err
			}
			defer session.Close()

			st := store.NewStore(session, logger)
			if err := st.Ping(cmd.Context()); err != nil {
				logger.Error("Error pinging cassandra", zap.Error(err))
				return err
			}

			srv := server.StartServer(opts, st, logger)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			logger.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Error shutting down server", zap.Error(err))
				return err
			}
			return nil
		},
	}
)

func main() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to the configuration file")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
