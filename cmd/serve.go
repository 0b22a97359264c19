package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Peter6188/tb-visualization-dashboard-V2/api"
	"github.com/Peter6188/tb-visualization-dashboard-V2/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive TB burden dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, boundaries, err := loadAtlas()
		if err != nil {
			return err
		}

		ttl := viper.GetDuration("cache_ttl")
		atlas := &api.AtlasContext{
			Dataset:    dataset,
			Engine:     store.NewFilterEngine(dataset, ttl),
			Boundaries: boundaries,
		}

		server := api.NewServer(atlas, viper.GetBool("trace"))

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		addr := viper.GetString("listen")
		log.WithField("addr", addr).Info("dashboard listening")

		if err := server.Run(ctx, addr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("listen", ":8050", "bind address for the dashboard server")
	serveCmd.Flags().Duration("cache-ttl", store.DefaultCacheTTL, "filter cache expiry (0 disables)")
	serveCmd.Flags().Bool("trace", false, "dump incoming requests")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("cache_ttl", serveCmd.Flags().Lookup("cache-ttl"))
	viper.BindPFlag("trace", serveCmd.Flags().Lookup("trace"))

	rootCmd.AddCommand(serveCmd)
}
