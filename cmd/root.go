package cmd

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Peter6188/tb-visualization-dashboard-V2/geo"
	"github.com/Peter6188/tb-visualization-dashboard-V2/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tb-atlas",
	Short: "Global TB burden dashboard and map exporter",
	Long: `tb-atlas loads the WHO TB burden dataset and world boundary geometry
and serves an interactive dashboard, or exports a static choropleth map or
an aggregated data table.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(initConfig)
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./tb-atlas.yaml)")
	rootCmd.PersistentFlags().String("data", "1-TB_Burden_Country.csv", "path to the TB burden CSV file")
	rootCmd.PersistentFlags().String("boundaries", "world-countries.json", "path to the world boundary GeoJSON file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("boundaries", rootCmd.PersistentFlags().Lookup("boundaries"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tb-atlas")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("tb_atlas")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("config", viper.ConfigFileUsed()).Info("config file loaded")
	}

	level, err := log.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// loadAtlas opens the dataset and boundary files named by configuration.
// Either failing is fatal: the process has nothing to serve without them.
func loadAtlas() (*store.Dataset, *geo.Boundaries, error) {
	dataset, err := store.LoadDataset(viper.GetString("data"))
	if err != nil {
		return nil, nil, err
	}

	boundaries, err := geo.LoadBoundaries(viper.GetString("boundaries"))
	if err != nil {
		return nil, nil, err
	}

	geo.SetCoordinateSearcher(geo.NewStaticSearcher())

	return dataset, boundaries, nil
}
