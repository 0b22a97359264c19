package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Peter6188/tb-visualization-dashboard-V2/export"
	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

var exportMapCmd = &cobra.Command{
	Use:   "export-map",
	Short: "Write a self-contained HTML choropleth map for the latest year",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, boundaries, err := loadAtlas()
		if err != nil {
			return err
		}

		metric, err := schema.ParseMetricKind(viper.GetString("map_metric"))
		if err != nil {
			return err
		}

		return export.WriteMapHTML(viper.GetString("map_output"), dataset, boundaries, metric)
	},
}

func init() {
	exportMapCmd.Flags().String("metric", string(schema.MetricPrevalence), "metric to map (prevalence, mortality, incidence)")
	exportMapCmd.Flags().String("output", "tb_prevalence_map.html", "output HTML file")

	viper.BindPFlag("map_metric", exportMapCmd.Flags().Lookup("metric"))
	viper.BindPFlag("map_output", exportMapCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(exportMapCmd)
}
