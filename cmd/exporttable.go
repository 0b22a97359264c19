package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Peter6188/tb-visualization-dashboard-V2/export"
	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
	"github.com/Peter6188/tb-visualization-dashboard-V2/store"
)

var exportTableCmd = &cobra.Command{
	Use:   "export-table",
	Short: "Write the aggregated country data table as an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, _, err := loadAtlas()
		if err != nil {
			return err
		}

		sel := schema.Selection{
			YearStart: viper.GetInt("table_year_start"),
			YearEnd:   viper.GetInt("table_year_end"),
			Regions:   viper.GetStringSlice("table_regions"),
		}
		if sel.YearStart == 0 || sel.YearEnd == 0 {
			years := dataset.Years()
			if len(years) == 0 {
				return fmt.Errorf("dataset has no rows")
			}
			if sel.YearStart == 0 {
				sel.YearStart = years[0]
			}
			if sel.YearEnd == 0 {
				sel.YearEnd = years[len(years)-1]
			}
		}
		if err := sel.Validate(); err != nil {
			return err
		}

		engine := store.NewFilterEngine(dataset, 0)
		rows := stats.CountryTable(engine.Filter(sel))

		path := viper.GetString("table_output")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("fail to create table file %s: %w", path, err)
		}
		defer f.Close()

		if err := export.WriteTableXLSX(f, rows); err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"prefix": "export",
			"path":   path,
			"rows":   len(rows),
		}).Info("data table written")

		return nil
	},
}

func init() {
	exportTableCmd.Flags().Int("year-start", 0, "first year to include (default: earliest in dataset)")
	exportTableCmd.Flags().Int("year-end", 0, "last year to include (default: latest in dataset)")
	exportTableCmd.Flags().StringSlice("regions", nil, "region codes to include (default: all)")
	exportTableCmd.Flags().String("output", "tb_burden_table.xlsx", "output XLSX file")

	viper.BindPFlag("table_year_start", exportTableCmd.Flags().Lookup("year-start"))
	viper.BindPFlag("table_year_end", exportTableCmd.Flags().Lookup("year-end"))
	viper.BindPFlag("table_regions", exportTableCmd.Flags().Lookup("regions"))
	viper.BindPFlag("table_output", exportTableCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(exportTableCmd)
}
