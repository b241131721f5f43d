package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oohdesk/revenue-atlas/pkg/runtime/terminal/export"
	"github.com/oohdesk/revenue-atlas/pkg/services/report"
)

func NewChartCmd(reporter *export.Reporter) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render per-group revenue totals in lac units",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := flags.engine()
			if err != nil {
				return err
			}
			q, err := flags.query(time.Now())
			if err != nil {
				return err
			}
			records, err := flags.loadBookings()
			if err != nil {
				return err
			}

			totals := engine.Aggregate(cmd.Context(), records, q)
			series := report.BuildChartSeries(totals)

			title := fmt.Sprintf("Revenue by %s (%s)", q.Dimension.Label(), q.Mode)
			return reporter.HandleChart(title, series)
		},
	}

	flags.register(cmd)
	flags.registerSelection(cmd)
	return cmd
}
