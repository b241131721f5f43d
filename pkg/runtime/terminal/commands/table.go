package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oohdesk/revenue-atlas/pkg/runtime/terminal/export"
)

func NewTableCmd(reporter *export.Reporter) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render the revenue pivot table for a time window and dimension",
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
			table := engine.BuildPivotTable(totals, q)

			title := fmt.Sprintf("Revenue by %s (%s)", q.Dimension.Label(), q.Mode)
			return reporter.HandleTable(title, table)
		},
	}

	flags.register(cmd)
	flags.registerSelection(cmd)
	return cmd
}
