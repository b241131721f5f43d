package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/runtime/terminal/export"
)

func NewCardsCmd(reporter *export.Reporter) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Print month-to-date and year-to-date revenue cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := flags.engine()
			if err != nil {
				return err
			}
			records, err := flags.loadBookings()
			if err != nil {
				return err
			}

			today := time.Now()
			return reporter.HandleCards([]domain.RevenueCard{
				engine.MonthToDateCard(records, today),
				engine.YearToDateCard(records, today),
			})
		},
	}

	flags.register(cmd)
	return cmd
}
