package commands

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"

	"github.com/oohdesk/revenue-atlas/pkg/adapters"
	"github.com/oohdesk/revenue-atlas/pkg/store/bookingsql"
)

// NewSeedCmd loads a bookings JSON file into the bookings schema,
// minting ids for records that come in without them.
func NewSeedCmd() *cobra.Command {
	flags := &reportFlags{}
	var dsn string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a bookings JSON file into the bookings database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := flags.loadBookings()
			if err != nil {
				return err
			}

			db, err := sqlx.Connect("mysql", dsn)
			if err != nil {
				return fmt.Errorf("failed to connect to bookings database: %w", err)
			}
			defer db.Close()

			store := bookingsql.NewStore(db)
			for _, rec := range records {
				if _, err := store.InsertBooking(cmd.Context(), adapters.MapDomainBookingToStore(rec)); err != nil {
					return err
				}
			}

			cmd.Printf("seeded %d bookings\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Path to a bookings JSON file (required)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "MySQL DSN of the bookings database (required)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("dsn")
	return cmd
}
