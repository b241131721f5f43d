package main

import (
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oohdesk/revenue-atlas/pkg/server"
	"github.com/oohdesk/revenue-atlas/pkg/services/booking"
	"github.com/oohdesk/revenue-atlas/pkg/services/config"
	"github.com/oohdesk/revenue-atlas/pkg/services/report"
	"github.com/oohdesk/revenue-atlas/pkg/store/bookingsql"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Revenue Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlx.Connect("mysql", cfg.BookingsDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to bookings database: %w", err)
	}
	defer db.Close()

	engine := report.NewEngine(report.Options{
		Policy:            cfg.Policy(),
		SingleCountSpaces: cfg.SingleCountSpaces,
	})

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Bookings: booking.NewExplorer(bookingsql.NewStore(db)),
			Engine:   engine,
		},
	})

	return webAPI.Start()
}
