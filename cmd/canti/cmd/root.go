package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrparsing/suggerimento-canti/internal/app"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "canti",
	Short: "canti — liturgical calendar and hymn suggestions",
	Long: "Resolves dates against the Roman liturgical calendar, fetches the " +
		"day's readings and recommends a hymn for each moment of the Mass.",
	SilenceUsage: true,
}

// newApp loads the configuration and wires the application.
func newApp() (*app.App, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	return app.New(cfg, log), nil
}

// parseDate accepts YYYY-MM-DD.
func parseDate(arg string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return d, nil
}

// nextSunday returns the first Sunday strictly after today, the default
// target of a build.
func nextSunday(now time.Time) time.Time {
	ahead := (7 - int(now.Weekday())) % 7
	if ahead == 0 {
		ahead = 7
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, ahead)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default canti.yaml)")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(indexCmd)
}
