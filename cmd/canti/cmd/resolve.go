package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrparsing/suggerimento-canti/internal/domain/calendar"
	"github.com/mrparsing/suggerimento-canti/internal/domain/mass"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [date]",
	Short: "Show the liturgical position of a date (default: today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	date := time.Now()
	if len(args) == 1 {
		var err error
		if date, err = parseDate(args[0]); err != nil {
			return err
		}
	}

	lit := calendar.NewResolver().Resolve(date)

	fmt.Printf("data:     %s\n", lit.Date.Format("2006-01-02"))
	fmt.Printf("domenica: %s\n", lit.Sunday.Format("2006-01-02"))
	fmt.Printf("tempo:    %s\n", lit.Season.Label())
	if lit.Label != "" {
		fmt.Printf("nome:     %s\n", lit.Label)
	} else if lit.Number > 0 {
		fmt.Printf("numero:   %s (%d)\n", mass.Roman(lit.Number), lit.Number)
	}
	fmt.Printf("anno:     %s\n", lit.Letter)
	return nil
}
