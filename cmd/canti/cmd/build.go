package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrparsing/suggerimento-canti/internal/adapters/massfile"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build [date]",
	Short: "Build the Mass sheet for a date (default: next Sunday)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	date := nextSunday(time.Now())
	if len(args) == 1 {
		var err error
		if date, err = parseDate(args[0]); err != nil {
			return err
		}
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	rec, lit, err := a.BuildMass(cmd.Context(), date)
	if err != nil {
		return err
	}

	dir := buildOut
	if dir == "" {
		dir = a.Config.OutputDir
	}
	w := &massfile.Writer{Dir: dir}
	path, err := w.Write(rec, date)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s → %s\n", rec.Title, lit.Date.Format("2006-01-02"), path)
	return nil
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (default from config)")
}
