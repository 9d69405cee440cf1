// canti builds Sunday Mass sheets: it resolves a date against the liturgical
// calendar, fetches the day's readings and recommends a hymn per moment of
// the celebration.
package main

import (
	"os"

	"github.com/mrparsing/suggerimento-canti/cmd/canti/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
