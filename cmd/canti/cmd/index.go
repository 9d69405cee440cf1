package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var indexWatch bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the hymn repertoire (embed lyrics, warm the vector cache)",
	Args:  cobra.NoArgs,
	RunE:  runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	corpus, err := a.Corpus(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("indicizzati %d canti da %s\n", len(corpus), a.Config.Repertoire)

	if !indexWatch {
		return nil
	}

	if err := a.WatchRepertoire(func() {
		if corpus, err := a.Corpus(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "reindicizzazione fallita: %v\n", err)
		} else {
			fmt.Printf("reindicizzati %d canti\n", len(corpus))
		}
	}); err != nil {
		return err
	}
	fmt.Printf("in ascolto su %s (Ctrl-C per uscire)\n", a.Config.Repertoire)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func init() {
	indexCmd.Flags().BoolVarP(&indexWatch, "watch", "w", false, "keep running and re-index when the repertoire changes")
}
