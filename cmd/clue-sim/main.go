//go:build !clue_alpha

// clue-sim runs the dashboard against the emulated CLUE board and draws the
// framebuffer in a terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"cluedash-go/board"
	"cluedash-go/services/dashboard"
)

var (
	cadence   time.Duration
	scale     int
	failAfter int
)

var rootCmd = &cobra.Command{
	Use:          "clue-sim",
	Short:        "Run the sensor dashboard on an emulated CLUE",
	Long:         "Polls the simulated sensor bus, renders into a 240x240 framebuffer and mirrors it to the terminal. Press f to break the bus, q to quit.",
	SilenceUsage: true,
	RunE:         runSim,
}

func init() {
	rootCmd.Flags().DurationVar(&cadence, "cadence", dashboard.DefaultCadence, "pause between poll cycles")
	rootCmd.Flags().IntVar(&scale, "scale", 2, "framebuffer pixels per terminal column (1-8)")
	rootCmd.Flags().IntVar(&failAfter, "fail-after", -1, "fail every bus transaction after this many (-1: never)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	b, err := board.Take()
	if err != nil {
		return err
	}
	board.Host.Bus.FailAfter(failAfter)

	d, err := dashboard.New(b, dashboard.Config{Cadence: cadence})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	newSim(screen, d, scale).run()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
