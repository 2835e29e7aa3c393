package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableBooking/internal/engine"
)

func newAvailabilityCmd(configPath, metricsAddr *string) *cobra.Command {
	var (
		date    string
		hour    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Print table states for a date and hour",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			s, err := startSession(ctx, cfg, log, *metricsAddr)
			if err != nil {
				return err
			}
			defer s.close()

			snap, err := s.open(ctx, day, hour)
			if err != nil {
				return err
			}

			printSnapshot(snap)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&hour, "hour", engine.DefaultHour, "hour HH:MM, minutes 00 or 30")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "overall command timeout")

	return cmd
}

func printSnapshot(snap engine.Snapshot) {
	fmt.Printf("%s %s (window %s..%s)\n", snap.Date, snap.Hour, snap.Horizon.Min, snap.Horizon.Max)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tSTATE")
	for _, t := range snap.Tables {
		fmt.Fprintf(w, "%s\t%s\n", t.ID, t.State)
	}
	w.Flush()
}
