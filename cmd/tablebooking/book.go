package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/engine"
)

func newBookCmd(configPath, metricsAddr *string) *cobra.Command {
	var (
		date     string
		hour     string
		table    string
		form     engine.FormSubmitted
		timeout  time.Duration
		starters []string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Select a table and submit a reservation through the availability engine",
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

			if _, err := s.open(ctx, day, hour); err != nil {
				return err
			}

			form.Starters = starters
			s.engine.Post(engine.TableClicked{Table: domain.TableID(table)})
			s.engine.Post(form)

			n, err := s.await(ctx,
				engine.KindWarning,
				engine.KindReservationConfirmed,
				engine.KindReservationRolledBack,
			)
			if err != nil {
				return fmt.Errorf("waiting for reservation: %w", err)
			}

			switch n.Kind {
			case engine.KindReservationConfirmed:
				fmt.Printf("reservation %s confirmed: table %s, %s %s\n", n.TxID, n.Table, n.Date, n.Hour)
				if n.Booking != nil {
					enc := json.NewEncoder(os.Stdout)
					enc.SetIndent("", "  ")
					return enc.Encode(n.Booking)
				}
				return nil
			default:
				return fmt.Errorf("%s: %w", n.Message, n.Err)
			}
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&hour, "hour", engine.DefaultHour, "hour HH:MM, minutes 00 or 30")
	cmd.Flags().StringVar(&table, "table", "", "table id")
	cmd.Flags().Float64Var(&form.DurationHours, "duration", 2, "duration in hours, multiple of 0.5")
	cmd.Flags().IntVar(&form.PartySize, "people", 2, "party size")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&form.Address, "address", "", "contact address")
	cmd.Flags().StringSliceVar(&starters, "starters", nil, "pre-ordered starters")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall command timeout")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}
