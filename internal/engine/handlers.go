package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/availability"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-TableBooking/internal/reservation"
	"github.com/m04kA/SMC-TableBooking/internal/selection"
)

func (e *Engine) onHorizonChanged(ev HorizonChanged) error {
	var h domain.Horizon
	if ev.Min == "" {
		h = e.horizon.Today()
	} else {
		var err error
		h, err = e.horizon.SetMin(ev.Min)
		if err != nil {
			e.warn(msgDateOutOfWindow, err)
			return err
		}
	}

	if !h.Contains(e.date) {
		e.date = h.Min
	}
	e.logger.Info("Engine: horizon changed to %s..%s, date=%s", h.Min, h.Max, e.date)
	e.refresh()
	e.reload()
	return nil
}

func (e *Engine) onDateChanged(ev DateChanged) error {
	if _, err := domain.ParseDateKey(string(ev.Date)); err != nil {
		e.warn(msgDateOutOfWindow, err)
		return err
	}
	if !e.horizon.Contains(ev.Date) {
		err := fmt.Errorf("%w: date %s is outside of horizon", domain.ErrDomain, ev.Date)
		e.warn(msgDateOutOfWindow, err)
		return err
	}

	e.date = ev.Date
	e.refresh()
	return nil
}

func (e *Engine) onHourChanged(ev HourChanged) error {
	slot, err := domain.HourToSlot(ev.Hour)
	if err != nil {
		return err
	}

	e.hour = ev.Hour
	e.slot = slot
	e.refresh()
	return nil
}

func (e *Engine) onTableClicked(ev TableClicked) error {
	transition, err := e.selection.Click(ev.Table)
	if err != nil {
		if errors.Is(err, selection.ErrTableBooked) {
			e.notifier.Notify(Notification{
				Kind:    KindWarning,
				Date:    e.date,
				Hour:    e.hour,
				Table:   ev.Table,
				Message: msgTableTaken,
				Err:     err,
			})
		}
		return err
	}

	if transition != selection.Unchanged {
		e.notifySelection()
	}
	return nil
}

func (e *Engine) onFormSubmitted(ev FormSubmitted) error {
	table, selected := e.selection.Selection()
	draft, err := reservation.BuildDraft(table, selected, reservation.Form{
		Date:          e.date,
		Hour:          e.hour,
		DurationHours: ev.DurationHours,
		PartySize:     ev.PartySize,
		Phone:         ev.Phone,
		Address:       ev.Address,
		Starters:      ev.Starters,
	})
	if err != nil {
		e.warn(msgInvalidForm, err)
		return err
	}

	// Столик должен быть свободен на всю длительность, а не только в выбранный слот
	for _, slot := range draft.Slots() {
		if e.index.IsOccupied(draft.Date, slot, draft.Table) {
			err := fmt.Errorf("%w: table %s is taken at %s", reservation.ErrValidation, draft.Table, slot)
			e.warn(msgTableTaken, err)
			return err
		}
	}

	tx := e.ledger.Commit(draft)
	e.selection.CommitSelected()
	e.metrics.IncCommit()
	e.logger.Info("Engine: reservation tx=%s committed locally: table=%s date=%s hour=%s duration=%v",
		tx.ID, draft.Table, draft.Date, draft.Hour, draft.DurationHours)

	e.notifier.Notify(Notification{
		Kind:  KindReservationCommitted,
		Date:  draft.Date,
		Hour:  draft.Hour,
		Table: draft.Table,
		TxID:  tx.ID,
	})
	e.notifySelection()

	payload := tx.Payload
	txID := tx.ID
	e.runner.Go(func(ctx context.Context) Event {
		created, err := e.transport.CreateBooking(ctx, payload)
		return CommitAcked{TxID: txID, Booking: created, Err: err}
	})
	return nil
}

func (e *Engine) onCommitAcked(ev CommitAcked) error {
	if ev.Err == nil {
		tx, err := e.ledger.Confirm(ev.TxID, e.token)
		if err != nil {
			e.logger.Warn("Engine: confirm tx=%s: %v", ev.TxID, err)
			return err
		}
		e.metrics.IncConfirm()
		e.logger.Info("Engine: reservation tx=%s confirmed", ev.TxID)
		e.notifier.Notify(Notification{
			Kind:    KindReservationConfirmed,
			Date:    tx.Draft.Date,
			Hour:    tx.Draft.Hour,
			Table:   tx.Draft.Table,
			TxID:    tx.ID,
			Booking: ev.Booking,
		})
		return nil
	}

	tx, err := e.ledger.Rollback(ev.TxID)
	if err != nil {
		e.logger.Warn("Engine: rollback tx=%s: %v", ev.TxID, err)
		return err
	}
	e.metrics.IncRollback()
	e.logger.Error("Engine: reservation tx=%s rolled back: %v", ev.TxID, ev.Err)

	e.refresh()
	e.notifier.Notify(Notification{
		Kind:    KindReservationRolledBack,
		Date:    tx.Draft.Date,
		Hour:    tx.Draft.Hour,
		Table:   tx.Draft.Table,
		TxID:    tx.ID,
		Message: msgBookingFailed,
		Err:     ev.Err,
	})
	return nil
}

func (e *Engine) onRecordsReceived(ev RecordsReceived) error {
	if ev.Token != e.token {
		e.metrics.IncStaleResult()
		e.logger.Info("Engine: discarding stale records token=%d, latest=%d", ev.Token, e.token)
		return nil
	}

	if ev.Err != nil {
		e.logger.Error("Engine: failed to load records for %s..%s: %v", ev.Horizon.Min, ev.Horizon.Max, ev.Err)
		e.notifier.Notify(Notification{
			Kind:    KindLoadFailed,
			Message: msgLoadFailed,
			Err:     ev.Err,
		})
		return nil
	}

	records := ev.Records
	if records == nil {
		records = &bookingapi.Records{}
	}
	index, skipped := availability.Build(records.Bookings, records.EventsCurrent, records.EventsRepeating, ev.Horizon)
	for _, s := range skipped {
		e.logger.Warn("Engine: %v", s)
	}
	e.metrics.AddSkippedRecords(len(skipped))
	e.metrics.IncRebuild()

	e.index = index
	e.ledger.Reapply(index, ev.Token)
	e.loaded = true
	e.logger.Info("Engine: availability rebuilt for %s..%s, dates=%d, skipped=%d",
		ev.Horizon.Min, ev.Horizon.Max, len(index.Dates()), len(skipped))

	e.refresh()
	return nil
}

// reload запрашивает записи для текущего окна. Результат применяется,
// только если к его приходу не был выдан более новый запрос.
func (e *Engine) reload() {
	e.token++
	token := e.token
	h := e.horizon.Current()

	e.runner.Go(func(ctx context.Context) Event {
		records, err := e.transport.FetchRecords(ctx, h)
		return RecordsReceived{Token: token, Horizon: h, Records: records, Err: err}
	})
}

// refresh заново выводит отображение столиков для выбранных даты и часа
func (e *Engine) refresh() {
	dropped := e.selection.Refresh(func(t domain.TableID) bool {
		return e.index.IsOccupied(e.date, e.slot, t)
	})

	e.notifier.Notify(Notification{Kind: KindAvailabilityUpdated, Date: e.date, Hour: e.hour})
	if dropped {
		e.notifier.Notify(Notification{
			Kind:    KindSelectionChanged,
			Date:    e.date,
			Hour:    e.hour,
			Message: msgSelectionLost,
		})
	}
}

func (e *Engine) notifySelection() {
	table, _ := e.selection.Selection()
	e.notifier.Notify(Notification{Kind: KindSelectionChanged, Date: e.date, Hour: e.hour, Table: table})
}

func (e *Engine) warn(message string, err error) {
	e.notifier.Notify(Notification{
		Kind:    KindWarning,
		Date:    e.date,
		Hour:    e.hour,
		Message: message,
		Err:     err,
	})
}
