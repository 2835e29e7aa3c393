package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBooking/pkg/psqlbuilder"
)

// CreateEvent сохраняет событие ресторана и заполняет его ID
func (r *Repository) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	repeat := event.Repeat
	if repeat == "" {
		repeat = domain.RepeatNone
	}

	query, args, err := psqlbuilder.Insert(tableEvents).
		Columns(eventColumns[1:]...).
		Values(
			event.Name,
			string(event.Date),
			event.Hour,
			string(event.Table),
			event.Duration,
			string(repeat),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&event.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - execute insert: %v", ErrExecQuery, err)
	}

	event.Repeat = repeat
	return event, nil
}

// ListEvents получает события по фильтру. Для повторяющихся событий
// собственная дата означает дату начала повторения, поэтому для них
// осмысленно только условие date_lte.
func (r *Repository) ListEvents(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListEvents(filter)
	if err != nil {
		return nil, err
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var (
			event  domain.Event
			date   sql.NullTime
			table  string
			repeat string
		)
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&date,
			&event.Hour,
			&table,
			&event.Duration,
			&repeat,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEvents - scan row: %v", ErrScanRow, err)
		}

		event.Date = dateKey(date)
		event.Table = domain.TableID(table)
		event.Repeat = domain.RepeatRule(repeat)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

func buildListEvents(filter domain.RecordsFilter) (string, []interface{}, error) {
	repeating, ok := filter.Repeating()
	if !ok {
		return "", nil, fmt.Errorf("%w: repeat and repeat_ne contradict each other", ErrInvalidFilter)
	}

	b := psqlbuilder.Select(eventColumns...).From(tableEvents)
	b = applyDateRange(b, filter)

	if repeating != nil {
		if *repeating {
			b = b.Where(squirrel.NotEq{"repeat": string(domain.RepeatNone)})
		} else {
			b = b.Where(squirrel.Eq{"repeat": string(domain.RepeatNone)})
		}
	}

	query, args, err := b.OrderBy("date ASC", "hour ASC", "id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: ListEvents - build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}
