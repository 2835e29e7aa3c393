package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBooking/pkg/psqlbuilder"
)

// CreateBooking сохраняет бронирование и заполняет его ID.
// Если в контексте есть активная транзакция, запрос выполняется в ней.
func (r *Repository) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertBooking(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetBookingByID получает бронирование по ID
func (r *Repository) GetBookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListBookings получает бронирования за период (date_gte / date_lte).
// Фильтр repeat к бронированиям не применяется.
func (r *Repository) ListBookings(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListBookings(filter, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// DeleteBooking удаляет бронирование
func (r *Repository) DeleteBooking(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func buildInsertBooking(booking *domain.Booking) (string, []interface{}, error) {
	starters := booking.Starters
	if starters == nil {
		starters = []string{}
	}

	return psqlbuilder.Insert(tableBookings).
		Columns(bookingColumns[1:]...).
		Values(
			string(booking.Date),
			booking.Hour,
			string(booking.Table),
			booking.Duration,
			booking.People,
			booking.Phone,
			booking.Address,
			pq.Array(starters),
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildListBookings(filter domain.RecordsFilter, forUpdate bool) (string, []interface{}, error) {
	b := psqlbuilder.Select(bookingColumns...).From(tableBookings)
	b = applyDateRange(b, filter).OrderBy("date ASC", "hour ASC", "id ASC")

	// В транзакции создания бронирования блокируем прочитанные строки
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	return b.ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking domain.Booking
		date    sql.NullTime
		table   string
	)

	err := row.Scan(
		&booking.ID,
		&date,
		&booking.Hour,
		&table,
		&booking.Duration,
		&booking.People,
		&booking.Phone,
		&booking.Address,
		pq.Array(&booking.Starters),
	)
	if err != nil {
		return nil, err
	}

	booking.Date = dateKey(date)
	booking.Table = domain.TableID(table)
	if booking.Starters == nil {
		booking.Starters = []string{}
	}
	return &booking, nil
}
