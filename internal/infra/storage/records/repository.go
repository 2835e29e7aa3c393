package records

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const (
	tableBookings = "bookings"
	tableEvents   = "events"
)

var bookingColumns = []string{
	"id",
	"date",
	"hour",
	"table_id",
	"duration",
	"ppl",
	"phone",
	"address",
	"starters",
}

var eventColumns = []string{
	"id",
	"name",
	"date",
	"hour",
	"table_id",
	"duration",
	"repeat",
}

// Repository репозиторий бронирований и событий ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// applyDateRange добавляет условия date_gte / date_lte
func applyDateRange(b squirrel.SelectBuilder, filter domain.RecordsFilter) squirrel.SelectBuilder {
	if filter.DateFrom != nil {
		b = b.Where(squirrel.GtOrEq{"date": string(*filter.DateFrom)})
	}
	if filter.DateTo != nil {
		b = b.Where(squirrel.LtOrEq{"date": string(*filter.DateTo)})
	}
	return b
}

// dateKey переводит значение колонки DATE в ключ даты
func dateKey(t sql.NullTime) domain.DateKey {
	if !t.Valid {
		return ""
	}
	return domain.DateKeyFromTime(t.Time)
}
