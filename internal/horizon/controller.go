package horizon

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Имена параметров фильтра API записей
const (
	ParamDateStart = "date_gte"
	ParamDateEnd   = "date_lte"
	ParamRepeat    = "repeat"
	ParamRepeatNe  = "repeat_ne"
)

// DefaultDaysAhead сколько дней вперед показывает date-picker
const DefaultDaysAhead = 14

// Clock источник текущего времени (подменяется в тестах)
type Clock interface {
	Now() time.Time
}

// RealClock реальные часы
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// Controller окно видимых дат date-picker'а: от минимальной даты на daysAhead дней вперед
type Controller struct {
	daysAhead int
	clock     Clock
	min       domain.DateKey
}

// NewController создает контроллер с окном, начинающимся сегодня
func NewController(daysAhead int, clock Clock) *Controller {
	if daysAhead < 0 {
		daysAhead = DefaultDaysAhead
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Controller{
		daysAhead: daysAhead,
		clock:     clock,
		min:       domain.DateKeyFromTime(clock.Now()),
	}
}

// Current возвращает текущее окно [min, min+daysAhead]
func (c *Controller) Current() domain.Horizon {
	// min всегда валидна: задается через DateKeyFromTime или SetMin
	max, _ := domain.AddDays(c.min, c.daysAhead)
	return domain.Horizon{Min: c.min, Max: max}
}

// SetMin сдвигает начало окна. Дата раньше сегодняшней не допускается.
func (c *Controller) SetMin(date domain.DateKey) (domain.Horizon, error) {
	if _, err := domain.ParseDateKey(string(date)); err != nil {
		return domain.Horizon{}, err
	}
	today := domain.DateKeyFromTime(c.clock.Now())
	if date.Before(today) {
		return domain.Horizon{}, fmt.Errorf("%w: %s is before today %s", domain.ErrDomain, date, today)
	}
	c.min = date
	return c.Current(), nil
}

// Today сдвигает окно на сегодняшнюю дату (например, после полуночи)
func (c *Controller) Today() domain.Horizon {
	c.min = domain.DateKeyFromTime(c.clock.Now())
	return c.Current()
}

// Contains проверяет, что дата видна в date-picker'е
func (c *Controller) Contains(date domain.DateKey) bool {
	return c.Current().Contains(date)
}
