package horizon

import (
	"net/url"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// FetchParams параметры трех параллельных запросов за записями окна
type FetchParams struct {
	Bookings        url.Values
	EventsCurrent   url.Values
	EventsRepeating url.Values
}

// Params строит фильтры запросов для окна.
// Для ежедневных событий ограничивается только конец окна: своей даты начала у них нет.
func Params(h domain.Horizon) FetchParams {
	start := string(h.Min)
	end := string(h.Max)

	return FetchParams{
		Bookings: url.Values{
			ParamDateStart: {start},
			ParamDateEnd:   {end},
		},
		EventsCurrent: url.Values{
			ParamRepeat:    {"false"},
			ParamDateStart: {start},
			ParamDateEnd:   {end},
		},
		EventsRepeating: url.Values{
			ParamRepeatNe: {"false"},
			ParamDateEnd:  {end},
		},
	}
}
