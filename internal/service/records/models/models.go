package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var (
	// ErrInvalidQuery возвращается при некорректных query-параметрах
	ErrInvalidQuery = errors.New("invalid query parameter")
)

// Query-параметры фильтрации, совместимые с json-server
const (
	ParamDateGte  = "date_gte"
	ParamDateLte  = "date_lte"
	ParamRepeat   = "repeat"
	ParamRepeatNe = "repeat_ne"
)

// CreateEventRequest запрос на создание события ресторана
type CreateEventRequest struct {
	Name     string            `json:"name"`
	Date     domain.DateKey    `json:"date"`
	Hour     string            `json:"hour"`
	Table    domain.TableID    `json:"table"`
	Duration float64           `json:"duration"`
	Repeat   domain.RepeatRule `json:"repeat"`
}

// FilterFromQuery разбирает date_gte, date_lte, repeat и repeat_ne
func FilterFromQuery(q url.Values) (domain.RecordsFilter, error) {
	var filter domain.RecordsFilter

	if v := q.Get(ParamDateGte); v != "" {
		d, err := domain.ParseDateKey(v)
		if err != nil {
			return filter, fmt.Errorf("%w: %s: %v", ErrInvalidQuery, ParamDateGte, err)
		}
		filter.DateFrom = &d
	}
	if v := q.Get(ParamDateLte); v != "" {
		d, err := domain.ParseDateKey(v)
		if err != nil {
			return filter, fmt.Errorf("%w: %s: %v", ErrInvalidQuery, ParamDateLte, err)
		}
		filter.DateTo = &d
	}
	if v := q.Get(ParamRepeat); v != "" {
		b, err := parseRepeatValue(v)
		if err != nil {
			return filter, fmt.Errorf("%w: %s: %v", ErrInvalidQuery, ParamRepeat, err)
		}
		filter.Repeat = &b
	}
	if v := q.Get(ParamRepeatNe); v != "" {
		b, err := parseRepeatValue(v)
		if err != nil {
			return filter, fmt.Errorf("%w: %s: %v", ErrInvalidQuery, ParamRepeatNe, err)
		}
		filter.RepeatNot = &b
	}

	return filter, nil
}

// parseRepeatValue принимает true/false, а также имя правила ("daily" означает true)
func parseRepeatValue(v string) (bool, error) {
	if v == string(domain.RepeatDaily) {
		return true, nil
	}
	if v == string(domain.RepeatNone) {
		return false, nil
	}
	return strconv.ParseBool(v)
}
