package create_booking

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model (формат, который отправляет виджет)
type CreateBookingRequest struct {
	Date     domain.DateKey `json:"date"`     // "2024-06-01"
	Hour     string         `json:"hour"`     // "14:00"
	Table    domain.TableID `json:"table"`    // 7 или "7"
	Duration float64        `json:"duration"` // часы, шаг 0.5
	People   int            `json:"ppl"`
	Phone    string         `json:"phone"`
	Address  string         `json:"address"`
	Starters []string       `json:"starters,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:     r.Date,
		Hour:     r.Hour,
		Table:    r.Table,
		Duration: r.Duration,
		People:   r.People,
		Phone:    r.Phone,
		Address:  r.Address,
		Starters: r.Starters,
	}
}
