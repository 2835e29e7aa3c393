package get_availability

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-TableBooking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  domain.DateKey `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse занятость столиков в получасовом слоте
type SlotResponse struct {
	Hour   string           `json:"hour"`
	Free   []domain.TableID `json:"free"`
	Booked []domain.TableID `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{Hour: s.Hour, Free: s.Free, Booked: s.Booked}
	}
	return &AvailabilityResponse{Date: resp.Date, Slots: slots}
}
