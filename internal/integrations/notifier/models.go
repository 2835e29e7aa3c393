package notifier

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Routing keys событий бронирования
const (
	KeyReservationCommitted  = "reservation.committed"
	KeyReservationConfirmed  = "reservation.confirmed"
	KeyReservationRolledBack = "reservation.rolled_back"
)

// ReservationMessage тело сообщения о бронировании
type ReservationMessage struct {
	TxID       string         `json:"txId"`
	Date       domain.DateKey `json:"date"`
	Hour       string         `json:"hour"`
	Table      domain.TableID `json:"table"`
	BookingID  int64          `json:"bookingId,omitempty"`
	Error      string         `json:"error,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
