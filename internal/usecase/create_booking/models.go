package create_booking

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	Date     domain.DateKey // Дата бронирования (YYYY-MM-DD)
	Hour     string         // Время начала (HH:MM, шаг 30 минут)
	Table    domain.TableID // Столик
	Duration float64        // Длительность в часах, кратна 0.5
	People   int            // Количество гостей
	Phone    string
	Address  string
	Starters []string // Закуски (опционально)
}

// Response созданное бронирование
type Response = domain.Booking
