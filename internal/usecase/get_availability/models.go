package get_availability

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// Request модель запроса занятости столиков на дату
type Request struct {
	Date domain.DateKey // Дата (YYYY-MM-DD)
	Hour string         // Час (HH:MM). Пустой - все слоты дня
}

// Response занятость столиков по слотам
type Response struct {
	Date  domain.DateKey
	Slots []Slot
}

// Slot занятость столиков в одном получасовом слоте
type Slot struct {
	Hour   string
	Free   []domain.TableID
	Booked []domain.TableID
}
