package get_restaurant

import "github.com/m04kA/SMC-TableBooking/internal/service/restaurant"

type RestaurantService interface {
	Info() *restaurant.Info
}

type Logger interface {
	Info(format string, v ...interface{})
}
