package reservation

import "errors"

var (
	// ErrValidation возвращается, когда черновик бронирования неполон или некорректен
	ErrValidation = errors.New("reservation: invalid draft")

	// ErrTransactionNotFound возвращается, когда транзакция не найдена среди ожидающих
	ErrTransactionNotFound = errors.New("reservation: transaction not found")

	// ErrTransactionSettled возвращается при повторном подтверждении или откате транзакции
	ErrTransactionSettled = errors.New("reservation: transaction already settled")
)
