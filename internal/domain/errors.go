package domain

import "errors"

var (
	// ErrFormat возвращается при некорректном формате часа или даты
	ErrFormat = errors.New("domain: invalid format")

	// ErrDomain возвращается при недопустимой длительности или выходе за пределы суток
	ErrDomain = errors.New("domain: value out of domain")
)
