package selection

import "errors"

var (
	// ErrTableBooked возвращается при клике по занятому столику
	ErrTableBooked = errors.New("selection: table is already taken")

	// ErrUnknownTable возвращается при клике по столику, которого нет на плане зала
	ErrUnknownTable = errors.New("selection: unknown table")
)
