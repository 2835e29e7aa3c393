package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// TableID идентификатор столика. В данных встречается и числом, и строкой,
// сравнивается только на равенство.
type TableID string

// UnmarshalJSON принимает как 3, так и "3"
func (t *TableID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TableID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: table id %s", ErrFormat, string(data))
	}
	*t = TableID(n.String())
	return nil
}

// MarshalJSON пишет числовые идентификаторы числом, остальные строкой
func (t TableID) MarshalJSON() ([]byte, error) {
	if n, ok := t.Int(); ok {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(t))
}

// Int возвращает числовое значение идентификатора, если он числовой
func (t TableID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(t), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (t TableID) String() string {
	return string(t)
}
