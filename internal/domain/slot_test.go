package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourToSlot(t *testing.T) {
	slot, err := HourToSlot("09:00")
	require.NoError(t, err)
	assert.Equal(t, 9.0, slot.Hours())

	slot, err = HourToSlot("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9.5, slot.Hours())

	slot, err = HourToSlot("23:30")
	require.NoError(t, err)
	assert.Equal(t, "23:30", slot.String())

	for _, bad := range []string{"09:15", "9:00", "24:00", "ab:00", "09-00", "", "12:300"} {
		_, err := HourToSlot(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}
}

func TestExpandRun_Contiguous(t *testing.T) {
	start := SlotFromHours(12)
	for _, d := range []float64{0, 0.5, 1, 1.5, 4} {
		run, err := ExpandRun(start, d)
		require.NoError(t, err)
		require.Len(t, run, int(d/0.5))
		for i, s := range run {
			assert.Equal(t, 12+float64(i)*0.5, s.Hours())
		}
	}
}

func TestExpandRun_Errors(t *testing.T) {
	_, err := ExpandRun(SlotFromHours(12), 0.75)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = ExpandRun(SlotFromHours(12), -1)
	assert.ErrorIs(t, err, ErrDomain)

	// 23:00 + 2h переходит через полночь
	_, err = ExpandRun(SlotFromHours(23), 2)
	assert.ErrorIs(t, err, ErrDomain)

	// ровно до полуночи допустимо
	run, err := ExpandRun(SlotFromHours(23), 1)
	require.NoError(t, err)
	assert.Len(t, run, 2)
}

func TestAddDays_Rollover(t *testing.T) {
	tests := []struct {
		from DateKey
		n    int
		want DateKey
	}{
		{"2024-06-01", 1, "2024-06-02"},
		{"2024-06-30", 1, "2024-07-01"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-03-01", -1, "2024-02-29"},
	}
	for _, tt := range tests {
		got, err := AddDays(tt.from, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := AddDays("2024/06/01", 1)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestTableID_JSON(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-06-01","hour":"12:00","table":3,"duration":1}`), &b))
	assert.Equal(t, TableID("3"), b.Table)

	require.NoError(t, json.Unmarshal([]byte(`{"table":"vip"}`), &b))
	assert.Equal(t, TableID("vip"), b.Table)

	out, err := json.Marshal(struct {
		A TableID `json:"a"`
		B TableID `json:"b"`
	}{A: "7", B: "vip"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":7,"b":"vip"}`, string(out))
}

func TestOccupancy_Slots(t *testing.T) {
	ev := Event{Hour: "18:00", Duration: 2, Table: "5", Repeat: RepeatDaily}
	assert.True(t, ev.IsRepeating())

	slots, err := ev.OccupancyOn("2024-06-02").Slots()
	require.NoError(t, err)
	assert.Equal(t, []TimeSlot{36, 37, 38, 39}, slots)
}

func TestRepeatRule_JSON(t *testing.T) {
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(`{"repeat":false}`), &ev))
	assert.Equal(t, RepeatNone, ev.Repeat)
	assert.False(t, ev.IsRepeating())

	require.NoError(t, json.Unmarshal([]byte(`{"repeat":"daily"}`), &ev))
	assert.Equal(t, RepeatDaily, ev.Repeat)

	assert.Error(t, json.Unmarshal([]byte(`{"repeat":1}`), &ev))

	out, err := json.Marshal(Event{Repeat: RepeatNone})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"repeat":false`)
}
