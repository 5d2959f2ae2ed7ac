package week_test

import (
	"testing"
	"time"

	"github.com/limbo/selfhq/pkg/week"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 30, 15, 0, time.UTC)
}

func TestMonday(t *testing.T) {
	testCases := []struct {
		Desc     string
		Date     time.Time
		Expected string
	}{
		{Desc: "monday itself", Date: date(2024, time.January, 15, 8), Expected: "2024-01-15"},
		{Desc: "wednesday is two days later", Date: date(2024, time.January, 17, 23), Expected: "2024-01-15"},
		{Desc: "saturday", Date: date(2024, time.January, 20, 0), Expected: "2024-01-15"},
		{Desc: "sunday closes previous week", Date: date(2024, time.January, 21, 12), Expected: "2024-01-15"},
		{Desc: "crosses month boundary", Date: date(2024, time.March, 2, 10), Expected: "2024-02-26"},
		{Desc: "crosses year boundary", Date: date(2025, time.January, 1, 10), Expected: "2024-12-30"},
		{Desc: "sunday at year start", Date: date(2023, time.January, 1, 10), Expected: "2022-12-26"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, week.Of(tc.Date))
			m := week.Monday(tc.Date)
			assert.Equal(t, time.Monday, m.Weekday())
			assert.Zero(t, m.Hour())
			assert.Zero(t, m.Minute())
			assert.Zero(t, m.Second())
		})
	}
}

func TestMondayOffsets(t *testing.T) {
	wednesday := date(2024, time.May, 8, 14)
	assert.Equal(t, wednesday.AddDate(0, 0, -2).Format(time.DateOnly), week.Of(wednesday))
	sunday := date(2024, time.May, 12, 14)
	assert.Equal(t, sunday.AddDate(0, 0, -6).Format(time.DateOnly), week.Of(sunday))
}

func TestMondayStableWithinWeek(t *testing.T) {
	start := date(2024, time.October, 7, 0)
	for i := range 7 {
		day := start.AddDate(0, 0, i)
		assert.Equal(t, week.Monday(start), week.Monday(day), day.Weekday().String())
		assert.Equal(t, week.Monday(day), week.Monday(week.Monday(day)))
	}
	next := week.Monday(start.AddDate(0, 0, 7))
	prev := week.Monday(start.AddDate(0, 0, -1))
	assert.Equal(t, week.Monday(start).AddDate(0, 0, 7), next)
	assert.Equal(t, week.Monday(start).AddDate(0, 0, -7), prev)
}

func TestValid(t *testing.T) {
	assert.True(t, week.Valid("2024-01-15"))
	assert.False(t, week.Valid("2024-01-16"))
	assert.False(t, week.Valid("15.01.2024"))
}
