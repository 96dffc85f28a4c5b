package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunseok-map/all-food-map/entity"
)

func TestNextSpecialDayRollsPassedDates(t *testing.T) {
	days := []entity.SpecialDay{
		{DateMD: "03.10", Title: "삼겹살데이쯤"},
		{DateMD: "01.05", Title: "지난 날"},
	}
	now := time.Date(2026, 2, 1, 15, 30, 0, 0, time.UTC)

	next, ok := NextSpecialDay(days, now)

	require.True(t, ok)
	// 01.05 already passed and rolled to 2027, so 03.10 of this year wins
	assert.Equal(t, "03.10", next.DateMD)
	assert.Equal(t, 2026, next.EventDate.Year())
}

func TestNextSpecialDayTodayCounts(t *testing.T) {
	days := []entity.SpecialDay{{DateMD: "02.01", Title: "오늘"}}
	now := time.Date(2026, 2, 1, 23, 0, 0, 0, time.UTC)

	next, ok := NextSpecialDay(days, now)

	require.True(t, ok)
	// time of day is ignored; today's date has not passed
	assert.Equal(t, 2026, next.EventDate.Year())
}

func TestNextSpecialDaySkipsMalformed(t *testing.T) {
	days := []entity.SpecialDay{
		{DateMD: "not-a-date"},
		{DateMD: "13.40"},
		{DateMD: "05.05", Title: "어린이날"},
	}
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	next, ok := NextSpecialDay(days, now)

	require.True(t, ok)
	assert.Equal(t, "어린이날", next.Title)
}

func TestNextSpecialDayEmpty(t *testing.T) {
	_, ok := NextSpecialDay(nil, time.Now())
	assert.False(t, ok)
}
