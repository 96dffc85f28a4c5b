package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/yunseok-map/all-food-map/entity"
)

type UpcomingSpecialDay struct {
	entity.SpecialDay
	EventDate time.Time `json:"eventDate"`
}

// NextSpecialDay picks the nearest future occurrence of any special day.
// A month-day already passed this year rolls to next year; time of day is
// ignored. Rows with an unparseable DateMD are skipped.
func NextSpecialDay(days []entity.SpecialDay, now time.Time) (UpcomingSpecialDay, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var best UpcomingSpecialDay
	found := false
	for _, d := range days {
		md := strings.SplitN(d.DateMD, ".", 2)
		if len(md) != 2 {
			continue
		}
		month, errM := strconv.Atoi(md[0])
		day, errD := strconv.Atoi(md[1])
		if errM != nil || errD != nil || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}

		event := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
		if event.Before(today) {
			event = event.AddDate(1, 0, 0)
		}

		if !found || event.Before(best.EventDate) {
			best = UpcomingSpecialDay{SpecialDay: d, EventDate: event}
			found = true
		}
	}
	return best, found
}
