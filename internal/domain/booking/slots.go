package booking

import "time"

// The schedule step offers a fixed half-hour grid from 09:00 to 17:00,
// rendered with 12-hour labels ("09:00 AM" ... "04:30 PM").
const (
	gridStartHour = 9
	gridEndHour   = 17
	slotMinutes   = 30
)

func TimeSlots() []string {
	day := time.Date(2000, 1, 1, gridStartHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, gridEndHour, 0, 0, 0, time.UTC)

	var slots []string
	for cur := day; cur.Before(end); cur = cur.Add(slotMinutes * time.Minute) {
		slots = append(slots, cur.Format("03:04 PM"))
	}
	return slots
}

func IsSlotLabel(label string) bool {
	for _, s := range TimeSlots() {
		if s == label {
			return true
		}
	}
	return false
}
