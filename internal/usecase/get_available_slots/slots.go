package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

// upcomingSlots оставляет слоты, начало которых на дату date строго позже now
func upcomingSlots(slots []types.TimeString, date time.Time, now time.Time, loc *time.Location) ([]types.TimeString, error) {
	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		startsAt, err := slot.On(date, loc)
		if err != nil {
			return nil, err
		}
		if startsAt.After(now) {
			result = append(result, slot)
		}
	}
	return result, nil
}
