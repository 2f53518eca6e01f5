package list_time_slots

import "github.com/m04kA/SMC-HallBooking/pkg/types"

type Catalog interface {
	ListTimeSlots() []types.TimeString
}
