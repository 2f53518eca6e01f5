package validation

import (
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

// Catalog справочник залов и слотов
type Catalog interface {
	GetHall(id domain.HallID) (domain.Hall, error)
	IsTimeSlot(t types.TimeString) bool
}
