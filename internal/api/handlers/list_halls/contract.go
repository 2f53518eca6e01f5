package list_halls

import "github.com/m04kA/SMC-HallBooking/internal/domain"

type Catalog interface {
	ListHalls() []domain.Hall
}
