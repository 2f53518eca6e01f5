package get_available_slots

import (
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов зала
type Request struct {
	HallID domain.HallID
	Date   string // YYYY-MM-DD в часовом поясе залов
}

// Response модель ответа со слотами зала на дату
type Response struct {
	HallID domain.HallID
	Date   string
	Slots  []Slot // только слоты, начало которых еще не наступило
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString
	Available bool
}
