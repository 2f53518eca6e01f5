package list_halls

import "github.com/m04kA/SMC-HallBooking/internal/domain"

// HallResponse HTTP response model
type HallResponse struct {
	ID        domain.HallID `json:"id"`
	Name      string        `json:"name"`
	Capacity  int           `json:"capacity"`
	BasePrice float64       `json:"basePrice"`
	Features  []string      `json:"features"`
}

// FromDomainHalls конвертирует залы каталога в HTTP ответ
func FromDomainHalls(halls []domain.Hall) []HallResponse {
	resp := make([]HallResponse, 0, len(halls))
	for _, h := range halls {
		features := h.Features
		if features == nil {
			features = []string{}
		}
		resp = append(resp, HallResponse{
			ID:        h.ID,
			Name:      h.Name,
			Capacity:  h.Capacity,
			BasePrice: h.BasePrice,
			Features:  features,
		})
	}
	return resp
}
