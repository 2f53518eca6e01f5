package models

import "github.com/m04kA/SMC-HallBooking/internal/domain"

// DraftResponse черновик с актуальными ошибками валидации
type DraftResponse struct {
	Key    string                  `json:"key"`
	Draft  domain.BookingDraft     `json:"draft"`
	Errors domain.ValidationErrors `json:"errors"`
	Valid  bool                    `json:"valid"`
}

// NewDraftResponse собирает ответ; errors всегда сериализуется как объект
func NewDraftResponse(key string, draft domain.BookingDraft, errs domain.ValidationErrors) *DraftResponse {
	if errs == nil {
		errs = domain.ValidationErrors{}
	}
	return &DraftResponse{
		Key:    key,
		Draft:  draft,
		Errors: errs,
		Valid:  errs.IsValid(),
	}
}
