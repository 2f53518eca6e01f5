package domain

// BookingDraft значения незавершенной формы бронирования.
// Значения хранятся как введены пользователем (в том числе некорректные),
// их проверяет валидатор, а не хранилище черновиков
type BookingDraft struct {
	HallID          string `json:"hallId" validate:"required"`
	EventDate       string `json:"eventDate" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"startTime" validate:"required,datetime=15:04,len=5"`
	EndTime         string `json:"endTime" validate:"required,datetime=15:04,len=5"`
	CustomerName    string `json:"customerName" validate:"required,notblank"`
	CustomerEmail   string `json:"customerEmail" validate:"required,booking_email"`
	CustomerPhone   string `json:"customerPhone" validate:"required,phone10"`
	GuestCount      int    `json:"guestCount" validate:"required,min=1"`
	SpecialRequests string `json:"specialRequests,omitempty" validate:"max=500"`
}

// IsEmpty returns true for a draft without any field set
func (d BookingDraft) IsEmpty() bool {
	return d == BookingDraft{}
}

// DraftPatch частичное обновление черновика: nil - поле не меняется
type DraftPatch struct {
	HallID          *string `json:"hallId,omitempty"`
	EventDate       *string `json:"eventDate,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	EndTime         *string `json:"endTime,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	GuestCount      *int    `json:"guestCount,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// IsEmpty returns true if the patch changes nothing
func (p DraftPatch) IsEmpty() bool {
	return p == DraftPatch{}
}

// Apply merges the patch into the draft, last write wins per field
func (p DraftPatch) Apply(d BookingDraft) BookingDraft {
	if p.HallID != nil {
		d.HallID = *p.HallID
	}
	if p.EventDate != nil {
		d.EventDate = *p.EventDate
	}
	if p.StartTime != nil {
		d.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		d.EndTime = *p.EndTime
	}
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		d.CustomerEmail = *p.CustomerEmail
	}
	if p.CustomerPhone != nil {
		d.CustomerPhone = *p.CustomerPhone
	}
	if p.GuestCount != nil {
		d.GuestCount = *p.GuestCount
	}
	if p.SpecialRequests != nil {
		d.SpecialRequests = *p.SpecialRequests
	}
	return d
}

// ValidationErrors ошибки валидации черновика: поле -> сообщение для пользователя.
// Пустая карта означает валидный черновик
type ValidationErrors map[string]string

// IsValid returns true when there are no errors
func (e ValidationErrors) IsValid() bool {
	return len(e) == 0
}

// Has returns true if the field has an error
func (e ValidationErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}
