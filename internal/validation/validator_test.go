package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBooking/internal/catalog"
	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

// now: 17 октября 2026, 15:30 UTC
var now = time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(catalog.Reference(), time.UTC)
	require.NoError(t, err)
	return v
}

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		HallID:        "hall1",
		EventDate:     "2026-10-18",
		StartTime:     "10:00",
		EndTime:       "11:00",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "1234567890",
		GuestCount:    4,
	}
}

func TestValidate_ValidDraft(t *testing.T) {
	v := newValidator(t)

	errs := v.Validate(validDraft(), now)
	assert.True(t, errs.IsValid(), "unexpected errors: %v", errs)
}

func TestValidate_EmptyDraft(t *testing.T) {
	v := newValidator(t)

	errs := v.Validate(domain.BookingDraft{}, now)

	assert.Equal(t, domain.ValidationErrors{
		FieldHallID:        msgHallRequired,
		FieldEventDate:     msgDateRequired,
		FieldStartTime:     msgStartRequired,
		FieldEndTime:       msgEndRequired,
		FieldCustomerName:  msgNameRequired,
		FieldCustomerEmail: msgEmailRequired,
		FieldCustomerPhone: msgPhoneRequired,
		FieldGuestCount:    msgGuestsRequired,
	}, errs)
}

func TestValidate_PastDate(t *testing.T) {
	v := newValidator(t)

	for _, date := range []string{"2026-10-16", "2025-12-31", "2000-01-01"} {
		d := validDraft()
		d.EventDate = date

		errs := v.Validate(d, now)
		assert.Equal(t, msgDatePast, errs[FieldEventDate], date)
	}
}

func TestValidate_TodayIsAllowedForFutureSlots(t *testing.T) {
	v := newValidator(t)

	d := validDraft()
	d.EventDate = "2026-10-17"
	d.StartTime = "16:00"
	d.EndTime = "18:00"

	assert.True(t, v.Validate(d, now).IsValid())
}

func TestValidate_TodayPastSlots(t *testing.T) {
	v := newValidator(t)

	d := validDraft()
	d.EventDate = "2026-10-17"
	d.StartTime = "14:00"
	d.EndTime = "15:00"

	errs := v.Validate(d, now)
	assert.False(t, errs.Has(FieldEventDate))
	assert.Equal(t, msgStartPast, errs[FieldStartTime])
	assert.Equal(t, msgEndPast, errs[FieldEndTime])
}

func TestValidate_EndOnlyInFuture(t *testing.T) {
	v := newValidator(t)

	d := validDraft()
	d.EventDate = "2026-10-17"
	d.StartTime = "15:00"
	d.EndTime = "16:00"

	errs := v.Validate(d, now)
	assert.Equal(t, msgStartPast, errs[FieldStartTime])
	assert.False(t, errs.Has(FieldEndTime))
}

func TestValidate_EndNotAfterStart(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		start string
		end   string
	}{
		{start: "10:00", end: "10:00"},
		{start: "11:00", end: "10:00"},
		{start: "20:00", end: "09:00"},
	}

	for _, tt := range tests {
		d := validDraft()
		d.StartTime = tt.start
		d.EndTime = tt.end

		errs := v.Validate(d, now)
		assert.Equal(t, msgEndBeforeStart, errs[FieldEndTime], "%s-%s", tt.start, tt.end)
		assert.False(t, errs.Has(FieldStartTime))
	}
}

func TestValidate_TimeShapeAndSlots(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		start string
		end   string
		field string
		want  string
	}{
		{name: "single digit hour", start: "9:00", end: "11:00", field: FieldStartTime, want: msgTimeInvalid},
		{name: "garbage", start: "noon", end: "11:00", field: FieldStartTime, want: msgTimeInvalid},
		{name: "not a slot", start: "10:30", end: "11:00", field: FieldStartTime, want: msgTimeNotSlot},
		{name: "after closing", start: "10:00", end: "21:00", field: FieldEndTime, want: msgTimeNotSlot},
		{name: "end shape", start: "10:00", end: "25:00", field: FieldEndTime, want: msgTimeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.StartTime = tt.start
			d.EndTime = tt.end

			errs := v.Validate(d, now)
			assert.Equal(t, tt.want, errs[tt.field])
		})
	}
}

func TestValidate_InvalidDateSkipsFutureCheck(t *testing.T) {
	v := newValidator(t)

	d := validDraft()
	d.EventDate = "18/10/2026"

	errs := v.Validate(d, now)
	assert.Equal(t, msgDateInvalid, errs[FieldEventDate])
	assert.False(t, errs.Has(FieldStartTime))
	assert.False(t, errs.Has(FieldEndTime))
}

func TestValidate_GuestCountCapacity(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		hall    string
		guests  int
		wantErr bool
	}{
		{hall: "hall1", guests: 1},
		{hall: "hall1", guests: 10},
		{hall: "hall1", guests: 11, wantErr: true},
		{hall: "hall1", guests: 30, wantErr: true},
		{hall: "hall2", guests: 11},
		{hall: "hall2", guests: 30},
		{hall: "hall2", guests: 31, wantErr: true},
	}

	for _, tt := range tests {
		d := validDraft()
		d.HallID = tt.hall
		d.GuestCount = tt.guests

		errs := v.Validate(d, now)
		assert.Equal(t, tt.wantErr, errs.Has(FieldGuestCount), "%s/%d", tt.hall, tt.guests)
	}
}

func TestValidate_HallChangeInvalidatesGuestCount(t *testing.T) {
	v := newValidator(t)

	d := validDraft()
	d.HallID = "hall2"
	d.GuestCount = 20
	require.True(t, v.Validate(d, now).IsValid())

	d.HallID = "hall1"
	errs := v.Validate(d, now)
	assert.Equal(t, "Maximum 10 guests allowed for Hall 1 (Small)", errs[FieldGuestCount])
}

func TestValidate_GuestCountLowerBound(t *testing.T) {
	v := newValidator(t)

	d := validDraft()
	d.GuestCount = -3
	assert.Equal(t, msgGuestsMin, v.Validate(d, now)[FieldGuestCount])
}

func TestValidate_UnknownHall(t *testing.T) {
	v := newValidator(t)

	d := validDraft()
	d.HallID = "hall3"

	errs := v.Validate(d, now)
	assert.Equal(t, msgHallUnknown, errs[FieldHallID])
	assert.False(t, errs.Has(FieldGuestCount))
}

func TestValidate_Contacts(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		patch func(d *domain.BookingDraft)
		field string
		want  string
	}{
		{name: "blank name", patch: func(d *domain.BookingDraft) { d.CustomerName = "   " }, field: FieldCustomerName, want: msgNameRequired},
		{name: "email without tld", patch: func(d *domain.BookingDraft) { d.CustomerEmail = "jane@example" }, field: FieldCustomerEmail, want: msgEmailInvalid},
		{name: "email without at", patch: func(d *domain.BookingDraft) { d.CustomerEmail = "jane.example.com" }, field: FieldCustomerEmail, want: msgEmailInvalid},
		{name: "short phone", patch: func(d *domain.BookingDraft) { d.CustomerPhone = "12345" }, field: FieldCustomerPhone, want: msgPhoneInvalid},
		{name: "phone with dashes", patch: func(d *domain.BookingDraft) { d.CustomerPhone = "123-456-7890" }, field: FieldCustomerPhone, want: msgPhoneInvalid},
		{name: "long phone", patch: func(d *domain.BookingDraft) { d.CustomerPhone = "12345678901" }, field: FieldCustomerPhone, want: msgPhoneInvalid},
		{name: "long requests", patch: func(d *domain.BookingDraft) { d.SpecialRequests = strings.Repeat("a", 501) }, field: FieldSpecialRequests, want: "Special requests must be at most 500 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.patch(&d)

			errs := v.Validate(d, now)
			assert.Equal(t, domain.ValidationErrors{tt.field: tt.want}, errs)
		})
	}
}

func TestValidate_EmailCaseInsensitive(t *testing.T) {
	v := newValidator(t)

	d := validDraft()
	d.CustomerEmail = "Jane.DOE+events@Example.CO.UK"
	d.SpecialRequests = strings.Repeat("a", 500)

	assert.True(t, v.Validate(d, now).IsValid())
}

func TestValidate_UsesLocation(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	v, err := New(catalog.Reference(), plus3)
	require.NoError(t, err)

	// 22:30 UTC 17 Oct == 01:30 18 Oct at UTC+3: сегодня уже 18 октября
	late := time.Date(2026, time.October, 17, 22, 30, 0, 0, time.UTC)

	d := validDraft()
	d.EventDate = "2026-10-17"
	assert.Equal(t, msgDatePast, v.Validate(d, late)[FieldEventDate])

	d.EventDate = "2026-10-18"
	assert.True(t, v.Validate(d, late).IsValid())
}
