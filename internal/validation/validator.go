package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

// Имена полей черновика (совпадают с json тегами BookingDraft)
const (
	FieldHallID          = "hallId"
	FieldEventDate       = "eventDate"
	FieldStartTime       = "startTime"
	FieldEndTime         = "endTime"
	FieldCustomerName    = "customerName"
	FieldCustomerEmail   = "customerEmail"
	FieldCustomerPhone   = "customerPhone"
	FieldGuestCount      = "guestCount"
	FieldSpecialRequests = "specialRequests"
)

var (
	emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Validator проверяет черновик бронирования против каталога и текущего времени.
// Validate не имеет побочных эффектов и безопасен для конкурентного вызова
type Validator struct {
	validate *validator.Validate
	catalog  Catalog
	location *time.Location
}

// New создает валидатор; loc - часовой пояс, в котором интерпретируются дата и слоты
func New(catalog Catalog, loc *time.Location) (*Validator, error) {
	if loc == nil {
		loc = time.Local
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		return nil, fmt.Errorf("validation: register notblank: %w", err)
	}
	if err := v.RegisterValidation("booking_email", validateEmail); err != nil {
		return nil, fmt.Errorf("validation: register booking_email: %w", err)
	}
	if err := v.RegisterValidation("phone10", validatePhone); err != nil {
		return nil, fmt.Errorf("validation: register phone10: %w", err)
	}

	return &Validator{
		validate: v,
		catalog:  catalog,
		location: loc,
	}, nil
}

// Validate возвращает ошибки по полям; пустая карта означает валидный черновик
func (v *Validator) Validate(draft domain.BookingDraft, now time.Time) domain.ValidationErrors {
	errs := make(domain.ValidationErrors)

	// 1. Проверяем форму полей по тегам
	if err := v.validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if !errs.Has(fe.Field()) {
					errs[fe.Field()] = fieldMessage(fe)
				}
			}
		}
	}

	// 2. Зал из каталога
	var (
		hall   domain.Hall
		hallOK bool
	)
	if !errs.Has(FieldHallID) {
		found, err := v.catalog.GetHall(domain.HallID(draft.HallID))
		if err != nil {
			errs[FieldHallID] = msgHallUnknown
		} else {
			hall, hallOK = found, true
		}
	}

	// 3. Дата не раньше сегодняшней
	var (
		date   time.Time
		dateOK bool
	)
	if !errs.Has(FieldEventDate) {
		parsed, err := time.ParseInLocation(domain.DateFormat, draft.EventDate, v.location)
		if err != nil {
			errs[FieldEventDate] = msgDateInvalid
		} else {
			date, dateOK = parsed, true
			if parsed.Before(domain.DateOnly(now, v.location)) {
				errs[FieldEventDate] = msgDatePast
			}
		}
	}

	// 4. Время начала: слот каталога и в будущем
	start := types.TimeString(draft.StartTime)
	startOK := false
	if !errs.Has(FieldStartTime) {
		if msg := v.checkSlot(start, date, dateOK, now, msgStartPast); msg != "" {
			errs[FieldStartTime] = msg
		}
		startOK = v.catalog.IsTimeSlot(start)
	}

	// 5. Время окончания: слот каталога, после начала и в будущем
	end := types.TimeString(draft.EndTime)
	if !errs.Has(FieldEndTime) {
		switch {
		case !v.catalog.IsTimeSlot(end):
			errs[FieldEndTime] = msgTimeNotSlot
		case startOK && !end.IsAfter(start):
			errs[FieldEndTime] = msgEndBeforeStart
		default:
			if msg := v.checkSlot(end, date, dateOK, now, msgEndPast); msg != "" {
				errs[FieldEndTime] = msg
			}
		}
	}

	// 6. Количество гостей в пределах вместимости выбранного зала
	if !errs.Has(FieldGuestCount) && hallOK && !hall.Fits(draft.GuestCount) {
		errs[FieldGuestCount] = fmt.Sprintf(msgGuestsMax, hall.Capacity, hall.Name)
	}

	return errs
}

// checkSlot проверяет принадлежность каталогу и то, что (date, t) строго позже now.
// Проверка будущего выполняется только для распознанной даты
func (v *Validator) checkSlot(t types.TimeString, date time.Time, dateOK bool, now time.Time, pastMsg string) string {
	if !v.catalog.IsTimeSlot(t) {
		return msgTimeNotSlot
	}
	if !dateOK {
		return ""
	}
	at, err := t.On(date, v.location)
	if err != nil {
		return msgTimeInvalid
	}
	if !at.After(now) {
		return pastMsg
	}
	return ""
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case FieldHallID:
		return msgHallRequired
	case FieldEventDate:
		if fe.Tag() == "required" {
			return msgDateRequired
		}
		return msgDateInvalid
	case FieldStartTime:
		if fe.Tag() == "required" {
			return msgStartRequired
		}
		return msgTimeInvalid
	case FieldEndTime:
		if fe.Tag() == "required" {
			return msgEndRequired
		}
		return msgTimeInvalid
	case FieldCustomerName:
		return msgNameRequired
	case FieldCustomerEmail:
		if fe.Tag() == "required" {
			return msgEmailRequired
		}
		return msgEmailInvalid
	case FieldCustomerPhone:
		if fe.Tag() == "required" {
			return msgPhoneRequired
		}
		return msgPhoneInvalid
	case FieldGuestCount:
		if fe.Tag() == "required" {
			return msgGuestsRequired
		}
		return msgGuestsMin
	case FieldSpecialRequests:
		return fmt.Sprintf(msgRequestsTooLong, fe.Param())
	}
	return msgInvalidFallback
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}
