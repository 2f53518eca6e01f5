package validation

// Сообщения для пользователя, по одному на поле
const (
	msgHallRequired    = "Please select a hall"
	msgHallUnknown     = "Selected hall is not available"
	msgDateRequired    = "Event date is required"
	msgDateInvalid     = "Please enter a valid date (YYYY-MM-DD)"
	msgDatePast        = "Please select a future date"
	msgStartRequired   = "Start time is required"
	msgEndRequired     = "End time is required"
	msgTimeInvalid     = "Please enter a valid time (HH:MM)"
	msgTimeNotSlot     = "Please select one of the available time slots"
	msgStartPast       = "Please select a future time"
	msgEndPast         = "Please select a future end time"
	msgEndBeforeStart  = "End time must be after start time"
	msgNameRequired    = "Name is required"
	msgEmailRequired   = "Email is required"
	msgEmailInvalid    = "Invalid email address"
	msgPhoneRequired   = "Phone number is required"
	msgPhoneInvalid    = "Please enter a valid 10-digit phone number"
	msgGuestsRequired  = "Number of guests is required"
	msgGuestsMin       = "Must have at least 1 guest"
	msgGuestsMax       = "Maximum %d guests allowed for %s"
	msgRequestsTooLong = "Special requests must be at most %s characters"
	msgInvalidFallback = "Invalid value"
)
