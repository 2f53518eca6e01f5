package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxSpecialRequestsLength = 500
	MaxDraftKeyLength        = 128
)

// Reference catalog: два зала и почасовые слоты 09:00-20:00
var (
	ReferenceHalls = []Hall{
		{
			ID:        HallSmall,
			Name:      "Hall 1 (Small)",
			Capacity:  10,
			BasePrice: 1000,
			Features: []string{
				"Cozy atmosphere",
				"Modern audio system",
				"Comfortable seating",
				"Basic decorations included",
			},
		},
		{
			ID:        HallLarge,
			Name:      "Hall 2 (Large)",
			Capacity:  30,
			BasePrice: 2000,
			Features: []string{
				"Spacious layout",
				"Premium sound system",
				"Projector setup",
				"Custom decoration options",
			},
		},
	}

	ReferenceTimeSlots = []string{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
		"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
	}
)
