package domain

// HallID идентификатор зала из каталога
type HallID string

// Reference catalog identifiers
const (
	HallSmall HallID = "hall1"
	HallLarge HallID = "hall2"
)

// Hall is an immutable venue definition loaded at process start.
type Hall struct {
	ID        HallID
	Name      string
	Capacity  int
	BasePrice float64
	Features  []string
}

// Fits returns true if guests do not exceed the hall capacity
func (h *Hall) Fits(guests int) bool {
	return guests >= 1 && guests <= h.Capacity
}

// Clone returns a copy that does not share the features slice
func (h Hall) Clone() Hall {
	features := make([]string, len(h.Features))
	copy(features, h.Features)
	h.Features = features
	return h
}
