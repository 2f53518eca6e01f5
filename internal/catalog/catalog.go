package catalog

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-HallBooking/internal/config"
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

// Catalog неизменяемый справочник залов и временных слотов.
// Безопасен для конкурентного чтения: после создания не модифицируется,
// наружу отдаются только копии
type Catalog struct {
	halls     map[domain.HallID]domain.Hall
	hallOrder []domain.HallID
	timeSlots []types.TimeString
}

// New создает каталог и проверяет его инварианты
func New(halls []domain.Hall, timeSlots []string) (*Catalog, error) {
	if len(halls) == 0 {
		return nil, fmt.Errorf("%w: at least one hall is required", ErrInvalidCatalog)
	}

	c := &Catalog{
		halls: make(map[domain.HallID]domain.Hall, len(halls)),
	}

	for _, hall := range halls {
		if hall.ID == "" {
			return nil, fmt.Errorf("%w: hall id is required", ErrInvalidCatalog)
		}
		if _, exists := c.halls[hall.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate hall id %q", ErrInvalidCatalog, hall.ID)
		}
		if hall.Capacity <= 0 {
			return nil, fmt.Errorf("%w: hall %q capacity must be positive", ErrInvalidCatalog, hall.ID)
		}
		if hall.BasePrice <= 0 {
			return nil, fmt.Errorf("%w: hall %q base price must be positive", ErrInvalidCatalog, hall.ID)
		}
		c.halls[hall.ID] = hall.Clone()
		c.hallOrder = append(c.hallOrder, hall.ID)
	}
	sort.Slice(c.hallOrder, func(i, j int) bool { return c.hallOrder[i] < c.hallOrder[j] })

	if len(timeSlots) < 2 {
		return nil, fmt.Errorf("%w: at least two time slots are required", ErrInvalidCatalog)
	}
	for i, raw := range timeSlots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: time slot #%d: %v", ErrInvalidCatalog, i, err)
		}
		if i > 0 && !slot.IsAfter(c.timeSlots[i-1]) {
			return nil, fmt.Errorf("%w: time slots must be strictly ascending (%s after %s)",
				ErrInvalidCatalog, slot, c.timeSlots[i-1])
		}
		c.timeSlots = append(c.timeSlots, slot)
	}

	return c, nil
}

// NewFromConfig создает каталог из секции [catalog] config.toml
func NewFromConfig(cfg config.CatalogConfig) (*Catalog, error) {
	halls := make([]domain.Hall, 0, len(cfg.Halls))
	for _, h := range cfg.Halls {
		halls = append(halls, domain.Hall{
			ID:        domain.HallID(h.ID),
			Name:      h.Name,
			Capacity:  h.Capacity,
			BasePrice: h.BasePrice,
			Features:  h.Features,
		})
	}
	return New(halls, cfg.TimeSlots)
}

// Reference возвращает эталонный каталог (hall1/hall2, слоты 09:00-20:00)
func Reference() *Catalog {
	c, err := New(domain.ReferenceHalls, domain.ReferenceTimeSlots)
	if err != nil {
		panic(fmt.Sprintf("catalog: reference catalog is invalid: %v", err))
	}
	return c
}

// WithHalls возвращает новый каталог с тем же расписанием, но другим набором залов
// (используется при загрузке залов из сервиса бронирований)
func (c *Catalog) WithHalls(halls []domain.Hall) (*Catalog, error) {
	slots := make([]string, len(c.timeSlots))
	for i, s := range c.timeSlots {
		slots[i] = s.String()
	}
	return New(halls, slots)
}

// GetHall возвращает зал по идентификатору
func (c *Catalog) GetHall(id domain.HallID) (domain.Hall, error) {
	hall, ok := c.halls[id]
	if !ok {
		return domain.Hall{}, fmt.Errorf("%w: %q", ErrHallNotFound, id)
	}
	return hall.Clone(), nil
}

// ListHalls возвращает все залы, упорядоченные по идентификатору
func (c *Catalog) ListHalls() []domain.Hall {
	halls := make([]domain.Hall, 0, len(c.hallOrder))
	for _, id := range c.hallOrder {
		halls = append(halls, c.halls[id].Clone())
	}
	return halls
}

// ListTimeSlots возвращает упорядоченную копию слотов
func (c *Catalog) ListTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, len(c.timeSlots))
	copy(slots, c.timeSlots)
	return slots
}

// IsTimeSlot проверяет, что время является одним из слотов каталога
func (c *Catalog) IsTimeSlot(t types.TimeString) bool {
	for _, slot := range c.timeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
