package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBooking/internal/config"
	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/types"
)

func TestReference(t *testing.T) {
	c := Reference()

	small, err := c.GetHall(domain.HallSmall)
	require.NoError(t, err)
	assert.Equal(t, 10, small.Capacity)
	assert.Equal(t, 1000.0, small.BasePrice)
	assert.Len(t, small.Features, 4)

	large, err := c.GetHall(domain.HallLarge)
	require.NoError(t, err)
	assert.Equal(t, 30, large.Capacity)
	assert.Equal(t, 2000.0, large.BasePrice)

	slots := c.ListTimeSlots()
	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("20:00"), slots[11])
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].IsAfter(slots[i-1]))
	}
}

func TestGetHall_NotFound(t *testing.T) {
	_, err := Reference().GetHall("hall3")
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := Reference()

	hall, err := c.GetHall(domain.HallSmall)
	require.NoError(t, err)
	hall.Features[0] = "mutated"
	hall.Capacity = 1000

	slots := c.ListTimeSlots()
	slots[0] = "23:00"

	again, err := c.GetHall(domain.HallSmall)
	require.NoError(t, err)
	assert.Equal(t, "Cozy atmosphere", again.Features[0])
	assert.Equal(t, 10, again.Capacity)
	assert.Equal(t, types.TimeString("09:00"), c.ListTimeSlots()[0])
}

func TestCatalog_IsTimeSlot(t *testing.T) {
	c := Reference()
	assert.True(t, c.IsTimeSlot("14:00"))
	assert.False(t, c.IsTimeSlot("14:30"))
	assert.False(t, c.IsTimeSlot("21:00"))
}

func TestListHalls_Ordered(t *testing.T) {
	c, err := New([]domain.Hall{
		{ID: "hall2", Capacity: 30, BasePrice: 2000},
		{ID: "hall1", Capacity: 10, BasePrice: 1000},
	}, []string{"09:00", "10:00"})
	require.NoError(t, err)

	halls := c.ListHalls()
	require.Len(t, halls, 2)
	assert.Equal(t, domain.HallID("hall1"), halls[0].ID)
	assert.Equal(t, domain.HallID("hall2"), halls[1].ID)
}

func TestNew_Invalid(t *testing.T) {
	valid := domain.Hall{ID: "hall1", Capacity: 10, BasePrice: 1000}
	slots := []string{"09:00", "10:00"}

	tests := []struct {
		name  string
		halls []domain.Hall
		slots []string
	}{
		{name: "no halls", halls: nil, slots: slots},
		{name: "empty id", halls: []domain.Hall{{Capacity: 1, BasePrice: 1}}, slots: slots},
		{name: "duplicate id", halls: []domain.Hall{valid, valid}, slots: slots},
		{name: "zero capacity", halls: []domain.Hall{{ID: "x", BasePrice: 1}}, slots: slots},
		{name: "zero price", halls: []domain.Hall{{ID: "x", Capacity: 1}}, slots: slots},
		{name: "single slot", halls: []domain.Hall{valid}, slots: []string{"09:00"}},
		{name: "bad slot format", halls: []domain.Hall{valid}, slots: []string{"09:00", "9:30"}},
		{name: "unordered slots", halls: []domain.Hall{valid}, slots: []string{"10:00", "09:00"}},
		{name: "duplicate slots", halls: []domain.Hall{valid}, slots: []string{"10:00", "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.halls, tt.slots)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	c, err := NewFromConfig(config.CatalogConfig{
		TimeSlots: []string{"10:00", "11:00", "12:00"},
		Halls: []config.HallConfig{
			{ID: "loft", Name: "Loft", Capacity: 5, BasePrice: 300, Features: []string{"Skylight"}},
		},
	})
	require.NoError(t, err)

	hall, err := c.GetHall("loft")
	require.NoError(t, err)
	assert.Equal(t, "Loft", hall.Name)
	assert.Len(t, c.ListTimeSlots(), 3)
}

func TestWithHalls_KeepsTimeSlots(t *testing.T) {
	c, err := Reference().WithHalls([]domain.Hall{{ID: "hall1", Capacity: 12, BasePrice: 1100}})
	require.NoError(t, err)

	hall, err := c.GetHall("hall1")
	require.NoError(t, err)
	assert.Equal(t, 12, hall.Capacity)
	assert.Len(t, c.ListTimeSlots(), 12)

	_, err = c.GetHall("hall2")
	assert.ErrorIs(t, err, ErrHallNotFound)
}
