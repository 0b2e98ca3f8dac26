package pricing

import (
	"encoding/json"
	"testing"

	"hotelier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestCalculateSingleRoom(t *testing.T) {
	rooms := []models.RoomStayLineItem{
		{Name: "Deluxe King", StayLength: "2 nights", RoomRate: 300, Taxes: 45, ResortFee: 25},
	}

	got := Calculate(rooms, ptr(0), ptr(0))

	require.Len(t, got.Rooms, 1)
	assert.Equal(t, 370.0, got.Rooms[0].Total)
	assert.Equal(t, 370.0, got.Subtotal)
	assert.Equal(t, 370.0, got.GrandTotal)
}

func TestCalculateTwoRoomsWithAdjustments(t *testing.T) {
	rooms := []models.RoomStayLineItem{
		{Name: "Deluxe King", RoomRate: 300, Taxes: 45, ResortFee: 25},
		{Name: "Ocean Suite", RoomRate: 350, Taxes: 50, ResortFee: 25},
	}

	got := Calculate(rooms, ptr(150), ptr(100))

	assert.Equal(t, 370.0, got.Rooms[0].Total)
	assert.Equal(t, 425.0, got.Rooms[1].Total)
	assert.Equal(t, 795.0, got.Subtotal)
	assert.Equal(t, 845.0, got.GrandTotal)
	assert.Equal(t, 150.0, got.ExtraCharges)
	assert.Equal(t, 100.0, got.Discount)
}

func TestCalculateIgnoresClientTotals(t *testing.T) {
	rooms := []models.RoomStayLineItem{
		{Name: "Standard", RoomRate: 100, Taxes: 10, ResortFee: 5, Total: 1},
	}

	got := Calculate(rooms, nil, nil)

	assert.Equal(t, 115.0, got.Rooms[0].Total)
	assert.Equal(t, 115.0, got.GrandTotal)
	assert.Equal(t, 1.0, rooms[0].Total, "input must not be mutated")
}

func TestCalculateEmpty(t *testing.T) {
	got := Calculate(nil, nil, nil)

	assert.Empty(t, got.Rooms)
	assert.Equal(t, 0.0, got.Subtotal)
	assert.Equal(t, 0.0, got.GrandTotal)
	assert.Equal(t, 0.0, got.ExtraCharges)
	assert.Equal(t, 0.0, got.Discount)
}

func TestCalculateDiscountBeyondTotal(t *testing.T) {
	rooms := []models.RoomStayLineItem{{RoomRate: 50}}

	got := Calculate(rooms, ptr(10), ptr(100))

	assert.Equal(t, -40.0, got.GrandTotal)
}

func TestCalculatePreservesOrder(t *testing.T) {
	rooms := []models.RoomStayLineItem{
		{Name: "C", RoomRate: 3},
		{Name: "A", RoomRate: 1},
		{Name: "B", RoomRate: 2},
	}

	got := Calculate(rooms, nil, nil)

	names := []string{got.Rooms[0].Name, got.Rooms[1].Name, got.Rooms[2].Name}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestCalculateMatchesFormula(t *testing.T) {
	cases := []struct {
		rates, taxes, fees []float64
		extra, discount    float64
	}{
		{[]float64{120}, []float64{18}, []float64{0}, 0, 0},
		{[]float64{199, 249, 99}, []float64{29, 37, 14}, []float64{25, 25, 0}, 40, 60},
		{[]float64{0, 0}, []float64{0, 0}, []float64{0, 0}, 12, 0},
	}

	for _, tc := range cases {
		var rooms []models.RoomStayLineItem
		want := 0.0
		for i := range tc.rates {
			rooms = append(rooms, models.RoomStayLineItem{RoomRate: tc.rates[i], Taxes: tc.taxes[i], ResortFee: tc.fees[i]})
			want += tc.rates[i] + tc.taxes[i] + tc.fees[i]
		}
		want = want + tc.extra - tc.discount

		got := Calculate(rooms, ptr(tc.extra), ptr(tc.discount))
		assert.Equal(t, want, got.GrandTotal)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	rooms := []models.RoomStayLineItem{
		{Name: "Deluxe King", StayLength: "2 nights", RoomRate: 300, Taxes: 45, ResortFee: 25},
		{Name: "Ocean Suite", StayLength: "1 night", RoomRate: 350, Taxes: 50, ResortFee: 25},
	}

	first, err := json.Marshal(Calculate(rooms, ptr(150), ptr(100)))
	require.NoError(t, err)
	second, err := json.Marshal(Calculate(rooms, ptr(150), ptr(100)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
