package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRoom struct {
	RoomRate float64 `json:"roomRate" validate:"gte=0"`
}

type sampleRequest struct {
	BookingID string       `json:"bookingId" validate:"required"`
	Rooms     []sampleRoom `json:"rooms" validate:"omitempty,dive"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sampleRequest{BookingID: "b1"}))

	err := ValidateStruct(sampleRequest{})
	require.Error(t, err)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, "bookingId", appErr.Field)
	assert.Equal(t, "is required", appErr.Message)

	err = ValidateStruct(sampleRequest{BookingID: "b1", Rooms: []sampleRoom{{RoomRate: -1}}})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "rooms[0].roomRate", appErr.Field)
}
