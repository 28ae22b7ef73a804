package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportationTypeFromVehicleMode(t *testing.T) {
	tests := []struct {
		mode int
		want TransportationType
	}{
		{0, TransportationBus},
		{1, TransportationBoat},
		{2, TransportationTrain},
		{3, TransportationTram},
		{4, TransportationMetro},
	}

	for _, tt := range tests {
		got, ok := TransportationTypeFromVehicleMode(tt.mode)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "vehicle mode %d", tt.mode)
	}

	_, ok := TransportationTypeFromVehicleMode(5)
	assert.False(t, ok)
}

func TestParseTransportationType(t *testing.T) {
	got, ok := ParseTransportationType("AIRPORT_BUS")
	assert.True(t, ok)
	assert.Equal(t, TransportationAirportBus, got)

	got, ok = ParseTransportationType("metro")
	assert.True(t, ok)
	assert.Equal(t, TransportationMetro, got)

	_, ok = ParseTransportationType("hovercraft")
	assert.False(t, ok)
}

func TestTransportationType_String(t *testing.T) {
	assert.Equal(t, "Train", TransportationTrain.String())
	assert.Equal(t, "Unknown", TransportationType(42).String())
	assert.Len(t, AllTransportationTypes(), 9)
}
