package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmergencyService_Nearby(t *testing.T) {
	svc := NewEmergencyService()

	numbers := svc.Nearby(28.6139, 77.2090)

	assert.NotEmpty(t, numbers)
	for _, n := range numbers {
		assert.NotEmpty(t, n.Name)
		assert.NotEmpty(t, n.Phone)
	}
}

func TestEmergencyService_Nearby_ZeroDistanceAtOwnCoordinates(t *testing.T) {
	svc := NewEmergencyService()

	for _, entry := range emergencyCatalog {
		numbers := svc.Nearby(entry.Location.Lat, entry.Location.Lng)
		found := false
		for _, n := range numbers {
			if n.Name == entry.Name {
				found = true
				assert.Equal(t, 0.0, n.Distance)
			}
		}
		assert.True(t, found)
	}
}

func TestEmergencyService_Nearby_RoundsToOneDecimal(t *testing.T) {
	svc := NewEmergencyService()

	numbers := svc.Nearby(10.0, 10.0)
	for _, n := range numbers {
		// One decimal means scaling by ten yields an integer
		assert.Equal(t, math.Trunc(n.Distance*10), n.Distance*10)
	}
}
