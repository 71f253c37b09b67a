package service

import (
	"math"

	"github.com/Shobhanashankar/TourSafe/internal/model"
)

// EmergencyService serves the emergency-numbers catalog
type EmergencyService interface {
	Nearby(lat, lng float64) []model.EmergencyNumber
}

type emergencyService struct {
	catalog []model.EmergencyNumber
}

// NewEmergencyService creates an EmergencyService over the built-in catalog
func NewEmergencyService() EmergencyService {
	return &emergencyService{catalog: emergencyCatalog}
}

// emergencyCatalog is a fixed, illustrative directory; it is not backed by
// any real service registry.
var emergencyCatalog = []model.EmergencyNumber{
	{Name: "Police Control Room", Type: "police", Phone: "100", Location: model.Location{Lat: 28.6139, Lng: 77.2090}},
	{Name: "Ambulance", Type: "medical", Phone: "108", Location: model.Location{Lat: 28.5672, Lng: 77.2100}},
	{Name: "Fire Brigade", Type: "fire", Phone: "101", Location: model.Location{Lat: 28.6304, Lng: 77.2177}},
	{Name: "Tourist Helpline", Type: "helpline", Phone: "1363", Location: model.Location{Lat: 28.6129, Lng: 77.2295}},
	{Name: "Women Helpline", Type: "helpline", Phone: "1091", Location: model.Location{Lat: 28.6200, Lng: 77.2060}},
}

// Nearby annotates every catalog entry with its distance from the query
// point. The distance is Euclidean over raw coordinates, not geodesic, and
// is rounded to one decimal.
func (s *emergencyService) Nearby(lat, lng float64) []model.EmergencyNumber {
	out := make([]model.EmergencyNumber, len(s.catalog))
	for i, entry := range s.catalog {
		entry.Distance = roundOne(math.Hypot(lat-entry.Location.Lat, lng-entry.Location.Lng))
		out[i] = entry
	}
	return out
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
