package model

// EmergencyNumber is an entry of the hardcoded emergency-services catalog,
// annotated with the distance from the query point
type EmergencyNumber struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Phone    string   `json:"phone"`
	Location Location `json:"location"`
	Distance float64  `json:"distance"`
}
