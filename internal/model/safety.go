package model

// SafetyFeatures are the normalized inputs of the safety-score model
type SafetyFeatures struct {
	Risk    float64 `json:"risk"`
	Speed   float64 `json:"speed"`
	Weather float64 `json:"weather"`
	Crowd   float64 `json:"crowd"`
}

// SafetyScore is a scored assessment with a traffic-light color and a tip
type SafetyScore struct {
	Score float64 `json:"score"`
	Color string  `json:"color"`
	Tip   string  `json:"tip"`
}

// AnomalyResult reports whether the submitted features look anomalous
type AnomalyResult struct {
	Anomaly bool `json:"anomaly"`
}
