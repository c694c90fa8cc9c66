package domain

import "time"

// RiskBand buckets a numeric risk score.
type RiskBand string

const (
	RiskBandLow    RiskBand = "LOW"
	RiskBandMedium RiskBand = "MEDIUM"
	RiskBandHigh   RiskBand = "HIGH"
)

// RiskBandFor derives the band for a score. Boundaries are inclusive at the
// top of each band: 29 is LOW, 30 and 69 are MEDIUM, 70 is HIGH.
func RiskBandFor(score int) RiskBand {
	switch {
	case score < 30:
		return RiskBandLow
	case score < 70:
		return RiskBandMedium
	default:
		return RiskBandHigh
	}
}

// RiskScore is one scoring run for a checking application. Rows are append
// only; the current score is the most recently created row.
type RiskScore struct {
	RiskScoreID   string    `json:"riskScoreID"`
	ApplicationID string    `json:"applicationID"`
	Score         int       `json:"score"`
	Band          RiskBand  `json:"band"`
	DriverCodes   []string  `json:"driverCodes"`
	CreatedAt     time.Time `json:"createdAt"`
}
