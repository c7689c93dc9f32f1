package models

// RiskLevel is the discrete fire-risk classification.
type RiskLevel string

const (
	RiskModerate     RiskLevel = "Moderate"
	RiskHigh         RiskLevel = "High"
	RiskExtreme      RiskLevel = "Extreme"
	RiskCatastrophic RiskLevel = "Catastrophic"
)

// RiskEstimate is the response of a fire-risk estimation. It is computed per
// request and never stored.
type RiskEstimate struct {
	Latitude       float64                 `json:"latitude"`
	Longitude      float64                 `json:"longitude"`
	RiskLevel      RiskLevel               `json:"riskLevel"`
	Probability    string                  `json:"probability"`
	HistoricalData []FireIncidentAggregate `json:"historicalData"`
	City           string                  `json:"city"`
	State          string                  `json:"state"`
}
