package risk

import (
	"time"

	"github.com/cardioscreen/cardioscreen/internal/domain/patient"
)

// Tier is a qualitative risk band derived from a probability.
type Tier string

const (
	TierLow     Tier = "Low"
	TierMedium  Tier = "Medium"
	TierHigh    Tier = "High"
	TierUnknown Tier = "Unknown"
)

// Disease names produced by the scoring catalog.
const (
	DiseaseCAD         = "Coronary Artery Disease"
	DiseaseHeartAttack = "Heart Attack Risk"
	DiseaseArrhythmia  = "Arrhythmia Risk"

	// DiseaseError labels the degraded estimate emitted when scoring fails.
	DiseaseError = "Analysis Error"
)

// Estimate is the scored outcome for a single disease.
type Estimate struct {
	Disease         string             `json:"disease_name"`
	Probability     float64            `json:"probability"`
	Confidence      float64            `json:"confidence"`
	KeyFactors      []string           `json:"key_factors"`
	FactorWeights   map[string]float64 `json:"factor_weights"`
	Tier            Tier               `json:"risk_level"`
	Recommendations []string           `json:"recommendations"`
}

// Analysis is the full multi-disease assessment for one patient.
type Analysis struct {
	PatientID          string          `json:"patient_id"`
	Timestamp          time.Time       `json:"timestamp"`
	Record             *patient.Record `json:"patient_data"`
	Estimates          []Estimate      `json:"disease_results"`
	OverallRisk        float64         `json:"overall_risk_score"`
	PrimaryConcerns    []string        `json:"primary_concerns"`
	RecommendedActions []string        `json:"recommended_actions"`
}

// HighestRisk returns the estimate with the largest probability, or nil
// when the analysis carries no estimates. Ties keep the earlier estimate.
func (a *Analysis) HighestRisk() *Estimate {
	if len(a.Estimates) == 0 {
		return nil
	}
	best := &a.Estimates[0]
	for i := 1; i < len(a.Estimates); i++ {
		if a.Estimates[i].Probability > best.Probability {
			best = &a.Estimates[i]
		}
	}
	return best
}
