package risk

import (
	"fmt"

	"github.com/cardioscreen/cardioscreen/internal/domain/patient"
)

// Scorer produces per-disease estimates for a validated patient record.
// The built-in ThresholdScorer can be swapped for a remote model service
// without touching the analysis pipeline.
type Scorer interface {
	Score(rec *patient.Record) []Estimate
}

// ThresholdScorer implements the additive threshold model. Each disease
// accumulates fixed increments from clinical cutoffs and clamps the sum
// to [0, 1].
type ThresholdScorer struct{}

func NewThresholdScorer() *ThresholdScorer {
	return &ThresholdScorer{}
}

// Score evaluates all diseases in catalog order.
func (s *ThresholdScorer) Score(rec *patient.Record) []Estimate {
	return []Estimate{
		s.scoreCAD(rec),
		s.scoreHeartAttack(rec),
		s.scoreArrhythmia(rec),
	}
}

func (s *ThresholdScorer) scoreCAD(rec *patient.Record) Estimate {
	risk := 0.0

	if rec.Age > 60 {
		risk += 0.3
	} else if rec.Age > 45 {
		risk += 0.15
	}
	if rec.Sex == patient.SexMale {
		risk += 0.1
	}
	if rec.ChestPainType.Anginal() {
		risk += 0.25
	}
	if rec.Cholesterol > 240 {
		risk += 0.2
	} else if rec.Cholesterol > 200 {
		risk += 0.1
	}
	risk += float64(rec.MajorVessels) * 0.15
	if rec.Thalassemia.Defect() {
		risk += 0.2
	}
	// Depressed exercise capacity relative to age-predicted maximum.
	expectedMaxHR := float64(220 - rec.Age)
	if float64(rec.MaxHeartRate) < expectedMaxHR*0.8 {
		risk += 0.15
	}
	risk = clamp(risk)

	return Estimate{
		Disease:     DiseaseCAD,
		Probability: risk,
		Confidence:  0.85,
		KeyFactors:  cadFactors(rec),
		FactorWeights: map[string]float64{
			"age":           0.15,
			"chest_pain":    0.25,
			"cholesterol":   0.20,
			"major_vessels": 0.25,
			"thalassemia":   0.15,
		},
		Tier:            tierFor(risk, 0.7, 0.4),
		Recommendations: diseaseRecommendations(DiseaseCAD, tierFor(risk, 0.7, 0.4)),
	}
}

func (s *ThresholdScorer) scoreHeartAttack(rec *patient.Record) Estimate {
	risk := 0.0

	if rec.Age > 65 {
		risk += 0.25
	}
	if rec.Sex == patient.SexMale && rec.Age > 45 {
		risk += 0.15
	} else if rec.Sex == patient.SexFemale && rec.Age > 55 {
		risk += 0.15
	}
	if rec.RestingBloodPressure > 140 {
		risk += 0.2
	} else if rec.RestingBloodPressure > 130 {
		risk += 0.1
	}
	if rec.Cholesterol > 240 {
		risk += 0.2
	}
	if rec.ExerciseInducedAngina {
		risk += 0.25
	}
	if rec.STDepression > 2.0 {
		risk += 0.2
	} else if rec.STDepression > 1.0 {
		risk += 0.1
	}
	risk = clamp(risk)

	return Estimate{
		Disease:     DiseaseHeartAttack,
		Probability: risk,
		Confidence:  0.78,
		KeyFactors:  heartAttackFactors(rec),
		FactorWeights: map[string]float64{
			"age":             0.20,
			"blood_pressure":  0.25,
			"cholesterol":     0.20,
			"exercise_angina": 0.25,
			"st_depression":   0.10,
		},
		Tier:            tierFor(risk, 0.6, 0.3),
		Recommendations: diseaseRecommendations(DiseaseHeartAttack, tierFor(risk, 0.6, 0.3)),
	}
}

func (s *ThresholdScorer) scoreArrhythmia(rec *patient.Record) Estimate {
	risk := 0.0

	if rec.RestingECG.Abnormal() {
		risk += 0.3
	}
	if rec.Age > 70 {
		risk += 0.2
	}
	// Heart rate response outside the expected band either way.
	expectedMaxHR := float64(220 - rec.Age)
	hr := float64(rec.MaxHeartRate)
	if hr > expectedMaxHR*0.95 || hr < expectedMaxHR*0.6 {
		risk += 0.2
	}
	if rec.ExerciseInducedAngina {
		risk += 0.15
	}
	risk = clamp(risk)

	return Estimate{
		Disease:     DiseaseArrhythmia,
		Probability: risk,
		Confidence:  0.72,
		KeyFactors:  arrhythmiaFactors(rec),
		FactorWeights: map[string]float64{
			"resting_ecg":     0.30,
			"max_heart_rate":  0.25,
			"exercise_angina": 0.25,
			"age":             0.20,
		},
		Tier:            tierFor(risk, 0.6, 0.3),
		Recommendations: diseaseRecommendations(DiseaseArrhythmia, tierFor(risk, 0.6, 0.3)),
	}
}

func cadFactors(rec *patient.Record) []string {
	var factors []string
	if rec.Age > 60 {
		factors = append(factors, fmt.Sprintf("Advanced age (%d years)", rec.Age))
	}
	if rec.ChestPainType.Anginal() {
		factors = append(factors, "Chest pain pattern consistent with angina")
	}
	if rec.Cholesterol > 240 {
		factors = append(factors, fmt.Sprintf("High cholesterol (%d mg/dl)", rec.Cholesterol))
	}
	if rec.MajorVessels > 0 {
		factors = append(factors, fmt.Sprintf("Blocked major vessels (%d)", rec.MajorVessels))
	}
	if rec.Thalassemia.Defect() {
		factors = append(factors, "Abnormal thalassemia test")
	}
	return factors
}

func heartAttackFactors(rec *patient.Record) []string {
	var factors []string
	if rec.Age > 65 {
		factors = append(factors, fmt.Sprintf("Advanced age (%d years)", rec.Age))
	}
	if rec.RestingBloodPressure > 140 {
		factors = append(factors, fmt.Sprintf("High blood pressure (%d mmHg)", rec.RestingBloodPressure))
	}
	if rec.Cholesterol > 240 {
		factors = append(factors, fmt.Sprintf("High cholesterol (%d mg/dl)", rec.Cholesterol))
	}
	if rec.ExerciseInducedAngina {
		factors = append(factors, "Exercise-induced chest pain")
	}
	return factors
}

func arrhythmiaFactors(rec *patient.Record) []string {
	var factors []string
	if rec.RestingECG.Abnormal() {
		factors = append(factors, "Abnormal resting ECG")
	}
	if rec.MaxHeartRate < 100 {
		factors = append(factors, fmt.Sprintf("Low maximum heart rate (%d bpm)", rec.MaxHeartRate))
	}
	if rec.ExerciseInducedAngina {
		factors = append(factors, "Exercise-induced symptoms")
	}
	return factors
}

func tierFor(risk, high, medium float64) Tier {
	switch {
	case risk > high:
		return TierHigh
	case risk > medium:
		return TierMedium
	}
	return TierLow
}

func clamp(risk float64) float64 {
	if risk > 1.0 {
		return 1.0
	}
	if risk < 0 {
		return 0
	}
	return risk
}
