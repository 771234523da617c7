package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cardioscreen/cardioscreen/internal/domain/patient"
)

// Service runs the scoring pipeline over stored or inline patient records.
type Service struct {
	patients *patient.Service
	scorer   Scorer
	logger   zerolog.Logger
}

func NewService(patients *patient.Service, scorer Scorer, logger zerolog.Logger) *Service {
	return &Service{patients: patients, scorer: scorer, logger: logger}
}

// Analyze scores the stored record identified by patientID.
func (s *Service) Analyze(ctx context.Context, patientID string) (*Analysis, error) {
	stored, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.analyzeRecord(stored.ID, stored.Record), nil
}

// AnalyzeInput validates and scores an inline submission without storing it.
func (s *Service) AnalyzeInput(ctx context.Context, in patient.Input) (*Analysis, error) {
	rec, err := patient.NewRecord(in)
	if err != nil {
		return nil, err
	}
	return s.analyzeRecord("", rec), nil
}

// analyzeRecord never fails: a scorer panic degrades to the error analysis
// so a report can still be produced.
func (s *Service) analyzeRecord(patientID string, rec *patient.Record) (out *Analysis) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("patient_id", patientID).
				Interface("panic", r).
				Msg("scoring failed, returning degraded analysis")
			out = s.errorAnalysis(patientID, rec, fmt.Sprintf("%v", r))
		}
	}()

	estimates := s.scorer.Score(rec)

	overall := 0.0
	for _, e := range estimates {
		if e.Probability > overall {
			overall = e.Probability
		}
	}

	var concerns []string
	for _, e := range estimates {
		if e.Tier == TierHigh || e.Tier == TierMedium {
			concerns = append(concerns, e.Disease)
		}
	}

	analysis := &Analysis{
		PatientID:          patientID,
		Timestamp:          time.Now().UTC(),
		Record:             rec,
		Estimates:          estimates,
		OverallRisk:        overall,
		PrimaryConcerns:    concerns,
		RecommendedActions: aggregateRecommendations(estimates),
	}
	s.logger.Info().
		Str("patient_id", patientID).
		Float64("overall_risk", overall).
		Int("estimates", len(estimates)).
		Msg("analysis complete")
	return analysis
}

// errorAnalysis is the degraded result returned when scoring fails.
func (s *Service) errorAnalysis(patientID string, rec *patient.Record, msg string) *Analysis {
	return &Analysis{
		PatientID: patientID,
		Timestamp: time.Now().UTC(),
		Record:    rec,
		Estimates: []Estimate{{
			Disease:       DiseaseError,
			Probability:   0,
			Confidence:    0,
			KeyFactors:    []string{"Error: " + msg},
			FactorWeights: map[string]float64{},
			Tier:          TierUnknown,
			Recommendations: []string{
				"Please try again later",
				"Consult with healthcare provider",
			},
		}},
		OverallRisk:        0,
		PrimaryConcerns:    []string{"System Error"},
		RecommendedActions: []string{"Contact technical support", "Retry analysis"},
	}
}
