package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cardioscreen/cardioscreen/internal/domain/risk"
)

// Service assembles the full report document from an analysis. It is the
// single assembly path for both stored and inline submissions.
type Service struct {
	risks  *risk.Service
	logger zerolog.Logger
}

func NewService(risks *risk.Service, logger zerolog.Logger) *Service {
	return &Service{risks: risks, logger: logger}
}

// Generate runs the scoring pipeline for a stored patient and assembles
// the report.
func (s *Service) Generate(ctx context.Context, patientID string) (*Report, error) {
	analysis, err := s.risks.Analyze(ctx, patientID)
	if err != nil {
		return nil, err
	}
	rep := FromAnalysis(analysis)
	s.logger.Info().Str("patient_id", patientID).Msg("report generated")
	return rep, nil
}

// FromAnalysis assembles every report section from one analysis result.
func FromAnalysis(a *risk.Analysis) *Report {
	return &Report{
		PatientSummary:   patientSummary(a),
		RiskAssessment:   riskAssessment(a),
		Visualizations:   buildCharts(a),
		DetailedAnalysis: detailedAnalysis(a),
		Recommendations:  buildRecommendations(a),
		MedicalSummary:   medicalSummary(a),
	}
}

func patientSummary(a *risk.Analysis) PatientSummary {
	summary := PatientSummary{
		PatientID:    a.PatientID,
		AnalysisDate: a.Timestamp,
		Demographics: Demographics{
			OverallRiskScore: formatPercent(a.OverallRisk),
		},
	}
	rec := a.Record
	if rec == nil {
		return summary
	}
	summary.Demographics.Age = rec.Age
	summary.Demographics.Sex = strings.ToUpper(rec.Sex.String())
	summary.KeyMeasurements = KeyMeasurements{
		RestingBloodPressure: fmt.Sprintf("%d mmHg", rec.RestingBloodPressure),
		Cholesterol:          fmt.Sprintf("%d mg/dl", rec.Cholesterol),
		MaxHeartRate:         fmt.Sprintf("%d bpm", rec.MaxHeartRate),
		ChestPainType:        titleCase(rec.ChestPainType.String()),
	}
	summary.RiskIndicators = RiskIndicators{
		ExerciseInducedAngina:     yesNo(rec.ExerciseInducedAngina),
		FastingBloodSugarElevated: yesNo(rec.FastingBloodSugar),
		STDepression:              fmt.Sprintf("%.1f", rec.STDepression),
		MajorVesselsAffected:      rec.MajorVessels,
	}
	return summary
}

func riskAssessment(a *risk.Analysis) RiskAssessment {
	ranked := make([]risk.Estimate, len(a.Estimates))
	copy(ranked, a.Estimates)
	// Descending by probability; stable sort keeps catalog order on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Probability > ranked[j].Probability
	})

	risks := make([]DiseaseRisk, 0, len(ranked))
	for _, e := range ranked {
		risks = append(risks, diseaseRisk(e))
	}

	distribution := map[string]int{
		string(risk.TierLow):    0,
		string(risk.TierMedium): 0,
		string(risk.TierHigh):   0,
	}
	for _, e := range a.Estimates {
		distribution[string(e.Tier)]++
	}

	return RiskAssessment{
		OverallRiskScore: formatPercent(a.OverallRisk),
		PrimaryConcerns:  a.PrimaryConcerns,
		DiseaseRisks:     risks,
		RiskDistribution: distribution,
	}
}

func detailedAnalysis(a *risk.Analysis) []DiseaseAnalysis {
	out := make([]DiseaseAnalysis, 0, len(a.Estimates))
	for _, e := range a.Estimates {
		out = append(out, DiseaseAnalysis{
			DiseaseName:             e.Disease,
			RiskAssessment:          diseaseRisk(e),
			KeyContributingFactors:  e.KeyFactors,
			FactorWeights:           e.FactorWeights,
			ClinicalInterpretation:  clinicalInterpretation(e),
			SpecificRecommendations: e.Recommendations,
		})
	}
	return out
}

func diseaseRisk(e risk.Estimate) DiseaseRisk {
	return DiseaseRisk{
		Disease:     e.Disease,
		Probability: formatPercent(e.Probability),
		RiskLevel:   string(e.Tier),
		Confidence:  formatPercent(e.Confidence),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
