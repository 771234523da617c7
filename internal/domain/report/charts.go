package report

import (
	"fmt"
	"sort"

	"github.com/cardioscreen/cardioscreen/internal/domain/patient"
	"github.com/cardioscreen/cardioscreen/internal/domain/risk"
)

// Tier colors used across all chart descriptors.
const (
	ColorLow    = "#2E8B57"
	ColorMedium = "#FF8C00"
	ColorHigh   = "#DC143C"
	ColorError  = "#808080"
)

func tierColor(tier risk.Tier) string {
	switch tier {
	case risk.TierLow:
		return ColorLow
	case risk.TierMedium:
		return ColorMedium
	case risk.TierHigh:
		return ColorHigh
	}
	return ColorError
}

// ChartSet holds renderer-agnostic chart descriptors. A frontend turns
// these into actual plots; the server only computes the data.
type ChartSet struct {
	RiskProbabilities BarChart     `json:"risk_probabilities"`
	RiskDistribution  PieChart     `json:"risk_distribution"`
	FactorImportance  HeatmapChart `json:"factor_importance"`
	PatientProfile    RadarChart   `json:"patient_profile"`
	ConfidenceRisk    ScatterChart `json:"confidence_risk"`
}

type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Text  string  `json:"text"`
}

type BarChart struct {
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
	Bars   []Bar  `json:"bars"`
}

type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type PieChart struct {
	Title  string     `json:"title"`
	Slices []PieSlice `json:"slices"`
	Hole   float64    `json:"hole"`
}

type HeatmapChart struct {
	Title   string      `json:"title"`
	Rows    []string    `json:"rows"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

type RadarChart struct {
	Title  string    `json:"title"`
	Axes   []string  `json:"axes"`
	Values []float64 `json:"values"`
}

type ScatterPoint struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

type ScatterChart struct {
	Title  string         `json:"title"`
	XLabel string         `json:"x_label"`
	YLabel string         `json:"y_label"`
	Points []ScatterPoint `json:"points"`
}

func buildCharts(a *risk.Analysis) ChartSet {
	return ChartSet{
		RiskProbabilities: riskProbabilityChart(a.Estimates),
		RiskDistribution:  riskDistributionChart(a.Estimates),
		FactorImportance:  factorImportanceHeatmap(a.Estimates),
		PatientProfile:    patientProfileRadar(a.Record),
		ConfidenceRisk:    confidenceRiskScatter(a.Estimates),
	}
}

func riskProbabilityChart(estimates []risk.Estimate) BarChart {
	bars := make([]Bar, 0, len(estimates))
	for _, e := range estimates {
		pct := e.Probability * 100
		bars = append(bars, Bar{
			Label: e.Disease,
			Value: pct,
			Color: tierColor(e.Tier),
			Text:  fmt.Sprintf("%.1f%%", pct),
		})
	}
	return BarChart{
		Title:  "Disease Risk Probabilities",
		XLabel: "Disease Type",
		YLabel: "Risk Probability (%)",
		Bars:   bars,
	}
}

func riskDistributionChart(estimates []risk.Estimate) PieChart {
	counts := map[risk.Tier]int{}
	for _, e := range estimates {
		counts[e.Tier]++
	}
	slices := []PieSlice{
		{Label: string(risk.TierLow), Value: counts[risk.TierLow], Color: ColorLow},
		{Label: string(risk.TierMedium), Value: counts[risk.TierMedium], Color: ColorMedium},
		{Label: string(risk.TierHigh), Value: counts[risk.TierHigh], Color: ColorHigh},
	}
	if n := counts[risk.TierUnknown]; n > 0 {
		slices = append(slices, PieSlice{Label: string(risk.TierUnknown), Value: n, Color: ColorError})
	}
	return PieChart{
		Title:  "Risk Level Distribution",
		Slices: slices,
		Hole:   0.3,
	}
}

// factorImportanceHeatmap maps every estimate's factor weights onto the
// sorted union of factor names; missing factors read as zero weight.
func factorImportanceHeatmap(estimates []risk.Estimate) HeatmapChart {
	factorSet := map[string]bool{}
	for _, e := range estimates {
		for f := range e.FactorWeights {
			factorSet[f] = true
		}
	}
	factors := make([]string, 0, len(factorSet))
	for f := range factorSet {
		factors = append(factors, f)
	}
	sort.Strings(factors)

	rows := make([]string, 0, len(estimates))
	values := make([][]float64, 0, len(estimates))
	for _, e := range estimates {
		rows = append(rows, e.Disease)
		row := make([]float64, len(factors))
		for i, f := range factors {
			row[i] = e.FactorWeights[f]
		}
		values = append(values, row)
	}
	return HeatmapChart{
		Title:   "Factor Importance by Disease Type",
		Rows:    rows,
		Columns: factors,
		Values:  values,
	}
}

func patientProfileRadar(rec *patient.Record) RadarChart {
	if rec == nil {
		return RadarChart{Title: "Patient Risk Profile"}
	}
	exercise := 0.2
	if rec.ExerciseInducedAngina {
		exercise = 1.0
	}
	return RadarChart{
		Title: "Patient Risk Profile",
		Axes: []string{
			"Age Risk",
			"Blood Pressure Risk",
			"Cholesterol Risk",
			"Heart Rate Risk",
			"Exercise Tolerance",
			"ECG Risk",
		},
		Values: []float64{
			capUnit(float64(rec.Age) / 100),
			capUnit(float64(rec.RestingBloodPressure) / 200),
			capUnit(float64(rec.Cholesterol) / 400),
			1.0 - capUnit(float64(rec.MaxHeartRate)/220),
			exercise,
			float64(rec.RestingECG) / 2,
		},
	}
}

func confidenceRiskScatter(estimates []risk.Estimate) ScatterChart {
	points := make([]ScatterPoint, 0, len(estimates))
	for _, e := range estimates {
		points = append(points, ScatterPoint{
			Label: e.Disease,
			X:     e.Confidence * 100,
			Y:     e.Probability * 100,
			Color: tierColor(e.Tier),
		})
	}
	return ScatterChart{
		Title:  "Model Confidence vs Risk Probability",
		XLabel: "Confidence (%)",
		YLabel: "Risk Probability (%)",
		Points: points,
	}
}

func capUnit(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
