package report

import (
	"time"
)

// Report is the full multi-section assessment document. Every section is
// derived from a single analysis result; the report itself holds no state.
type Report struct {
	PatientSummary   PatientSummary    `json:"patient_summary"`
	RiskAssessment   RiskAssessment    `json:"risk_assessment"`
	Visualizations   ChartSet          `json:"visualizations"`
	DetailedAnalysis []DiseaseAnalysis `json:"detailed_analysis"`
	Recommendations  Recommendations   `json:"recommendations"`
	MedicalSummary   string            `json:"medical_summary"`
}

// PatientSummary presents demographics and key measurements with units.
type PatientSummary struct {
	PatientID       string          `json:"patient_id"`
	AnalysisDate    time.Time       `json:"analysis_date"`
	Demographics    Demographics    `json:"demographics"`
	KeyMeasurements KeyMeasurements `json:"key_measurements"`
	RiskIndicators  RiskIndicators  `json:"risk_indicators"`
}

type Demographics struct {
	Age              int    `json:"age"`
	Sex              string `json:"sex"`
	OverallRiskScore string `json:"overall_risk_score"`
}

type KeyMeasurements struct {
	RestingBloodPressure string `json:"resting_blood_pressure"`
	Cholesterol          string `json:"cholesterol"`
	MaxHeartRate         string `json:"max_heart_rate"`
	ChestPainType        string `json:"chest_pain_type"`
}

type RiskIndicators struct {
	ExerciseInducedAngina     string `json:"exercise_induced_angina"`
	FastingBloodSugarElevated string `json:"fasting_blood_sugar_elevated"`
	STDepression              string `json:"st_depression"`
	MajorVesselsAffected      int    `json:"major_vessels_affected"`
}

// RiskAssessment ranks the disease estimates and summarizes the tiers.
type RiskAssessment struct {
	OverallRiskScore string         `json:"overall_risk_score"`
	PrimaryConcerns  []string       `json:"primary_concerns"`
	DiseaseRisks     []DiseaseRisk  `json:"disease_risks"`
	RiskDistribution map[string]int `json:"risk_distribution"`
}

type DiseaseRisk struct {
	Disease     string `json:"disease"`
	Probability string `json:"probability"`
	RiskLevel   string `json:"risk_level"`
	Confidence  string `json:"confidence"`
}

// DiseaseAnalysis is one disease's detailed section.
type DiseaseAnalysis struct {
	DiseaseName             string             `json:"disease_name"`
	RiskAssessment          DiseaseRisk        `json:"risk_assessment"`
	KeyContributingFactors  []string           `json:"key_contributing_factors"`
	FactorWeights           map[string]float64 `json:"factor_weights"`
	ClinicalInterpretation  string             `json:"clinical_interpretation"`
	SpecificRecommendations []string           `json:"specific_recommendations"`
}

// Recommendations groups actions by care category.
type Recommendations struct {
	ImmediateActions       []string          `json:"immediate_actions"`
	FollowUpCare           []string          `json:"follow_up_care"`
	LifestyleModifications []string          `json:"lifestyle_modifications"`
	MonitoringSchedule     map[string]string `json:"monitoring_schedule"`
	SpecialistReferrals    []string          `json:"specialist_referrals"`
}
