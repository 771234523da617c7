package report

import (
	"fmt"
	"strings"

	"github.com/cardioscreen/cardioscreen/internal/domain/risk"
)

// clinicalInterpretation renders the narrative paragraph for one disease.
// Unknown diseases fall back to a generic template.
func clinicalInterpretation(e risk.Estimate) string {
	tier := strings.ToLower(string(e.Tier))
	pct := formatPercent(e.Probability)

	switch e.Disease {
	case risk.DiseaseCAD:
		return fmt.Sprintf(
			"The analysis indicates a %s risk for coronary artery disease with %s probability. "+
				"Key risk factors include %s. This assessment is based on established cardiovascular "+
				"risk factors and should be interpreted in conjunction with clinical examination.",
			tier, pct, joinFactors(e.KeyFactors, 3))
	case risk.DiseaseHeartAttack:
		return fmt.Sprintf(
			"The patient shows %s risk for acute cardiac events with %s probability. "+
				"Primary risk drivers are %s. Immediate attention may be required if risk is high.",
			tier, pct, joinFactors(e.KeyFactors, 2))
	case risk.DiseaseArrhythmia:
		return fmt.Sprintf(
			"Analysis suggests %s risk for cardiac rhythm disorders with %s probability. "+
				"Contributing factors include %s. ECG monitoring may be recommended for further evaluation.",
			tier, pct, joinFactors(e.KeyFactors, 2))
	}
	return fmt.Sprintf(
		"%s shows %s risk level with %s probability based on the provided clinical parameters.",
		e.Disease, tier, pct)
}

// medicalSummary renders the executive summary block.
func medicalSummary(a *risk.Analysis) string {
	var b strings.Builder

	b.WriteString("CARDIOVASCULAR RISK ASSESSMENT SUMMARY\n\n")
	fmt.Fprintf(&b, "Patient: %s\n", a.PatientID)
	fmt.Fprintf(&b, "Date: %s\n\n", a.Timestamp.Format("2006-01-02"))

	b.WriteString("OVERALL ASSESSMENT:\n")
	if a.Record != nil {
		fmt.Fprintf(&b, "The %d-year-old %s patient presents with an overall cardiovascular risk score of %s.\n\n",
			a.Record.Age, a.Record.Sex, formatPercent(a.OverallRisk))
	} else {
		fmt.Fprintf(&b, "The patient presents with an overall cardiovascular risk score of %s.\n\n",
			formatPercent(a.OverallRisk))
	}

	b.WriteString("PRIMARY FINDINGS:\n")
	if highest := a.HighestRisk(); highest != nil {
		fmt.Fprintf(&b, "The highest concern is %s with %s probability and %s risk level.",
			highest.Disease, formatPercent(highest.Probability), strings.ToLower(string(highest.Tier)))
		if len(highest.KeyFactors) > 0 {
			fmt.Fprintf(&b, " Key contributing factors include: %s.", joinFactors(highest.KeyFactors, 3))
		}
		b.WriteString("\n")
	}

	if a.Record != nil {
		exercise := "Normal"
		if a.Record.ExerciseInducedAngina {
			exercise = "Reduced"
		}
		b.WriteString("\nCLINICAL PARAMETERS:\n")
		fmt.Fprintf(&b, "- Blood Pressure: %d mmHg\n", a.Record.RestingBloodPressure)
		fmt.Fprintf(&b, "- Cholesterol: %d mg/dl\n", a.Record.Cholesterol)
		fmt.Fprintf(&b, "- Maximum Heart Rate: %d bpm\n", a.Record.MaxHeartRate)
		fmt.Fprintf(&b, "- Exercise Tolerance: %s\n", exercise)
	}

	b.WriteString("\nRECOMMENDATIONS:\n")
	actions := a.RecommendedActions
	if len(actions) > 2 {
		actions = actions[:2]
	}
	b.WriteString(strings.Join(actions, " "))
	b.WriteString("\n\nThis analysis should be reviewed with a qualified healthcare provider " +
		"for clinical correlation and treatment planning.")

	return b.String()
}

func joinFactors(factors []string, n int) string {
	if len(factors) > n {
		factors = factors[:n]
	}
	return strings.Join(factors, ", ")
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
