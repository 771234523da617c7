package report

import (
	"github.com/cardioscreen/cardioscreen/internal/domain/risk"
)

func buildRecommendations(a *risk.Analysis) Recommendations {
	return Recommendations{
		ImmediateActions:       immediateActions(a),
		FollowUpCare:           followUpCare(),
		LifestyleModifications: lifestyleModifications(a),
		MonitoringSchedule:     monitoringSchedule(a),
		SpecialistReferrals:    specialistReferrals(a),
	}
}

func hasTier(a *risk.Analysis, tier risk.Tier) bool {
	for _, e := range a.Estimates {
		if e.Tier == tier {
			return true
		}
	}
	return false
}

func immediateActions(a *risk.Analysis) []string {
	if hasTier(a, risk.TierHigh) {
		return []string{
			"Schedule urgent consultation with healthcare provider",
			"Discuss findings with primary care physician within 48 hours",
			"Consider emergency care if experiencing chest pain or shortness of breath",
		}
	}
	return []string{
		"Schedule routine follow-up with healthcare provider",
		"Discuss results during next planned medical visit",
	}
}

func followUpCare() []string {
	return []string{
		"Regular cardiovascular risk assessment",
		"Periodic blood pressure monitoring",
		"Annual cholesterol screening",
		"ECG monitoring as recommended by physician",
		"Stress testing if indicated by clinical evaluation",
	}
}

func lifestyleModifications(a *risk.Analysis) []string {
	mods := []string{
		"Adopt heart-healthy diet (Mediterranean or DASH diet)",
		"Regular aerobic exercise (150 minutes/week moderate intensity)",
		"Maintain healthy weight (BMI 18.5-24.9)",
		"Stress management and adequate sleep",
		"Smoking cessation if applicable",
	}
	if a.Record != nil {
		if a.Record.Cholesterol > 240 {
			mods = append(mods, "Focus on cholesterol-lowering diet and exercise")
		}
		if a.Record.RestingBloodPressure > 140 {
			mods = append(mods, "Implement blood pressure management strategies")
		}
	}
	return mods
}

func monitoringSchedule(a *risk.Analysis) map[string]string {
	if hasTier(a, risk.TierHigh) {
		return map[string]string{
			"Blood Pressure":     "Weekly self-monitoring, monthly clinical check",
			"Cholesterol":        "Every 3 months",
			"ECG":                "Every 6 months or as clinically indicated",
			"Exercise Tolerance": "Monitor during regular activity",
			"Symptoms":           "Daily awareness, immediate reporting of changes",
		}
	}
	return map[string]string{
		"Blood Pressure": "Monthly self-monitoring",
		"Cholesterol":    "Annually",
		"ECG":            "As clinically indicated",
		"General Health": "Annual comprehensive exam",
	}
}

// specialistReferrals lists one referral per high-tier disease, in
// estimate order, deduplicated.
func specialistReferrals(a *risk.Analysis) []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range a.Estimates {
		if e.Tier != risk.TierHigh {
			continue
		}
		var referral string
		switch e.Disease {
		case risk.DiseaseCAD:
			referral = "Cardiology consultation for CAD evaluation"
		case risk.DiseaseHeartAttack:
			referral = "Urgent cardiology evaluation"
		case risk.DiseaseArrhythmia:
			referral = "Electrophysiology consultation"
		default:
			continue
		}
		if !seen[referral] {
			seen[referral] = true
			out = append(out, referral)
		}
	}
	if len(out) == 0 {
		out = append(out, "Routine cardiology screening if indicated by primary care")
	}
	return out
}
