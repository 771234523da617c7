package risk

// diseaseRecommendations returns the action list for one disease at one
// tier. Low tiers carry no disease-specific actions.
func diseaseRecommendations(disease string, tier Tier) []string {
	switch disease {
	case DiseaseCAD:
		switch tier {
		case TierHigh:
			return []string{
				"Immediate consultation with a cardiologist",
				"Consider cardiac catheterization",
				"Start aggressive cholesterol management",
				"Lifestyle modifications: diet and exercise",
			}
		case TierMedium:
			return []string{
				"Follow-up with primary care physician",
				"Stress testing recommended",
				"Monitor cholesterol levels",
				"Adopt heart-healthy lifestyle",
			}
		}
	case DiseaseHeartAttack:
		switch tier {
		case TierHigh:
			return []string{
				"Urgent cardiology evaluation",
				"Blood pressure management",
				"Consider preventive medications",
				"Emergency action plan discussion",
			}
		case TierMedium:
			return []string{
				"Regular monitoring",
				"Blood pressure control",
				"Lifestyle counseling",
			}
		}
	case DiseaseArrhythmia:
		if tier == TierHigh {
			return []string{
				"Electrophysiology consultation",
				"Holter monitor study",
				"Medication review",
			}
		}
	}
	return nil
}

// aggregateRecommendations derives the overall action list from the full
// estimate set. Order is deterministic: high-risk actions first, then the
// shared follow-up block, then the universal pair.
func aggregateRecommendations(estimates []Estimate) []string {
	var high, medium int
	for _, e := range estimates {
		switch e.Tier {
		case TierHigh:
			high++
		case TierMedium:
			medium++
		}
	}

	var out []string
	seen := make(map[string]bool)
	add := func(rec string) {
		if !seen[rec] {
			seen[rec] = true
			out = append(out, rec)
		}
	}

	if high > 0 {
		add("Schedule immediate medical consultation")
		add("Consider comprehensive cardiac evaluation")
	}
	if high > 0 || medium > 0 {
		add("Implement heart-healthy lifestyle changes")
		add("Regular monitoring and follow-up")
	}
	add("Discuss results with healthcare provider")
	add("Keep detailed health records")

	return out
}
