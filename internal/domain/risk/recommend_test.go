package risk

import (
	"testing"
)

func TestDiseaseRecommendationsByTier(t *testing.T) {
	if recs := diseaseRecommendations(DiseaseCAD, TierHigh); len(recs) != 4 {
		t.Errorf("expected 4 high-tier CAD recommendations, got %v", recs)
	}
	if recs := diseaseRecommendations(DiseaseCAD, TierMedium); len(recs) != 4 {
		t.Errorf("expected 4 medium-tier CAD recommendations, got %v", recs)
	}
	if recs := diseaseRecommendations(DiseaseCAD, TierLow); recs != nil {
		t.Errorf("expected no low-tier recommendations, got %v", recs)
	}
	if recs := diseaseRecommendations(DiseaseArrhythmia, TierMedium); recs != nil {
		t.Errorf("arrhythmia has no medium-tier actions, got %v", recs)
	}
	if recs := diseaseRecommendations(DiseaseHeartAttack, TierMedium); len(recs) != 3 {
		t.Errorf("expected 3 medium-tier heart attack recommendations, got %v", recs)
	}
}

func TestAggregateRecommendationsAllLow(t *testing.T) {
	estimates := []Estimate{
		{Disease: DiseaseCAD, Tier: TierLow},
		{Disease: DiseaseHeartAttack, Tier: TierLow},
		{Disease: DiseaseArrhythmia, Tier: TierLow},
	}
	got := aggregateRecommendations(estimates)
	want := []string{
		"Discuss results with healthcare provider",
		"Keep detailed health records",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d recommendations, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recommendation %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAggregateRecommendationsHighRisk(t *testing.T) {
	estimates := []Estimate{
		{Disease: DiseaseCAD, Tier: TierHigh},
		{Disease: DiseaseHeartAttack, Tier: TierMedium},
		{Disease: DiseaseArrhythmia, Tier: TierLow},
	}
	got := aggregateRecommendations(estimates)
	want := []string{
		"Schedule immediate medical consultation",
		"Consider comprehensive cardiac evaluation",
		"Implement heart-healthy lifestyle changes",
		"Regular monitoring and follow-up",
		"Discuss results with healthcare provider",
		"Keep detailed health records",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d recommendations, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recommendation %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAggregateRecommendationsMediumOnly(t *testing.T) {
	estimates := []Estimate{
		{Disease: DiseaseCAD, Tier: TierMedium},
		{Disease: DiseaseHeartAttack, Tier: TierLow},
	}
	got := aggregateRecommendations(estimates)
	if len(got) != 4 {
		t.Fatalf("expected 4 recommendations, got %v", got)
	}
	if got[0] != "Implement heart-healthy lifestyle changes" {
		t.Errorf("unexpected first recommendation: %q", got[0])
	}
}
