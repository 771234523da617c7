package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cardioscreen/cardioscreen/internal/config"
	"github.com/cardioscreen/cardioscreen/internal/platform/session"
)

func TestNewSessionStoreDefaultsToMemory(t *testing.T) {
	cfg := &config.Config{SessionTTL: time.Minute}
	store, err := newSessionStore(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()
	if _, ok := store.(*session.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}
}

func TestRunAnalyze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patient.json")
	input := `{
		"age": 70, "sex": 1, "chest_pain_type": 1,
		"resting_blood_pressure": 160, "cholesterol": 280,
		"fasting_blood_sugar": true, "resting_ecg": 2,
		"max_heart_rate": 100, "exercise_induced_angina": true,
		"st_depression": 3.0, "slope_peak_exercise": 3,
		"major_vessels": 3, "thalassemia": 7
	}`
	if err := os.WriteFile(path, []byte(input), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if err := runAnalyze(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunAnalyzeRejectsInvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patient.json")
	if err := os.WriteFile(path, []byte(`{"age": 0}`), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if err := runAnalyze(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRunAnalyzeMissingFile(t *testing.T) {
	if err := runAnalyze("/nonexistent/patient.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
