package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cardioscreen/cardioscreen/internal/domain/patient"
	"github.com/cardioscreen/cardioscreen/internal/domain/risk"
	"github.com/cardioscreen/cardioscreen/internal/platform/session"
)

func newTestHandler(t *testing.T) (*Handler, *patient.Service) {
	t.Helper()
	store := session.NewMemoryStore(session.Config{TTL: time.Minute})
	t.Cleanup(func() { store.Close() })
	patients := patient.NewService(store, zerolog.Nop())
	risks := risk.NewService(patients, risk.NewThresholdScorer(), zerolog.Nop())
	return NewHandler(NewService(risks, zerolog.Nop())), patients
}

func TestGetReportHandler(t *testing.T) {
	h, patients := newTestHandler(t)
	e := echo.New()

	stored, err := patients.Collect(context.Background(), patient.Input{
		Age: 70, Sex: 1, ChestPainType: 1, RestingBloodPressure: 160,
		Cholesterol: 280, RestingECG: 2, MaxHeartRate: 100,
		ExerciseInducedAngina: true, STDepression: 3.0,
		SlopePeakExercise: 3, MajorVessels: 3, Thalassemia: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientID")
	c.SetParamValues(stored.ID)

	if err := h.GetReport(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rep Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rep.PatientSummary.PatientID != stored.ID {
		t.Errorf("expected patient id %s, got %s", stored.ID, rep.PatientSummary.PatientID)
	}
	if len(rep.DetailedAnalysis) != 3 {
		t.Errorf("expected 3 detailed sections, got %d", len(rep.DetailedAnalysis))
	}
	if rep.MedicalSummary == "" {
		t.Error("expected medical summary")
	}
}

func TestGetReportHandlerNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientID")
	c.SetParamValues("aa6f8b85-7a4e-4f43-86cf-54cf4f53d2a0")

	err := h.GetReport(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestGetReportHandlerBadID(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientID")
	c.SetParamValues("bogus")

	err := h.GetReport(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
