package risk

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cardioscreen/cardioscreen/internal/domain/patient"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/analyses", h.AnalyzeInline)
	api.POST("/analyses/:patientID", h.AnalyzePatient)
}

// AnalyzePatient scores a previously collected record.
func (h *Handler) AnalyzePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("patientID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	analysis, err := h.svc.Analyze(c.Request().Context(), id.String())
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, analysis)
}

// AnalyzeInline validates and scores a submission without storing it.
func (h *Handler) AnalyzeInline(c echo.Context) error {
	var in patient.Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	analysis, err := h.svc.AnalyzeInput(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, analysis)
}
