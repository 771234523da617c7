package patient

import (
	"fmt"
	"strconv"
)

// FieldDescriptions maps form field names to human readable descriptions
// shown alongside the collection form.
var FieldDescriptions = map[string]string{
	"age":                     "Patient's age in years",
	"sex":                     "Biological sex",
	"chest_pain_type":         "Type of chest pain experienced",
	"resting_blood_pressure":  "Blood pressure at rest (normal: 120/80 mmHg)",
	"cholesterol":             "Serum cholesterol level (normal: < 200 mg/dl)",
	"fasting_blood_sugar":     "Blood sugar after fasting > 120 mg/dl",
	"resting_ecg":             "Electrocardiogram results at rest",
	"max_heart_rate":          "Maximum heart rate achieved during exercise",
	"exercise_induced_angina": "Chest pain during physical activity",
	"st_depression":           "ST depression induced by exercise (0-6.2)",
	"slope_peak_exercise":     "Slope of peak exercise ST segment",
	"major_vessels":           "Number of major vessels colored by fluoroscopy (0-3)",
	"thalassemia":             "Blood disorder affecting hemoglobin",
}

// Range is an inclusive numeric bound used for soft form validation.
type Range struct {
	Min float64
	Max float64
}

// NormalRanges holds the accepted bounds for the numeric form fields.
var NormalRanges = map[string]Range{
	"age":                    {1, 120},
	"resting_blood_pressure": {90, 180},
	"cholesterol":            {100, 400},
	"max_heart_rate":         {60, 220},
	"st_depression":          {0, 6.2},
	"major_vessels":          {0, 3},
}

// ValidationResult is the outcome of a single-field validation probe.
type ValidationResult struct {
	Valid    bool   `json:"valid"`
	Message  string `json:"message"`
	Severity string `json:"severity,omitempty"`
}

// ValidateField checks a single raw form value against the field's normal
// range. Values just outside the range get a warning, far outside an error.
// Fields without a registered range always validate.
func ValidateField(field, value string) ValidationResult {
	rng, ok := NormalRanges[field]
	if !ok {
		return ValidationResult{Valid: true, Message: "Valid input"}
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return ValidationResult{
			Valid:    false,
			Message:  "Please enter a valid number",
			Severity: "error",
		}
	}
	if v < rng.Min || v > rng.Max {
		span := rng.Max - rng.Min
		severity := "error"
		if absFloat(v-rng.Min) < span*0.2 || absFloat(v-rng.Max) < span*0.2 {
			severity = "warning"
		}
		return ValidationResult{
			Valid:    false,
			Message:  fmt.Sprintf("Value should be between %g and %g", rng.Min, rng.Max),
			Severity: severity,
		}
	}
	return ValidationResult{Valid: true, Message: "Valid input"}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// GuidanceInfo is the help payload for one form field.
type GuidanceInfo struct {
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
	Examples    []string `json:"examples"`
}

var fieldGuidance = map[string]GuidanceInfo{
	"age": {
		Description: FieldDescriptions["age"],
		Tips:        []string{"Enter age in complete years", "Typical range: 29-77 years"},
		Examples:    []string{"45", "62", "38"},
	},
	"resting_blood_pressure": {
		Description: FieldDescriptions["resting_blood_pressure"],
		Tips:        []string{"Use systolic pressure (top number)", "Normal: 90-120 mmHg", "High: >140 mmHg"},
		Examples:    []string{"120", "140", "160"},
	},
	"cholesterol": {
		Description: FieldDescriptions["cholesterol"],
		Tips:        []string{"Total cholesterol level", "Desirable: <200 mg/dl", "High: >240 mg/dl"},
		Examples:    []string{"180", "220", "280"},
	},
	"max_heart_rate": {
		Description: FieldDescriptions["max_heart_rate"],
		Tips:        []string{"Maximum during stress test or exercise", "Rough estimate: 220 - age"},
		Examples:    []string{"150", "175", "190"},
	},
	"st_depression": {
		Description: FieldDescriptions["st_depression"],
		Tips:        []string{"From exercise stress test", "Normal: 0-1.0", "Significant: >2.0"},
		Examples:    []string{"0.0", "1.5", "3.2"},
	},
}

// Guidance returns help content for a field. Fields without curated
// guidance fall back to the catalog description.
func Guidance(field string) GuidanceInfo {
	if g, ok := fieldGuidance[field]; ok {
		return g
	}
	desc, ok := FieldDescriptions[field]
	if !ok {
		desc = "No description available"
	}
	return GuidanceInfo{
		Description: desc,
		Tips:        []string{"Please consult with your healthcare provider"},
		Examples:    []string{},
	}
}
