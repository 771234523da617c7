package patient

import (
	"fmt"
)

// Sex is the biological sex code used by the screening dataset.
type Sex int

const (
	SexFemale Sex = 0
	SexMale   Sex = 1
)

func ParseSex(code int) (Sex, error) {
	switch Sex(code) {
	case SexFemale, SexMale:
		return Sex(code), nil
	}
	return 0, fmt.Errorf("invalid sex code: %d", code)
}

func (s Sex) String() string {
	if s == SexMale {
		return "male"
	}
	return "female"
}

// ChestPainType classifies the reported chest pain.
type ChestPainType int

const (
	ChestPainTypicalAngina  ChestPainType = 1
	ChestPainAtypicalAngina ChestPainType = 2
	ChestPainNonAnginal     ChestPainType = 3
	ChestPainAsymptomatic   ChestPainType = 4
)

func ParseChestPainType(code int) (ChestPainType, error) {
	switch ChestPainType(code) {
	case ChestPainTypicalAngina, ChestPainAtypicalAngina, ChestPainNonAnginal, ChestPainAsymptomatic:
		return ChestPainType(code), nil
	}
	return 0, fmt.Errorf("invalid chest pain type code: %d", code)
}

func (t ChestPainType) String() string {
	switch t {
	case ChestPainTypicalAngina:
		return "typical angina"
	case ChestPainAtypicalAngina:
		return "atypical angina"
	case ChestPainNonAnginal:
		return "non-anginal pain"
	case ChestPainAsymptomatic:
		return "asymptomatic"
	}
	return "unknown"
}

// Anginal reports whether the pain pattern is typical or atypical angina.
func (t ChestPainType) Anginal() bool {
	return t == ChestPainTypicalAngina || t == ChestPainAtypicalAngina
}

// RestingECG is the resting electrocardiogram classification.
type RestingECG int

const (
	ECGNormal         RestingECG = 0
	ECGSTTAbnormality RestingECG = 1
	ECGLVHypertrophy  RestingECG = 2
)

func ParseRestingECG(code int) (RestingECG, error) {
	switch RestingECG(code) {
	case ECGNormal, ECGSTTAbnormality, ECGLVHypertrophy:
		return RestingECG(code), nil
	}
	return 0, fmt.Errorf("invalid resting ECG code: %d", code)
}

func (e RestingECG) String() string {
	switch e {
	case ECGSTTAbnormality:
		return "ST-T abnormality"
	case ECGLVHypertrophy:
		return "left ventricular hypertrophy"
	}
	return "normal"
}

// Abnormal reports whether the ECG shows any abnormality.
func (e RestingECG) Abnormal() bool {
	return e != ECGNormal
}

// STSlope is the slope of the peak exercise ST segment.
type STSlope int

const (
	SlopeUpsloping   STSlope = 1
	SlopeFlat        STSlope = 2
	SlopeDownsloping STSlope = 3
)

func ParseSTSlope(code int) (STSlope, error) {
	switch STSlope(code) {
	case SlopeUpsloping, SlopeFlat, SlopeDownsloping:
		return STSlope(code), nil
	}
	return 0, fmt.Errorf("invalid ST slope code: %d", code)
}

func (s STSlope) String() string {
	switch s {
	case SlopeUpsloping:
		return "upsloping"
	case SlopeFlat:
		return "flat"
	case SlopeDownsloping:
		return "downsloping"
	}
	return "unknown"
}

// Thalassemia is the thallium stress test result. The dataset codes are
// non-contiguous: 3 = normal, 6 = fixed defect, 7 = reversible defect.
type Thalassemia int

const (
	ThalNormal           Thalassemia = 3
	ThalFixedDefect      Thalassemia = 6
	ThalReversibleDefect Thalassemia = 7
)

func ParseThalassemia(code int) (Thalassemia, error) {
	switch Thalassemia(code) {
	case ThalNormal, ThalFixedDefect, ThalReversibleDefect:
		return Thalassemia(code), nil
	}
	return 0, fmt.Errorf("invalid thalassemia code: %d", code)
}

func (t Thalassemia) String() string {
	switch t {
	case ThalFixedDefect:
		return "fixed defect"
	case ThalReversibleDefect:
		return "reversible defect"
	}
	return "normal"
}

// Defect reports whether the test showed a fixed or reversible defect.
func (t Thalassemia) Defect() bool {
	return t == ThalFixedDefect || t == ThalReversibleDefect
}

// Input is the raw submission from the collection form. Enum fields carry
// integer codes; construction of a Record validates them.
type Input struct {
	Age                   int     `json:"age" form:"age"`
	Sex                   int     `json:"sex" form:"sex"`
	ChestPainType         int     `json:"chest_pain_type" form:"chest_pain_type"`
	RestingBloodPressure  int     `json:"resting_blood_pressure" form:"resting_blood_pressure"`
	Cholesterol           int     `json:"cholesterol" form:"cholesterol"`
	FastingBloodSugar     bool    `json:"fasting_blood_sugar" form:"fasting_blood_sugar"`
	RestingECG            int     `json:"resting_ecg" form:"resting_ecg"`
	MaxHeartRate          int     `json:"max_heart_rate" form:"max_heart_rate"`
	ExerciseInducedAngina bool    `json:"exercise_induced_angina" form:"exercise_induced_angina"`
	STDepression          float64 `json:"st_depression" form:"st_depression"`
	SlopePeakExercise     int     `json:"slope_peak_exercise" form:"slope_peak_exercise"`
	MajorVessels          int     `json:"major_vessels" form:"major_vessels"`
	Thalassemia           int     `json:"thalassemia" form:"thalassemia"`
}

// Record is a validated, immutable patient record. It is constructed once
// from form input and never mutated afterwards.
type Record struct {
	Age                   int           `json:"age"`
	Sex                   Sex           `json:"sex"`
	ChestPainType         ChestPainType `json:"chest_pain_type"`
	RestingBloodPressure  int           `json:"resting_blood_pressure"`
	Cholesterol           int           `json:"cholesterol"`
	FastingBloodSugar     bool          `json:"fasting_blood_sugar"`
	RestingECG            RestingECG    `json:"resting_ecg"`
	MaxHeartRate          int           `json:"max_heart_rate"`
	ExerciseInducedAngina bool          `json:"exercise_induced_angina"`
	STDepression          float64       `json:"st_depression"`
	SlopePeakExercise     STSlope       `json:"slope_peak_exercise"`
	MajorVessels          int           `json:"major_vessels"`
	Thalassemia           Thalassemia   `json:"thalassemia"`
}

// NewRecord validates raw input and builds an immutable Record. Unknown
// enum codes and out-of-range bounded fields are rejected.
func NewRecord(in Input) (*Record, error) {
	if in.Age < 1 || in.Age > 120 {
		return nil, fmt.Errorf("age must be between 1 and 120, got %d", in.Age)
	}
	sex, err := ParseSex(in.Sex)
	if err != nil {
		return nil, err
	}
	cp, err := ParseChestPainType(in.ChestPainType)
	if err != nil {
		return nil, err
	}
	if in.RestingBloodPressure <= 0 {
		return nil, fmt.Errorf("resting blood pressure must be positive, got %d", in.RestingBloodPressure)
	}
	if in.Cholesterol <= 0 {
		return nil, fmt.Errorf("cholesterol must be positive, got %d", in.Cholesterol)
	}
	ecg, err := ParseRestingECG(in.RestingECG)
	if err != nil {
		return nil, err
	}
	if in.MaxHeartRate <= 0 {
		return nil, fmt.Errorf("max heart rate must be positive, got %d", in.MaxHeartRate)
	}
	if in.STDepression < 0 || in.STDepression > 6.2 {
		return nil, fmt.Errorf("st depression must be between 0 and 6.2, got %g", in.STDepression)
	}
	slope, err := ParseSTSlope(in.SlopePeakExercise)
	if err != nil {
		return nil, err
	}
	if in.MajorVessels < 0 || in.MajorVessels > 3 {
		return nil, fmt.Errorf("major vessels must be between 0 and 3, got %d", in.MajorVessels)
	}
	thal, err := ParseThalassemia(in.Thalassemia)
	if err != nil {
		return nil, err
	}

	return &Record{
		Age:                   in.Age,
		Sex:                   sex,
		ChestPainType:         cp,
		RestingBloodPressure:  in.RestingBloodPressure,
		Cholesterol:           in.Cholesterol,
		FastingBloodSugar:     in.FastingBloodSugar,
		RestingECG:            ecg,
		MaxHeartRate:          in.MaxHeartRate,
		ExerciseInducedAngina: in.ExerciseInducedAngina,
		STDepression:          in.STDepression,
		SlopePeakExercise:     slope,
		MajorVessels:          in.MajorVessels,
		Thalassemia:           thal,
	}, nil
}

// FeatureNames is the canonical field order of the numeric encoding
// expected by downstream analysis consumers.
var FeatureNames = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs",
	"restecg", "thalach", "exang", "oldpeak",
	"slope", "ca", "thal",
}

// FeatureVector returns the canonical 13-float encoding of the record,
// in FeatureNames order.
func (r *Record) FeatureVector() []float64 {
	return []float64{
		float64(r.Age),
		float64(r.Sex),
		float64(r.ChestPainType),
		float64(r.RestingBloodPressure),
		float64(r.Cholesterol),
		boolToFloat(r.FastingBloodSugar),
		float64(r.RestingECG),
		float64(r.MaxHeartRate),
		boolToFloat(r.ExerciseInducedAngina),
		r.STDepression,
		float64(r.SlopePeakExercise),
		float64(r.MajorVessels),
		float64(r.Thalassemia),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
