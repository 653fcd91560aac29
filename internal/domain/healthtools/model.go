package healthtools

import "time"

// BMIRequest carries the body measurements for a BMI calculation.
type BMIRequest struct {
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
	HeightCm float64 `json:"heightCm" binding:"required,gt=0"`
}

// BMIResult is the rounded index and its WHO category.
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// BMI categories.
const (
	CategoryUnderweight = "underweight"
	CategoryNormal      = "normal"
	CategoryOverweight  = "overweight"
	CategoryObese       = "obese"
)

// PregnancyRequest carries the first day of the last menstrual period.
type PregnancyRequest struct {
	LastPeriod string `json:"lastPeriod" binding:"required"`
}

// PregnancyResult is the estimated due date and gestational age in weeks.
type PregnancyResult struct {
	DueDate string `json:"dueDate"`
	Weeks   int    `json:"weeks"`
}

// VaccineRequest carries a child's date of birth.
type VaccineRequest struct {
	BirthDate string `json:"birthDate" binding:"required"`
	Language  string `json:"language" binding:"omitempty,lang"`
}

// VaccineDose is one visit of the immunisation schedule.
type VaccineDose struct {
	AgeLabel string    `json:"ageLabel"`
	Vaccines []string  `json:"vaccines"`
	Date     string    `json:"date"`
	Due      time.Time `json:"-"`
}

// VaccineSchedule lists every visit in chronological order.
type VaccineSchedule struct {
	BirthDate string        `json:"birthDate"`
	Doses     []VaccineDose `json:"doses"`
}
