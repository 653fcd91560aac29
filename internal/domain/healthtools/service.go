package healthtools

import (
	"context"
	"log/slog"
	"math"
	"time"

	apperrors "github.com/yanqian/medifind/pkg/errors"
	"github.com/yanqian/medifind/pkg/util"
)

const (
	dateLayout    = "2006-01-02"
	gestationDays = 280
)

type visit struct {
	days     int
	labelEN  string
	labelBN  string
	vaccines []string
}

// Bangladesh EPI schedule.
var epiSchedule = []visit{
	{days: 0, labelEN: "At birth", labelBN: "জন্মের সময়", vaccines: []string{"BCG", "OPV0", "HepB1"}},
	{days: 42, labelEN: "6 weeks", labelBN: "৬ সপ্তাহ", vaccines: []string{"Pentavalent1", "OPV1", "PCV1"}},
	{days: 70, labelEN: "10 weeks", labelBN: "১০ সপ্তাহ", vaccines: []string{"Pentavalent2", "OPV2", "PCV2"}},
	{days: 98, labelEN: "14 weeks", labelBN: "১৪ সপ্তাহ", vaccines: []string{"Pentavalent3", "OPV3", "PCV3", "IPV"}},
	{days: 270, labelEN: "9 months", labelBN: "৯ মাস", vaccines: []string{"Measles-Rubella (MR1)"}},
	{days: 450, labelEN: "15 months", labelBN: "১৫ মাস", vaccines: []string{"Measles-Rubella (MR2)"}},
}

// Service exposes the offline calculators.
type Service interface {
	BMI(ctx context.Context, req BMIRequest) (BMIResult, error)
	Pregnancy(ctx context.Context, req PregnancyRequest) (PregnancyResult, error)
	Vaccines(ctx context.Context, req VaccineRequest) (VaccineSchedule, error)
}

type service struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the health calculators.
func NewService(logger *slog.Logger) Service {
	return &service{
		logger: logger.With("component", "healthtools.service"),
		now:    util.NowUTC,
	}
}

func (s *service) BMI(_ context.Context, req BMIRequest) (BMIResult, error) {
	if req.WeightKg <= 0 || req.HeightCm <= 0 {
		return BMIResult{}, apperrors.Wrap(apperrors.CodeInvalidInput, "weight and height must be positive", nil)
	}
	meters := req.HeightCm / 100
	bmi := math.Round(req.WeightKg/(meters*meters)*10) / 10
	return BMIResult{BMI: bmi, Category: bmiCategory(bmi)}, nil
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func (s *service) Pregnancy(_ context.Context, req PregnancyRequest) (PregnancyResult, error) {
	lmp, err := parseDate(req.LastPeriod)
	if err != nil {
		return PregnancyResult{}, err
	}
	elapsed := util.DateOnly(s.now()).Sub(lmp)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	weeks := int(elapsed / (7 * 24 * time.Hour))
	return PregnancyResult{
		DueDate: lmp.AddDate(0, 0, gestationDays).Format(dateLayout),
		Weeks:   weeks,
	}, nil
}

func (s *service) Vaccines(_ context.Context, req VaccineRequest) (VaccineSchedule, error) {
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		return VaccineSchedule{}, err
	}
	if birth.After(util.DateOnly(s.now())) {
		return VaccineSchedule{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birth date cannot be in the future", nil)
	}
	doses := make([]VaccineDose, 0, len(epiSchedule))
	for _, v := range epiSchedule {
		label := v.labelEN
		if req.Language == "bn" {
			label = v.labelBN
		}
		due := birth.AddDate(0, 0, v.days)
		doses = append(doses, VaccineDose{
			AgeLabel: label,
			Vaccines: append([]string(nil), v.vaccines...),
			Date:     due.Format(dateLayout),
			Due:      due,
		})
	}
	s.logger.Debug("vaccine schedule built", "doses", len(doses))
	return VaccineSchedule{BirthDate: birth.Format(dateLayout), Doses: doses}, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dates must use YYYY-MM-DD", err)
	}
	return parsed, nil
}
