package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/medifind/pkg/errors"
	"github.com/yanqian/medifind/pkg/util"
)

const bookingStatusConfirmed = "confirmed"

// BookingSink receives booking events. Implementations do not persist them.
type BookingSink interface {
	Submit(ctx context.Context, booking Booking) error
}

// BookingService turns requests into events and hands them to a sink.
type BookingService struct {
	sink   BookingSink
	logger *slog.Logger
	now    func() time.Time
}

// NewBookingService constructs the booking workflow.
func NewBookingService(sink BookingSink, logger *slog.Logger) *BookingService {
	return &BookingService{
		sink:   sink,
		logger: logger.With("component", "account.booking"),
		now:    util.NowUTC,
	}
}

// Book forwards the request; requester is the profile id of the signed-in caller, if any.
func (s *BookingService) Book(ctx context.Context, req BookingRequest, requester string) (BookingConfirmation, error) {
	booking := Booking{
		ID:          uuid.NewString(),
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		RequestedBy: requester,
		CreatedAt:   s.now(),
	}
	if err := s.sink.Submit(ctx, booking); err != nil {
		s.logger.Error("booking submit failed", "booking_id", booking.ID, "error", err)
		return BookingConfirmation{}, apperrors.Wrap(apperrors.CodeBookingFailed, "could not submit booking", err)
	}
	return BookingConfirmation{BookingID: booking.ID, Status: bookingStatusConfirmed, Booking: booking}, nil
}

// LocalBookingSink only logs the event.
type LocalBookingSink struct {
	logger *slog.Logger
}

// NewLocalBookingSink constructs a log-only sink.
func NewLocalBookingSink(logger *slog.Logger) *LocalBookingSink {
	return &LocalBookingSink{logger: logger.With("component", "account.booking_sink")}
}

func (s *LocalBookingSink) Submit(_ context.Context, booking Booking) error {
	s.logger.Info("booking received",
		"booking_id", booking.ID,
		"doctor_id", booking.DoctorID,
		"date", booking.Date,
		"time", booking.Time,
	)
	return nil
}
