package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/medifind/pkg/errors"
)

type recordingSink struct {
	bookings []Booking
	err      error
}

func (s *recordingSink) Submit(_ context.Context, booking Booking) error {
	s.bookings = append(s.bookings, booking)
	return s.err
}

func TestBookForwardsEventToSink(t *testing.T) {
	sink := &recordingSink{}
	svc := NewBookingService(sink, slog.New(slog.NewTextHandler(io.Discard, nil)))

	confirmation, err := svc.Book(context.Background(), BookingRequest{
		DoctorID:    "doc-1",
		DoctorName:  "Dr. A",
		PatientName: "Karim",
		Date:        "2024-07-02",
		Time:        "17:00",
	}, "user-9")
	require.NoError(t, err)
	require.Equal(t, "confirmed", confirmation.Status)
	require.NotEmpty(t, confirmation.BookingID)
	require.Len(t, sink.bookings, 1)
	require.Equal(t, confirmation.BookingID, sink.bookings[0].ID)
	require.Equal(t, "user-9", sink.bookings[0].RequestedBy)
	require.False(t, sink.bookings[0].CreatedAt.IsZero())
}

func TestBookWrapsSinkFailure(t *testing.T) {
	svc := NewBookingService(&recordingSink{err: errors.New("broker down")}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := svc.Book(context.Background(), BookingRequest{DoctorID: "d", DoctorName: "n", PatientName: "p", Date: "2024-07-02", Time: "10:00"}, "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeBookingFailed))
}

func TestLocalBookingSinkAccepts(t *testing.T) {
	sink := NewLocalBookingSink(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, sink.Submit(context.Background(), Booking{ID: "b-1"}))
}
