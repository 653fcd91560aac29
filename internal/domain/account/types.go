package account

import "time"

// Config drives locally issued session tokens.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Profile is the signed-in user as seen by the UI.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest covers both sign-in and sign-up forms.
type LoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Signup   bool   `json:"signup"`
}

// LoginResponse returns the signed session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Profile   `json:"user"`
}

// Claims are extracted from a session token.
type Claims struct {
	Profile   Profile
	ExpiresAt time.Time
}

// BookingRequest is an appointment request for a listed doctor.
type BookingRequest struct {
	DoctorID    string `json:"doctorId" binding:"required"`
	DoctorName  string `json:"doctorName" binding:"required"`
	PatientName string `json:"patientName" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required"`
}

// Booking is the event handed to a BookingSink.
type Booking struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctorId"`
	DoctorName  string    `json:"doctorName"`
	PatientName string    `json:"patientName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	RequestedBy string    `json:"requestedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingConfirmation is returned to the caller once the sink accepted the event.
type BookingConfirmation struct {
	BookingID string  `json:"bookingId"`
	Status    string  `json:"status"`
	Booking   Booking `json:"booking"`
}
