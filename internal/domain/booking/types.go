package booking

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type Status string

const (
	StatusBooked    Status = "Booked"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return status, nil
}
