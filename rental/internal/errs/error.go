package errs

import (
	"errors"
)

var (
	ErrInvalidInput        = errors.New("start and end dates are required")
	ErrClientNotFound      = errors.New("client does not exist")
	ErrVehicleNotFound     = errors.New("vehicle does not exist")
	ErrNoRentalDays        = errors.New("rental must be at least one day")
	ErrVehicleOccupied     = errors.New("vehicle is not available")
	ErrReservationNotFound = errors.New("reservation does not exist")
	ErrDataMismatch        = errors.New("provided details do not match the reservation")
	ErrAmbiguousInvoice    = errors.New("multiple invoices match the reservation amount")
)

// IsBusiness reports whether err is one of the booking rule violations, as
// opposed to an underlying storage failure.
func IsBusiness(err error) bool {
	for _, e := range []error{
		ErrInvalidInput, ErrClientNotFound, ErrVehicleNotFound, ErrNoRentalDays,
		ErrVehicleOccupied, ErrReservationNotFound, ErrDataMismatch, ErrAmbiguousInvoice,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
