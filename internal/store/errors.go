package store

import "errors"

// Validation errors: the operation is rejected and no state changes.
var (
	ErrMissingDates     = errors.New("check-in and check-out dates are required")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrNoGuests         = errors.New("at least one guest is required")
	ErrInvalidRoomType  = errors.New("unknown room type")
	ErrInvalidStatus    = errors.New("unknown booking status")
	ErrRoomsExceedTotal = errors.New("available rooms cannot exceed total rooms")
	ErrNegativeRooms    = errors.New("room counts cannot be negative")
	ErrMissingFields    = errors.New("name and location are required")
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
)

// Lookup errors.
var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// IsValidation reports whether err is one of the validation errors above.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrMissingDates, ErrInvalidDateRange, ErrNoGuests, ErrInvalidRoomType,
		ErrInvalidStatus, ErrRoomsExceedTotal, ErrNegativeRooms,
		ErrMissingFields, ErrRatingOutOfRange,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
