package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	BaseNoDelete
	PackageID  uuid.UUID     `db:"package_id"`
	BuyerID    uuid.UUID     `db:"buyer_id"`
	Persons    int           `db:"persons"`
	TotalPrice float64       `db:"total_price"`
	TravelDate time.Time     `db:"travel_date"`
	Status     BookingStatus `db:"status"`
}

// BookingDetail is a booking row joined with its package and buyer,
// used by the admin and user listing queries.
type BookingDetail struct {
	Booking
	PackageName   string
	BuyerUsername string
	BuyerEmail    string
}
