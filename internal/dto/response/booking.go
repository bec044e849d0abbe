package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	PackageID     string               `json:"package_id"`
	PackageName   string               `json:"package_name,omitempty"`
	BuyerID       string               `json:"buyer_id"`
	BuyerUsername string               `json:"buyer_username,omitempty"`
	BuyerEmail    string               `json:"buyer_email,omitempty"`
	Persons       int                  `json:"persons"`
	TotalPrice    float64              `json:"total_price"`
	TravelDate    string               `json:"date"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type TravelCompleteResponse struct {
	Found     bool   `json:"-"`
	Completed bool   `json:"completed"`
	Message   string `json:"message"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		PackageID:  booking.PackageID.String(),
		BuyerID:    booking.BuyerID.String(),
		Persons:    booking.Persons,
		TotalPrice: booking.TotalPrice,
		TravelDate: booking.TravelDate.Format("2006-01-02"),
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}

func BookingDetailToResponse(detail *entity.BookingDetail) BookingResponse {
	resp := BookingToResponse(&detail.Booking)
	resp.PackageName = detail.PackageName
	resp.BuyerUsername = detail.BuyerUsername
	resp.BuyerEmail = detail.BuyerEmail
	return resp
}
