package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type PackageResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"packageName"`
	Description    string    `json:"packageDescription"`
	Destination    string    `json:"packageDestination"`
	Category       string    `json:"packageCategory"`
	Days           int       `json:"packageDays"`
	Nights         int       `json:"packageNights"`
	Accommodation  string    `json:"packageAccommodation"`
	Transportation string    `json:"packageTransportation"`
	Price          float64   `json:"packagePrice"`
	DiscountPrice  float64   `json:"packageDiscountPrice"`
	Offer          bool      `json:"packageOffer"`
	Meals          []string  `json:"packageMeals"`
	Activities     []string  `json:"packageActivities"`
	Inclusions     []string  `json:"inclusions"`
	Exclusions     []string  `json:"exclusions"`
	Itinerary      []string  `json:"itinerary"`
	BookingTips    []string  `json:"bookingTips"`
	Hotels         []string  `json:"hotels"`
	Foods          []string  `json:"foods"`
	Features       []string  `json:"features"`
	Images         []string  `json:"packageImages"`
	RatingAvg      float64   `json:"packageRating"`
	RatingCount    int64     `json:"packageTotalRatings"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Helper converter
func PackageToResponse(pkg *entity.Package) PackageResponse {
	return PackageResponse{
		ID:             pkg.ID.String(),
		Name:           pkg.Name,
		Description:    pkg.Description,
		Destination:    pkg.Destination,
		Category:       pkg.Category,
		Days:           pkg.Days,
		Nights:         pkg.Nights,
		Accommodation:  pkg.Accommodation,
		Transportation: pkg.Transportation,
		Price:          pkg.Price,
		DiscountPrice:  pkg.DiscountPrice,
		Offer:          pkg.Offer,
		Meals:          pkg.Meals,
		Activities:     pkg.Activities,
		Inclusions:     pkg.Inclusions,
		Exclusions:     pkg.Exclusions,
		Itinerary:      pkg.Itinerary,
		BookingTips:    pkg.BookingTips,
		Hotels:         pkg.Hotels,
		Foods:          pkg.Foods,
		Features:       pkg.Features,
		Images:         pkg.Images,
		RatingAvg:      pkg.RatingAvg,
		RatingCount:    pkg.RatingCount,
		CreatedAt:      pkg.CreatedAt,
		UpdatedAt:      pkg.UpdatedAt,
	}
}
