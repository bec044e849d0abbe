package entity

// Package is a sellable travel itinerary listing.
//
// DiscountPrice and Offer are derived at write time from the clamped
// discount percentage. RatingAvg/RatingCount are a cached aggregate
// maintained by the rating store.
type Package struct {
	BaseNoDelete
	Name           string   `db:"package_name"`
	Description    string   `db:"package_description"`
	Destination    string   `db:"package_destination"`
	Category       string   `db:"package_category"`
	Days           int      `db:"package_days"`
	Nights         int      `db:"package_nights"`
	Accommodation  string   `db:"package_accommodation"`
	Transportation string   `db:"package_transportation"`
	Price          float64  `db:"package_price"`
	DiscountPrice  float64  `db:"package_discount_price"`
	Offer          bool     `db:"package_offer"`
	Meals          []string `db:"package_meals"`
	Activities     []string `db:"package_activities"`
	Inclusions     []string `db:"inclusions"`
	Exclusions     []string `db:"exclusions"`
	Itinerary      []string `db:"itinerary"`
	BookingTips    []string `db:"booking_tips"`
	Hotels         []string `db:"hotels"`
	Foods          []string `db:"foods"`
	Features       []string `db:"features"`
	Images         []string `db:"package_images"` // bare filenames
	RatingAvg      float64  `db:"rating_avg"`
	RatingCount    int64    `db:"rating_count"`
}
