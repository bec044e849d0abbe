package request

// PackageRequest carries the multipart form fields for create and
// update. List fields arrive as repeated form values; Images holds the
// filenames of the files already saved by the handler. Discount is
// clamped to [0, 20] by the service.
type PackageRequest struct {
	Name           string   `json:"packageName" validate:"required,min=1,max=200"`
	Description    string   `json:"packageDescription" validate:"required"`
	Destination    string   `json:"packageDestination" validate:"required"`
	Category       string   `json:"packageCategory" validate:"required"`
	Days           int      `json:"packageDays" validate:"min=1"`
	Nights         int      `json:"packageNights" validate:"min=0"`
	Accommodation  string   `json:"packageAccommodation" validate:"required"`
	Transportation string   `json:"packageTransportation" validate:"required"`
	Price          float64  `json:"packagePrice" validate:"min=0"`
	Discount       float64  `json:"discount"`
	Meals          []string `json:"packageMeals"`
	Activities     []string `json:"packageActivities"`
	Inclusions     []string `json:"inclusions"`
	Exclusions     []string `json:"exclusions"`
	Itinerary      []string `json:"itinerary"`
	BookingTips    []string `json:"bookingTips"`
	Hotels         []string `json:"hotels"`
	Foods          []string `json:"foods"`
	Features       []string `json:"features"`
	Images         []string `json:"packageImages"`
}

type PackageListRequest struct {
	Category   string
	SearchTerm string
	OfferOnly  bool
	Sort       string
	Order      string
	StartIndex int
	Limit      int
}
