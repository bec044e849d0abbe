package request

type CreateBookingRequest struct {
	PackageID  string  `json:"packageDetails" validate:"required,uuid4"`
	Buyer      string  `json:"buyer" validate:"required,uuid4"`
	TotalPrice float64 `json:"totalPrice" validate:"required,min=0"`
	Persons    int     `json:"persons" validate:"required,min=1"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
}
