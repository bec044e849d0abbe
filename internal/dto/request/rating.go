package request

type GiveRatingRequest struct {
	UserRef   string  `json:"userRef" validate:"required,uuid4"`
	PackageID string  `json:"packageId" validate:"required,uuid4"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Review    *string `json:"review,omitempty" validate:"omitempty,max=500"`
}
