package entity

import (
	"github.com/google/uuid"
)

// Rating is a user's score/review for a package. Username and Avatar
// are denormalized at write time. At most one rating per
// (user_ref, package_id) pair, enforced by a unique constraint.
type Rating struct {
	BaseSimple
	PackageID uuid.UUID `db:"package_id"`
	UserRef   uuid.UUID `db:"user_ref"`
	Rating    int       `db:"rating"` // 1-5
	Review    *string   `db:"review"`
	Username  string    `db:"username"`
	Avatar    *string   `db:"avatar"`
}
