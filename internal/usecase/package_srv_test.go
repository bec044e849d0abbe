package usecase

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPackageRequest() *request.PackageRequest {
	return &request.PackageRequest{
		Name:           "Bali Getaway",
		Description:    "Three days at the beach",
		Destination:    "Bali",
		Category:       "beach",
		Days:           3,
		Nights:         2,
		Accommodation:  "Resort",
		Transportation: "Flight",
		Price:          1000,
	}
}

func TestCreatePackage_DiscountCapped(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	req := validPackageRequest()
	req.Discount = 30

	resp, err := service.CreatePackage(context.Background(), req)
	require.NoError(t, err)

	// 30% is capped at 20%
	assert.Equal(t, float64(1000), resp.Price)
	assert.Equal(t, float64(800), resp.DiscountPrice)
	assert.True(t, resp.Offer)
}

func TestCreatePackage_NoDiscount(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	req := validPackageRequest()
	req.Discount = 0

	resp, err := service.CreatePackage(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, resp.Price, resp.DiscountPrice)
	assert.False(t, resp.Offer)
}

func TestCreatePackage_NegativeDiscountClampedToZero(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	req := validPackageRequest()
	req.Discount = -5

	resp, err := service.CreatePackage(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, resp.Price, resp.DiscountPrice)
	assert.False(t, resp.Offer)
}

func TestCreatePackage_ValidationFails(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	req := validPackageRequest()
	req.Name = ""

	_, err := service.CreatePackage(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdatePackage_AppendsImages(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	created := validPackageRequest()
	created.Images = []string{"a.jpg", "b.jpg"}
	createdResp, err := service.CreatePackage(context.Background(), created)
	require.NoError(t, err)

	update := validPackageRequest()
	update.Images = []string{"c.jpg"}

	resp, err := service.UpdatePackage(context.Background(), createdResp.ID, update)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, resp.Images)
}

func TestUpdatePackage_RecomputesDiscount(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	createdResp, err := service.CreatePackage(context.Background(), validPackageRequest())
	require.NoError(t, err)

	update := validPackageRequest()
	update.Price = 500
	update.Discount = 10

	resp, err := service.UpdatePackage(context.Background(), createdResp.ID, update)
	require.NoError(t, err)

	assert.Equal(t, float64(450), resp.DiscountPrice)
	assert.True(t, resp.Offer)
}

func TestGetPackageByID_NotFound(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	_, err := service.GetPackageByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetPackageByID_InvalidID(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	_, err := service.GetPackageByID(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid package ID format")
}

func TestGetPackages_EmptyIsNotAnError(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	resp, err := service.GetPackages(context.Background(), &request.PackageListRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestDeletePackage_LeavesBookingsAndRatings(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	user := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)
	booking := seedBooking(repo, user.ID, pkg.ID, time.Now().AddDate(0, -1, 0))

	rating := &entity.Rating{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		PackageID:  pkg.ID,
		UserRef:    user.ID,
		Rating:     5,
		Username:   "alice",
	}
	_, _, err := repo.Rating.Create(context.Background(), rating)
	require.NoError(t, err)

	require.NoError(t, service.DeletePackage(context.Background(), pkg.ID.String()))

	// Dependents stay queryable after the package is gone
	storedBooking, err := repo.Booking.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	require.NotNil(t, storedBooking)
	assert.Equal(t, pkg.ID, storedBooking.PackageID)

	storedRating, err := repo.Rating.FindByUserAndPackage(context.Background(), user.ID, pkg.ID)
	require.NoError(t, err)
	require.NotNil(t, storedRating)
	assert.Equal(t, pkg.ID, storedRating.PackageID)
}

func TestDeletePackage_NotFound(t *testing.T) {
	repo := newTestRepo()
	service := NewPackageService(repo, testLogger())

	err := service.DeletePackage(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
