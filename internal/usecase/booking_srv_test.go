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

func TestBook_Success(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)

	req := &request.CreateBookingRequest{
		PackageID:  pkg.ID.String(),
		Buyer:      buyer.ID.String(),
		TotalPrice: 1600,
		Persons:    2,
		Date:       "2027-06-15",
	}

	resp, err := service.Book(context.Background(), buyer.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusBooked, resp.Status)
	assert.Equal(t, float64(1600), resp.TotalPrice)
	assert.Equal(t, "2027-06-15", resp.TravelDate)
	assert.Equal(t, "Bali Getaway", resp.PackageName)
}

func TestBook_OnBehalfOfAnotherUser(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)

	req := &request.CreateBookingRequest{
		PackageID:  pkg.ID.String(),
		Buyer:      buyer.ID.String(),
		TotalPrice: 1600,
		Persons:    2,
		Date:       "2027-06-15",
	}

	_, err := service.Book(context.Background(), uuid.New().String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestBook_PackageNotFound(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")

	req := &request.CreateBookingRequest{
		PackageID:  uuid.New().String(),
		Buyer:      buyer.ID.String(),
		TotalPrice: 1600,
		Persons:    2,
		Date:       "2027-06-15",
	}

	_, err := service.Book(context.Background(), buyer.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBook_PriceMismatchRejected(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)

	// Client claims the undiscounted total
	req := &request.CreateBookingRequest{
		PackageID:  pkg.ID.String(),
		Buyer:      buyer.ID.String(),
		TotalPrice: 2000,
		Persons:    2,
		Date:       "2027-06-15",
	}

	_, err := service.Book(context.Background(), buyer.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid total price")
}

func TestCancel_SetsStatusCancelled(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)
	booking := seedBooking(repo, buyer.ID, pkg.ID, time.Now().AddDate(0, 1, 0))

	err := service.Cancel(context.Background(), buyer.ID.String(), buyer.ID.String(), booking.ID.String())
	require.NoError(t, err)

	stored, err := repo.Booking.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, stored.Status)

	// Cancelling again is a no-op
	err = service.Cancel(context.Background(), buyer.ID.String(), buyer.ID.String(), booking.ID.String())
	require.NoError(t, err)
}

func TestCancel_AnotherUsersBooking(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	other := seedUser(repo, "bob")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)
	booking := seedBooking(repo, buyer.ID, pkg.ID, time.Now().AddDate(0, 1, 0))

	err := service.Cancel(context.Background(), other.ID.String(), other.ID.String(), booking.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")

	stored, err := repo.Booking.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusBooked, stored.Status)
}

func TestGetUserBookings_OwnerMismatch(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")

	_, err := service.GetUserBookings(context.Background(), uuid.New().String(), buyer.ID.String(), "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestGetUserBookings_CurrentOnlyExcludesCancelledAndPast(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)

	upcoming := seedBooking(repo, buyer.ID, pkg.ID, time.Now().AddDate(0, 1, 0))
	seedBooking(repo, buyer.ID, pkg.ID, time.Now().AddDate(0, -1, 0))
	cancelled := seedBooking(repo, buyer.ID, pkg.ID, time.Now().AddDate(0, 2, 0))
	repo.Booking.UpdateStatus(context.Background(), cancelled.ID, entity.BookingStatusCancelled)

	resp, err := service.GetUserBookings(context.Background(), buyer.ID.String(), buyer.ID.String(), "", true)
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, upcoming.ID.String(), resp[0].ID)
}

func TestDeleteHistory_RemovesBooking(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)
	booking := seedBooking(repo, buyer.ID, pkg.ID, time.Now().AddDate(0, -1, 0))

	err := service.DeleteHistory(context.Background(), buyer.ID.String(), buyer.ID.String(), booking.ID.String())
	require.NoError(t, err)

	stored, err := repo.Booking.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCheckTravelComplete_PastTrip(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)
	seedBooking(repo, buyer.ID, pkg.ID, time.Now().AddDate(0, 0, -1))

	resp, err := service.CheckTravelComplete(context.Background(), buyer.ID.String(), buyer.ID.String(), pkg.ID.String())
	require.NoError(t, err)

	assert.True(t, resp.Found)
	assert.True(t, resp.Completed)
}

func TestCheckTravelComplete_FutureTrip(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)
	seedBooking(repo, buyer.ID, pkg.ID, time.Now().AddDate(0, 0, 1))

	resp, err := service.CheckTravelComplete(context.Background(), buyer.ID.String(), buyer.ID.String(), pkg.ID.String())
	require.NoError(t, err)

	assert.True(t, resp.Found)
	assert.False(t, resp.Completed)
}

func TestCheckTravelComplete_NoBooking(t *testing.T) {
	repo := newTestRepo()
	service := NewBookingService(repo, testLogger())

	buyer := seedUser(repo, "alice")
	pkg := seedPackage(repo, "Bali Getaway", 1000, 800)

	resp, err := service.CheckTravelComplete(context.Background(), buyer.ID.String(), buyer.ID.String(), pkg.ID.String())
	require.NoError(t, err)

	assert.False(t, resp.Found)
	assert.False(t, resp.Completed)
}

func TestTravelCompleted_DateEqualToNow(t *testing.T) {
	now := time.Now()

	assert.True(t, travelCompleted(now, now))
	assert.True(t, travelCompleted(now.Add(-time.Hour), now))
	assert.False(t, travelCompleted(now.Add(time.Hour), now))
}
