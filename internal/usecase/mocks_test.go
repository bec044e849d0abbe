package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================
// In-memory repository mocks
// ============================================

type mockPackageRepo struct {
	packages map[uuid.UUID]*entity.Package
}

func newMockPackageRepo() *mockPackageRepo {
	return &mockPackageRepo{packages: make(map[uuid.UUID]*entity.Package)}
}

func (m *mockPackageRepo) Create(_ context.Context, pkg *entity.Package) error {
	m.packages[pkg.ID] = pkg
	return nil
}

func (m *mockPackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Package, error) {
	pkg, ok := m.packages[id]
	if !ok {
		return nil, nil
	}
	copied := *pkg
	return &copied, nil
}

func (m *mockPackageRepo) FindAll(_ context.Context, filter repository.PackageFilter) ([]*entity.Package, error) {
	var result []*entity.Package
	for _, pkg := range m.packages {
		if filter.OfferOnly && !pkg.Offer {
			continue
		}
		result = append(result, pkg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockPackageRepo) Update(_ context.Context, pkg *entity.Package) error {
	if _, ok := m.packages[pkg.ID]; !ok {
		return fmt.Errorf("package %s not found", pkg.ID.String())
	}
	m.packages[pkg.ID] = pkg
	return nil
}

func (m *mockPackageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.packages[id]; !ok {
		return fmt.Errorf("package %s not found", id.String())
	}
	delete(m.packages, id)
	return nil
}

type mockBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (m *mockBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (m *mockBookingRepo) FindByBuyerAndPackage(_ context.Context, buyerID, packageID uuid.UUID) (*entity.Booking, error) {
	var latest *entity.Booking
	for _, b := range m.bookings {
		if b.BuyerID != buyerID || b.PackageID != packageID {
			continue
		}
		if latest == nil || b.CreatedAt.After(latest.CreatedAt) {
			latest = b
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	booking, ok := m.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}
	booking.Status = status
	return nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.bookings[id]; !ok {
		return fmt.Errorf("booking %s not found", id.String())
	}
	delete(m.bookings, id)
	return nil
}

func (m *mockBookingRepo) FindAdmin(_ context.Context, _ string, currentOnly bool) ([]*entity.BookingDetail, error) {
	return m.list(func(*entity.Booking) bool { return true }, currentOnly), nil
}

func (m *mockBookingRepo) FindByBuyer(_ context.Context, buyerID uuid.UUID, _ string, currentOnly bool) ([]*entity.BookingDetail, error) {
	return m.list(func(b *entity.Booking) bool { return b.BuyerID == buyerID }, currentOnly), nil
}

func (m *mockBookingRepo) list(match func(*entity.Booking) bool, currentOnly bool) []*entity.BookingDetail {
	var details []*entity.BookingDetail
	now := time.Now()
	for _, b := range m.bookings {
		if !match(b) {
			continue
		}
		if currentOnly && (b.Status != entity.BookingStatusBooked || !b.TravelDate.After(now)) {
			continue
		}
		details = append(details, &entity.BookingDetail{Booking: *b})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].CreatedAt.Before(details[j].CreatedAt)
	})
	return details
}

type mockRatingRepo struct {
	ratings  map[uuid.UUID]*entity.Rating
	packages *mockPackageRepo
}

func newMockRatingRepo(packages *mockPackageRepo) *mockRatingRepo {
	return &mockRatingRepo{
		ratings:  make(map[uuid.UUID]*entity.Rating),
		packages: packages,
	}
}

func (m *mockRatingRepo) Create(_ context.Context, rating *entity.Rating) (float64, int64, error) {
	for _, existing := range m.ratings {
		if existing.UserRef == rating.UserRef && existing.PackageID == rating.PackageID {
			return 0, 0, fmt.Errorf("user already reviewed this package")
		}
	}

	pkg, ok := m.packages.packages[rating.PackageID]
	if !ok {
		return 0, 0, fmt.Errorf("package %s not found", rating.PackageID.String())
	}

	m.ratings[rating.ID] = rating

	avg, count := m.stats(rating.PackageID)
	avg = math.Round(avg*10) / 10
	pkg.RatingAvg = avg
	pkg.RatingCount = count

	return avg, count, nil
}

func (m *mockRatingRepo) FindByUserAndPackage(_ context.Context, userRef, packageID uuid.UUID) (*entity.Rating, error) {
	for _, rating := range m.ratings {
		if rating.UserRef == userRef && rating.PackageID == packageID {
			copied := *rating
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockRatingRepo) FindByPackageID(_ context.Context, packageID uuid.UUID, limit int) ([]*entity.Rating, error) {
	var result []*entity.Rating
	for _, rating := range m.ratings {
		if rating.PackageID == packageID {
			result = append(result, rating)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockRatingRepo) GetPackageRatingStats(_ context.Context, packageID uuid.UUID) (float64, int64, error) {
	avg, count := m.stats(packageID)
	return avg, count, nil
}

func (m *mockRatingRepo) stats(packageID uuid.UUID) (float64, int64) {
	var sum, count int64
	for _, rating := range m.ratings {
		if rating.PackageID == packageID {
			sum += int64(rating.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(sum) / float64(count), count
}

type mockUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	if offset >= len(users) {
		return nil, nil
	}
	users = users[offset:]
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (m *mockUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	user, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	user.IsActive = false
	return nil
}

type mockSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (m *mockSessionRepo) Create(_ context.Context, session *entity.Session) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	now := time.Now()
	for _, session := range m.sessions {
		if session.Token.String() == token && session.RevokedAt == nil && session.ExpiresAt.After(now) {
			copied := *session
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockSessionRepo) Revoke(_ context.Context, token string) error {
	now := time.Now()
	for _, session := range m.sessions {
		if session.Token.String() == token {
			session.RevokedAt = &now
			return nil
		}
	}
	return fmt.Errorf("session not found")
}

func (m *mockSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, session := range m.sessions {
		if session.UserID == userID {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (m *mockSessionRepo) CleanExpiredSessions(_ context.Context) error {
	return nil
}

// ============================================
// Test fixtures
// ============================================

func newTestRepo() *repository.Repository {
	packages := newMockPackageRepo()
	return &repository.Repository{
		User:    newMockUserRepo(),
		Session: newMockSessionRepo(),
		Package: packages,
		Booking: newMockBookingRepo(),
		Rating:  newMockRatingRepo(packages),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func seedUser(repo *repository.Repository, username string) *entity.User {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
		IsActive:     true,
	}
	repo.User.Create(context.Background(), user)
	return user
}

func seedPackage(repo *repository.Repository, name string, price, discountPrice float64) *entity.Package {
	now := time.Now()
	pkg := &entity.Package{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           name,
		Description:    "A trip",
		Destination:    "Bali",
		Category:       "beach",
		Days:           3,
		Nights:         2,
		Accommodation:  "Hotel",
		Transportation: "Bus",
		Price:          price,
		DiscountPrice:  discountPrice,
		Offer:          discountPrice < price,
	}
	repo.Package.Create(context.Background(), pkg)
	return pkg
}

func seedBooking(repo *repository.Repository, buyerID, packageID uuid.UUID, travelDate time.Time) *entity.Booking {
	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PackageID:  packageID,
		BuyerID:    buyerID,
		Persons:    2,
		TotalPrice: 100,
		TravelDate: travelDate,
		Status:     entity.BookingStatusBooked,
	}
	repo.Booking.Create(context.Background(), booking)
	return booking
}
