package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/handlers/slogdiscard"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/DechoChernev1/CustomerBookingService/internal/service"
	"github.com/DechoChernev1/CustomerBookingService/internal/service/mocks"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage"
)

func TestSaveBookingReducesReferencesToIDs(t *testing.T) {
	t.Parallel()

	start := models.NewDate(2025, time.March, 1)

	resolved := &models.Booking{
		ID:        2,
		Title:     "Trip",
		StartDate: &start,
		Customer:  &models.Customer{ID: 1, Name: "Alice"},
	}

	storageMock := mocks.NewBookingStorage(t)
	storageMock.On("SaveBooking", &models.Booking{
		Title:     "Trip",
		Active:    true,
		StartDate: &start,
		Customer:  &models.Customer{ID: 1},
	}).
		Run(func(args mock.Arguments) {
			b := args.Get(0).(*models.Booking)
			b.ID = 2
		}).
		Return(nil)
	storageMock.On("BookingByID", int64(2)).Return(resolved, nil)

	svc := service.NewBookingService(slogdiscard.NewDiscardLogger(), storageMock)

	// the nested customer carries extra fields that must be stripped down
	// to its id before persisting
	saved, err := svc.SaveBooking(&models.Booking{
		Title:     "Trip",
		Active:    true,
		StartDate: &start,
		Customer:  &models.Customer{ID: 1, Name: "smuggled", Email: "x@y.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), saved.ID)
	require.NotNil(t, saved.Customer)
	assert.Equal(t, "Alice", saved.Customer.Name)
}

func TestSaveBookingUnknownCustomer(t *testing.T) {
	t.Parallel()

	storageMock := mocks.NewBookingStorage(t)
	storageMock.On("SaveBooking", mock.Anything).Return(storage.ErrCustomerNotFound)

	svc := service.NewBookingService(slogdiscard.NewDiscardLogger(), storageMock)

	_, err := svc.SaveBooking(&models.Booking{
		Title:    "Trip",
		Customer: &models.Customer{ID: 999},
	})
	assert.ErrorIs(t, err, storage.ErrCustomerNotFound)
}

func TestUpdateBookingRepointsBrandOnly(t *testing.T) {
	t.Parallel()

	existing := &models.Booking{
		ID:       2,
		Title:    "Old Title",
		Customer: &models.Customer{ID: 1},
		Brand:    &models.Brand{ID: 3},
	}
	updated := &models.Booking{
		ID:       2,
		Title:    "New Title",
		Customer: &models.Customer{ID: 1},
		Brand:    &models.Brand{ID: 4, Name: "Globex"},
	}

	storageMock := mocks.NewBookingStorage(t)
	storageMock.On("BookingByID", int64(2)).Return(existing, nil).Once()
	storageMock.On("UpdateBooking", mock.MatchedBy(func(b *models.Booking) bool {
		return b.ID == 2 && b.Title == "New Title" &&
			b.Brand != nil && b.Brand.ID == 4 &&
			b.Customer != nil && b.Customer.ID == 1
	})).Return(nil)
	storageMock.On("BookingByID", int64(2)).Return(updated, nil).Once()

	svc := service.NewBookingService(slogdiscard.NewDiscardLogger(), storageMock)

	// the input carries a different customer, which must be ignored
	got, err := svc.UpdateBooking(2, &models.Booking{
		Title:    "New Title",
		Brand:    &models.Brand{ID: 4},
		Customer: &models.Customer{ID: 777},
	})
	require.NoError(t, err)

	require.NotNil(t, got.Brand)
	assert.Equal(t, int64(4), got.Brand.ID)
	require.NotNil(t, got.Customer)
	assert.Equal(t, int64(1), got.Customer.ID)
}

func TestUpdateBookingKeepsBrandWhenInputOmitsIt(t *testing.T) {
	t.Parallel()

	existing := &models.Booking{
		ID:    2,
		Title: "Old Title",
		Brand: &models.Brand{ID: 3},
	}

	storageMock := mocks.NewBookingStorage(t)
	storageMock.On("BookingByID", int64(2)).Return(existing, nil)
	storageMock.On("UpdateBooking", mock.MatchedBy(func(b *models.Booking) bool {
		return b.Brand != nil && b.Brand.ID == 3
	})).Return(nil)

	svc := service.NewBookingService(slogdiscard.NewDiscardLogger(), storageMock)

	_, err := svc.UpdateBooking(2, &models.Booking{Title: "New Title"})
	require.NoError(t, err)
}

func TestUpdateBookingNotFound(t *testing.T) {
	t.Parallel()

	storageMock := mocks.NewBookingStorage(t)
	storageMock.On("BookingByID", int64(999)).Return(nil, storage.ErrBookingNotFound)

	svc := service.NewBookingService(slogdiscard.NewDiscardLogger(), storageMock)

	_, err := svc.UpdateBooking(999, &models.Booking{Title: "New Title"})
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
	storageMock.AssertNotCalled(t, "UpdateBooking", mock.Anything)
}

func TestDeleteBookingReportsAbsence(t *testing.T) {
	t.Parallel()

	storageMock := mocks.NewBookingStorage(t)
	storageMock.On("DeleteBooking", int64(2)).Return(nil)
	storageMock.On("BookingExists", int64(2)).Return(false, nil)

	svc := service.NewBookingService(slogdiscard.NewDiscardLogger(), storageMock)

	deleted, err := svc.DeleteBooking(2)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestFindBookingsByCustomerIDEmpty(t *testing.T) {
	t.Parallel()

	storageMock := mocks.NewBookingStorage(t)
	storageMock.On("BookingsByCustomerID", int64(42)).Return([]models.Booking{}, nil)

	svc := service.NewBookingService(slogdiscard.NewDiscardLogger(), storageMock)

	bookings, err := svc.FindBookingsByCustomerID(42)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestFindBookingsByBrandID(t *testing.T) {
	t.Parallel()

	want := []models.Booking{{ID: 2, Title: "Trip", Brand: &models.Brand{ID: 3}}}

	storageMock := mocks.NewBookingStorage(t)
	storageMock.On("BookingsByBrandID", int64(3)).Return(want, nil)

	svc := service.NewBookingService(slogdiscard.NewDiscardLogger(), storageMock)

	bookings, err := svc.FindBookingsByBrandID(3)
	require.NoError(t, err)
	assert.Equal(t, want, bookings)
}
