package service

import (
	"fmt"
	"log/slog"

	"github.com/DechoChernev1/CustomerBookingService/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BrandStorage
type BrandStorage interface {
	SaveBrand(b *models.Brand) error
	BrandByID(id int64) (*models.Brand, error)
	AllBrands() ([]models.Brand, error)
	UpdateBrand(b *models.Brand) error
	DeleteBrand(id int64) error
	BrandExists(id int64) (bool, error)
}

type BrandService struct {
	log     *slog.Logger
	storage BrandStorage
}

func NewBrandService(log *slog.Logger, storage BrandStorage) *BrandService {
	return &BrandService{
		log:     log,
		storage: storage,
	}
}

func (s *BrandService) FindAllBrands() ([]models.Brand, error) {
	const op = "service.FindAllBrands"

	brands, err := s.storage.AllBrands()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return brands, nil
}

func (s *BrandService) FindBrandByID(id int64) (*models.Brand, error) {
	const op = "service.FindBrandByID"

	brand, err := s.storage.BrandByID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return brand, nil
}

func (s *BrandService) SaveBrand(details *models.Brand) (*models.Brand, error) {
	const op = "service.SaveBrand"

	brand := &models.Brand{
		Name:      details.Name,
		Address:   details.Address,
		ShortCode: details.ShortCode,
	}

	if err := s.storage.SaveBrand(brand); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("brand saved", slog.Int64("id", brand.ID))

	return brand, nil
}

// UpdateBrand loads the stored brand and overwrites exactly name, address
// and shortCode before persisting.
func (s *BrandService) UpdateBrand(id int64, details *models.Brand) (*models.Brand, error) {
	const op = "service.UpdateBrand"

	brand, err := s.storage.BrandByID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	brand.Name = details.Name
	brand.Address = details.Address
	brand.ShortCode = details.ShortCode

	if err = s.storage.UpdateBrand(brand); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("brand updated", slog.Int64("id", id))

	return brand, nil
}

// DeleteBrand deletes unconditionally and reports the record's absence
// afterwards, mirroring DeleteCustomer's contract.
func (s *BrandService) DeleteBrand(id int64) (bool, error) {
	const op = "service.DeleteBrand"

	if err := s.storage.DeleteBrand(id); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.storage.BrandExists(id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("brand deleted", slog.Int64("id", id), slog.Bool("deleted", !exists))

	return !exists, nil
}
