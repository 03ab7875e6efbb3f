package services

import (
	"errors"

	"gorm.io/gorm"

	"resort-backend/models"
)

var ErrOfferingNotFound = errors.New("offering_not_found")

// CatalogService reads the seeded reference data: room offerings, event
// venues and the restaurant menu. All read-only.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) ListRoomOfferings() ([]models.RoomOffering, error) {
	var offerings []models.RoomOffering
	err := s.DB.Order("id").Find(&offerings).Error
	return offerings, err
}

func (s *CatalogService) RoomOfferingByID(id uint) (models.RoomOffering, error) {
	var offering models.RoomOffering
	if err := s.DB.First(&offering, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomOffering{}, ErrOfferingNotFound
		}
		return models.RoomOffering{}, err
	}
	return offering, nil
}

func (s *CatalogService) ListEventOfferings() ([]models.EventOffering, error) {
	var offerings []models.EventOffering
	err := s.DB.Order("id").Find(&offerings).Error
	return offerings, err
}

func (s *CatalogService) EventOfferingByID(id uint) (models.EventOffering, error) {
	var offering models.EventOffering
	if err := s.DB.First(&offering, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EventOffering{}, ErrOfferingNotFound
		}
		return models.EventOffering{}, err
	}
	return offering, nil
}

func (s *CatalogService) ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.Order("id").Find(&items).Error
	return items, err
}

func (s *CatalogService) MenuItemByID(id uint) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrOfferingNotFound
		}
		return models.MenuItem{}, err
	}
	return item, nil
}
