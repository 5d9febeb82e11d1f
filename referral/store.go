package referral

import (
	"errors"

	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"gorm.io/gorm"
)

// GormSource reads referral edges through the given DB handle, which may be
// a transaction.
type GormSource struct {
	DB *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{DB: db}
}

func (s *GormSource) Referrer(user *models.User) (*models.User, error) {
	if user.ReferredByID == nil {
		return nil, nil
	}

	var referrer *models.User

	result := s.DB.First(&referrer, "id = ?", *user.ReferredByID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Dangling edge: treat as the top of the chain.
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return referrer, nil
}

func (s *GormSource) Children(userID uint64) ([]*models.User, error) {
	var children []*models.User

	result := s.DB.Order("id asc").Find(&children, "referred_by_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}

	return children, nil
}
