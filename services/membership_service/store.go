package membership_service

import (
	"errors"

	"github.com/bayezid0075/Dreamy-Life-v2.0/commission"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FindUser(id uint64) (*models.User, error) {
	user, err := models.FindUser(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	return user, err
}

func (s *GormStore) FindMembership(id uint64) (*models.Membership, error) {
	membership, err := models.FindMembership(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	return membership, err
}

func (s *GormStore) FindActivePurchase(userID, membershipID uint64) (*models.MembershipPurchase, error) {
	purchase, err := models.FindActivePurchase(s.DB, userID, membershipID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	return purchase, err
}

func (s *GormStore) Transaction(fn func(tx Store) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

func (s *GormStore) CreatePurchase(purchase *models.MembershipPurchase) error {
	return s.DB.Create(purchase).Error
}

func (s *GormStore) Engine() *commission.Engine {
	return commission.NewForTransaction(s.DB)
}

func (s *GormStore) SaveMemberStatus(user *models.User, status string) error {
	user.IsVerified = true
	user.MemberStatus = status

	return s.DB.Save(user).Error
}
