package models

import (
	"math/rand"
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"gorm.io/gorm"
)

type User struct {
	ID           uint64             `json:"id" gorm:"primaryKey"`
	Username     string             `json:"username"`
	Email        string             `json:"email" gorm:"uniqueIndex"`
	PhoneNumber  string             `json:"phone_number" gorm:"uniqueIndex"`
	PasswordHash string             `json:"-"`
	ReferralCode string             `json:"referral_code" gorm:"uniqueIndex;size:8"`
	ReferredByID *uint64            `json:"referred_by_id" gorm:"index"`
	MemberStatus types.MemberStatus `json:"member_status" gorm:"default:user"`
	IsVerified   bool               `json:"is_verified" gorm:"default:false"`
	State        string             `json:"state" gorm:"default:active"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (u *User) HavingReferrer() bool {
	return u.ReferredByID != nil
}

// Referrer returns the immediate upline, or nil for a root user.
func (u *User) Referrer() *User {
	if u.ReferredByID == nil {
		return nil
	}

	var referrer *User

	if result := config.DataBase.First(&referrer, "id = ?", *u.ReferredByID); result.Error != nil {
		return nil
	}

	return referrer
}

func (u *User) Downlines() []*User {
	var downlines []*User

	config.DataBase.Order("id asc").Find(&downlines, "referred_by_id = ?", u.ID)

	return downlines
}

// GetWallet creates a zero-balance wallet on first use.
func (u *User) GetWallet() *Wallet {
	var wallet *Wallet

	config.DataBase.FirstOrCreate(&wallet, Wallet{UserID: u.ID})

	return wallet
}

func FindUser(db *gorm.DB, id uint64) (*User, error) {
	var user *User

	if result := db.First(&user, "id = ?", id); result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

func FindUserByReferralCode(db *gorm.DB, code string) (*User, error) {
	var user *User

	if result := db.First(&user, "referral_code = ?", code); result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

const referralCodeDigits = "0123456789"

// GenerateReferralCode issues an unused 8-digit code. Codes are issued at
// registration, before the user can have any downline, so referral edges can
// only point at already-persisted users.
func GenerateReferralCode(db *gorm.DB) string {
	for {
		code := make([]byte, 8)
		for i := range code {
			code[i] = referralCodeDigits[rand.Intn(len(referralCodeDigits))]
		}

		var count int64
		db.Model(&User{}).Where("referral_code = ?", string(code)).Count(&count)
		if count == 0 {
			return string(code)
		}
	}
}
