package models

import (
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"gorm.io/gorm"
)

// MembershipPurchase is the immutable record of one paid membership. The
// active flag may be toggled later by billing, but commissions distributed
// for the purchase are never reversed.
// The partial unique index allows one active purchase per (user, membership)
// at the database level, so simultaneous webhook deliveries cannot both slip
// past the workflow's duplicate gate.
type MembershipPurchase struct {
	ID           uint64    `json:"id" gorm:"primaryKey"`
	UserID       uint64    `json:"user_id" gorm:"uniqueIndex:idx_active_purchase,where:is_active"`
	MembershipID uint64    `json:"membership_id" gorm:"uniqueIndex:idx_active_purchase"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	PurchasedAt  time.Time `json:"purchased_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *MembershipPurchase) Membership() *Membership {
	var membership *Membership

	config.DataBase.First(&membership, "id = ?", p.MembershipID)

	return membership
}

// FindActivePurchase returns the existing active purchase for the pair, if
// any. The purchase workflow uses it as the duplicate-distribution gate.
func FindActivePurchase(db *gorm.DB, userID, membershipID uint64) (*MembershipPurchase, error) {
	var purchase *MembershipPurchase

	result := db.Where("user_id = ? AND membership_id = ? AND is_active = ?", userID, membershipID, true).
		Order("id asc").
		First(&purchase)
	if result.Error != nil {
		return nil, result.Error
	}

	return purchase, nil
}
