package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Membership struct {
	ID          uint64          `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"uniqueIndex;size:50"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Description string          `json:"description"`
	Rules       []CommissionRule `json:"rules" gorm:"foreignKey:MembershipID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CommissionRule is one row of a membership's commission schedule: a fixed
// payout for the ancestor at the given referral level. The schedule is
// sparse; levels without a row pay nothing.
type CommissionRule struct {
	ID           uint64          `json:"id" gorm:"primaryKey"`
	MembershipID uint64          `json:"membership_id" gorm:"uniqueIndex:idx_membership_level"`
	Level        int             `json:"level" gorm:"uniqueIndex:idx_membership_level"`
	Commission   decimal.Decimal `json:"commission" gorm:"type:decimal(12,2)"`
}

func (r CommissionRule) ValidateLevel() bool {
	return r.Level >= 1
}

// CommissionFor looks up the schedule by exact level. No fallback between
// levels.
func (m *Membership) CommissionFor(level int) (decimal.Decimal, bool) {
	for _, rule := range m.Rules {
		if rule.Level == level {
			return rule.Commission, true
		}
	}

	return decimal.Zero, false
}

func FindMembership(db *gorm.DB, id uint64) (*Membership, error) {
	var membership *Membership

	if result := db.Preload("Rules", func(db *gorm.DB) *gorm.DB {
		return db.Order("level asc")
	}).First(&membership, "id = ?", id); result.Error != nil {
		return nil, result.Error
	}

	return membership, nil
}
