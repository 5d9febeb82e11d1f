package models

import (
	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
)

func Migrate() error {
	return config.DataBase.AutoMigrate(
		&User{},
		&Membership{},
		&CommissionRule{},
		&MembershipPurchase{},
		&Wallet{},
		&WalletTransaction{},
		&Commission{},
		&ReferralSummary{},
		&Notification{},
		&Vendor{},
		&Category{},
		&SubCategory{},
		&Brand{},
		&Product{},
		&Order{},
		&OrderItem{},
	)
}
