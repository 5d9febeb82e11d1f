package cron

import (
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/shopspring/decimal"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
)

// ReferralSummaryJob rolls the previous day's commission activity into one
// ReferralSummary row per earner.
type ReferralSummaryJob struct {
}

func (j *ReferralSummaryJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:00:00").Do(summarizeReferrals)
	<-s.Start()
}

type GroupCommission struct {
	BuyerCount uint64
	UserID     uint64
}

type GroupRegistration struct {
	Friend       uint64
	ReferredByID uint64
}

func summarizeReferrals() {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	var group_commissions []*GroupCommission

	config.DataBase.
		Model(&models.Commission{}).
		Select("COUNT(DISTINCT buyer_id) as buyer_count", "user_id").
		Where("CAST(\"created_at\" AS DATE) = ?", yesterday).
		Group("user_id").
		Find(&group_commissions)

	for _, group_commission := range group_commissions {
		var commissions []*models.Commission

		earned_total := decimal.Zero

		config.DataBase.Where("user_id = ? AND CAST(\"created_at\" AS DATE) = ?", group_commission.UserID, yesterday).Find(&commissions)

		for _, commission := range commissions {
			earned_total = earned_total.Add(commission.EarnAmount)
		}

		upsertSummary(group_commission.UserID, yesterday, earned_total, group_commission.BuyerCount, 0)
	}

	var group_registrations []*GroupRegistration

	config.DataBase.
		Model(&models.User{}).
		Select("COUNT(id) as friend", "referred_by_id").
		Where("referred_by_id IS NOT NULL AND CAST(\"created_at\" AS DATE) = ?", yesterday).
		Group("referred_by_id").
		Find(&group_registrations)

	for _, group_registration := range group_registrations {
		var summary *models.ReferralSummary

		if result := config.DataBase.Where("user_id = ? AND day = ?", group_registration.ReferredByID, yesterday).First(&summary); result.Error == nil {
			config.DataBase.Model(&summary).Update("new_friends", group_registration.Friend)
		} else {
			upsertSummary(group_registration.ReferredByID, yesterday, decimal.Zero, 0, group_registration.Friend)
		}
	}
}

func upsertSummary(userID uint64, day string, earned decimal.Decimal, buyers, friends uint64) {
	var summary *models.ReferralSummary

	if result := config.DataBase.Where("user_id = ? AND day = ?", userID, day).First(&summary); result.Error == nil {
		summary.EarnedTotal = earned
		summary.BuyerCount = buyers
		if friends > 0 {
			summary.NewFriends = friends
		}
		config.DataBase.Save(summary)
		return
	}

	config.DataBase.Create(&models.ReferralSummary{
		UserID:      userID,
		Day:         day,
		EarnedTotal: earned,
		BuyerCount:  buyers,
		NewFriends:  friends,
	})
}
