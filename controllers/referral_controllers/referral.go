package referral_controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/entities"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/helpers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/queries"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/referral"
)

// GetDownlines returns the "my network" view: every downline within
// max_depth levels, breadth-first.
func GetDownlines(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	errs := new(helpers.Errors)
	params := new(queries.DownlineQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if params.MaxDepth == 0 || params.MaxDepth > referral.MaxCommissionLevel {
		params.MaxDepth = referral.MaxCommissionLevel
	}

	graph := referral.NewGraph(referral.NewGormSource(config.DataBase))

	downlines, err := graph.Downlines(CurrentUser, params.MaxDepth)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	downline_entities := make([]*entities.DownlineEntity, 0)
	for _, downline := range downlines {
		downline_entities = append(downline_entities, &entities.DownlineEntity{
			UserID:       downline.User.ID,
			Username:     downline.User.Username,
			MemberStatus: downline.User.MemberStatus,
			Level:        downline.Level,
		})
	}

	return c.Status(200).JSON(downline_entities)
}

func GetCommissions(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	errs := new(helpers.Errors)
	params := new(queries.CommissionQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}
	if params.Page == 0 {
		params.Page = 1
	}

	var commissions []*models.Commission
	config.DataBase.
		Order("id desc").
		Offset(params.Page*params.Limit-params.Limit).
		Limit(params.Limit).
		Find(&commissions, "user_id = ?", CurrentUser.ID)

	commission_entities := make([]*entities.CommissionEntity, 0)
	for _, commission := range commissions {
		commission_entities = append(commission_entities, &entities.CommissionEntity{
			ID:           commission.ID,
			BuyerID:      commission.BuyerID,
			MembershipID: commission.MembershipID,
			Level:        commission.Level,
			EarnAmount:   commission.EarnAmount,
			CreatedAt:    commission.CreatedAt,
		})
	}

	c.Response().Header.Add("page", strconv.FormatInt(int64(params.Page), 10))
	c.Response().Header.Add("per-page", strconv.FormatInt(int64(len(commissions)), 10))

	return c.Status(200).JSON(commission_entities)
}

func GetReferralSummaries(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	errs := new(helpers.Errors)
	params := new(queries.SummaryQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	query := config.DataBase.Where("user_id = ?", CurrentUser.ID)
	if params.TimeFrom > 0 {
		query = query.Where("created_at >= ?", time.Unix(params.TimeFrom, 0))
	}
	if params.TimeTo > 0 {
		query = query.Where("created_at <= ?", time.Unix(params.TimeTo, 0))
	}

	var summaries []*models.ReferralSummary
	query.Order("day desc").Find(&summaries)

	summary_entities := make([]*entities.ReferralSummaryEntity, 0)
	for _, summary := range summaries {
		summary_entities = append(summary_entities, &entities.ReferralSummaryEntity{
			ID:          summary.ID,
			Day:         summary.Day,
			EarnedTotal: summary.EarnedTotal,
			BuyerCount:  summary.BuyerCount,
			NewFriends:  summary.NewFriends,
			CreatedAt:   summary.CreatedAt,
		})
	}

	return c.Status(200).JSON(summary_entities)
}
