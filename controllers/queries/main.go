package queries

import "github.com/bayezid0075/Dreamy-Life-v2.0/controllers/helpers"

type PaginationQueries struct {
	Limit int `query:"limit" validate:"uint"`
	Page  int `query:"page" validate:"uint"`
}

func (q PaginationQueries) Messages() map[string]string {
	return helpers.ValidateMessage("pagination")
}

type CommissionQueries struct {
	Limit int `query:"limit" validate:"uint"`
	Page  int `query:"page" validate:"uint"`
}

func (q CommissionQueries) Messages() map[string]string {
	return helpers.ValidateMessage("referral.commission")
}

type SummaryQueries struct {
	TimeFrom int64 `query:"time_from" validate:"uint"`
	TimeTo   int64 `query:"time_to" validate:"uint"`
}

func (q SummaryQueries) Messages() map[string]string {
	return helpers.ValidateMessage("referral.summary")
}

type DownlineQueries struct {
	MaxDepth int `query:"max_depth" validate:"uint"`
}

func (q DownlineQueries) Messages() map[string]string {
	return helpers.ValidateMessage("referral.downline")
}
