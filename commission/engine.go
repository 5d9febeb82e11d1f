package commission

import (
	"fmt"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/referral"
	"github.com/shopspring/decimal"
)

// Ledger credits a user's wallet: balance increase and log append must land
// together in the caller's transaction, serialized per wallet.
type Ledger interface {
	Credit(user *models.User, amount decimal.Decimal, description string) error
}

// Recorder persists the commission audit row alongside the credit.
type Recorder interface {
	Record(commission *models.Commission) error
}

// Notifier is a best-effort side channel; its failures never abort a
// distribution.
type Notifier interface {
	Notify(userID uint64, title, message string) error
}

// Engine distributes membership-purchase commissions across the buyer's
// upline chain. One Distribute call is one unit of work: the caller wraps it
// in a database transaction together with the purchase record, so a failed
// credit rolls back every credit made for the same purchase.
type Engine struct {
	Graph    *referral.Graph
	Ledger   Ledger
	Recorder Recorder
	Notifier Notifier
}

// Distribute walks uplines from level 1 upward, at most
// referral.MaxCommissionLevel deep. An ancestor at a level with no schedule
// rule is skipped without stopping the walk; an ancestor past the schedule
// gets nothing. Credits are applied in ascending level order.
func (e *Engine) Distribute(buyer *models.User, membership *models.Membership, purchaseID uint64) ([]*models.Commission, error) {
	var credited []*models.Commission

	uplines := e.Graph.Uplines(buyer, referral.MaxCommissionLevel)

	for {
		upline, err := uplines.Next()
		if err != nil {
			return nil, err
		}
		if upline == nil {
			break
		}

		amount, ok := membership.CommissionFor(upline.Level)
		if !ok {
			continue
		}

		description := fmt.Sprintf("Level %d commission from %s's %s purchase", upline.Level, buyer.Username, membership.Name)

		if err := e.Ledger.Credit(upline.User, amount, description); err != nil {
			return nil, err
		}

		commission := &models.Commission{
			UserID:       upline.User.ID,
			BuyerID:      buyer.ID,
			PurchaseID:   purchaseID,
			MembershipID: membership.ID,
			Level:        upline.Level,
			EarnAmount:   amount,
		}

		if err := e.Recorder.Record(commission); err != nil {
			return nil, err
		}

		credited = append(credited, commission)

		message := fmt.Sprintf("You earned %s from %s at level %d", amount.String(), buyer.Username, upline.Level)
		if err := e.Notifier.Notify(upline.User.ID, "Referral commission received", message); err != nil {
			config.Logger.Warnf("Failed to notify user %d about commission: %v", upline.User.ID, err)
		}
	}

	return credited, nil
}
