package commission

import (
	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/referral"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLedger credits wallets under a FOR UPDATE row lock inside the bound
// transaction. Credits to different wallets take different row locks and do
// not block each other.
type GormLedger struct {
	Tx *gorm.DB
}

func (l *GormLedger) Credit(user *models.User, amount decimal.Decimal, description string) error {
	wallet, err := models.GetWalletWithLock(l.Tx, user.ID)
	if err != nil {
		return err
	}

	return wallet.Credit(l.Tx, amount, description)
}

type GormRecorder struct {
	Tx *gorm.DB
}

func (r *GormRecorder) Record(commission *models.Commission) error {
	return r.Tx.Create(commission).Error
}

// DeferredNotifier buffers notifications during distribution and writes
// nothing until Flush. A notification is a side channel: it must not be able
// to poison the financial unit of work, and a rolled-back distribution must
// not leave "You earned" rows behind, so Flush runs only after commit.
type DeferredNotifier struct {
	pending []*models.Notification
}

func (n *DeferredNotifier) Notify(userID uint64, title, message string) error {
	n.pending = append(n.pending, &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	})

	return nil
}

// Flush persists the buffered notifications. Failures cost notifications,
// never the committed distribution.
func (n *DeferredNotifier) Flush() {
	for _, notification := range n.pending {
		if err := config.DataBase.Create(notification).Error; err != nil {
			config.Logger.Warnf("Failed to write notification for user %d: %v", notification.UserID, err)
			continue
		}

		notification.TriggerEvent()
	}

	n.pending = nil
}

// FlushDeferred releases an engine's buffered notifications, if it carries
// any. Call after the surrounding transaction has committed.
func FlushDeferred(engine *Engine) {
	if notifier, ok := engine.Notifier.(*DeferredNotifier); ok {
		notifier.Flush()
	}
}

// NewForTransaction wires an engine whose writes all land in tx.
func NewForTransaction(tx *gorm.DB) *Engine {
	return &Engine{
		Graph:    referral.NewGraph(referral.NewGormSource(tx)),
		Ledger:   &GormLedger{Tx: tx},
		Recorder: &GormRecorder{Tx: tx},
		Notifier: &DeferredNotifier{},
	}
}
