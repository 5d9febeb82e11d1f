package membership_service

import (
	"errors"
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/commission"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
)

var (
	ErrMembershipNotFound = errors.New("membership.not_found")
	ErrUserNotFound       = errors.New("user.not_found")
)

// Store is the persistence boundary of the purchase workflow. Transaction
// runs fn against a store bound to one database transaction; everything fn
// writes commits or rolls back as a unit.
type Store interface {
	FindUser(id uint64) (*models.User, error)
	FindMembership(id uint64) (*models.Membership, error)
	FindActivePurchase(userID, membershipID uint64) (*models.MembershipPurchase, error)
	Transaction(fn func(tx Store) error) error
	CreatePurchase(purchase *models.MembershipPurchase) error
	Engine() *commission.Engine
	SaveMemberStatus(user *models.User, status string) error
}

type Service struct {
	Store Store

	// AfterCommit runs once per freshly created purchase, outside the
	// transaction. Analytics only; nil is fine.
	AfterCommit func(purchase *models.MembershipPurchase, credited []*models.Commission)
}

func New(store Store) *Service {
	return &Service{Store: store, AfterCommit: publishCommissions}
}

// Purchase creates the membership purchase and distributes upline
// commissions as one atomic unit, then marks the buyer verified with the
// membership's name as member status.
//
// An already-active purchase for the same buyer and membership is returned
// as-is without re-running distribution, which makes retried payment
// webhooks no-ops.
func (s *Service) Purchase(user *models.User, membershipID uint64) (*models.MembershipPurchase, error) {
	membership, err := s.Store.FindMembership(membershipID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrMembershipNotFound
	}

	existing, err := s.Store.FindActivePurchase(user.ID, membership.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var purchase *models.MembershipPurchase
	var credited []*models.Commission
	var engine *commission.Engine

	err = s.Store.Transaction(func(tx Store) error {
		purchase = &models.MembershipPurchase{
			UserID:       user.ID,
			MembershipID: membership.ID,
			IsActive:     true,
			PurchasedAt:  time.Now(),
		}

		if err := tx.CreatePurchase(purchase); err != nil {
			return err
		}

		var err error
		engine = tx.Engine()
		credited, err = engine.Distribute(user, membership, purchase.ID)
		if err != nil {
			return err
		}

		return tx.SaveMemberStatus(user, membership.Name)
	})
	if err != nil {
		return nil, err
	}

	commission.FlushDeferred(engine)

	if s.AfterCommit != nil {
		s.AfterCommit(purchase, credited)
	}

	return purchase, nil
}

// ConfirmPayment is the payment-webhook entry point: the gateway has
// verified a payment for (user, membership), so run the same idempotent
// purchase workflow.
func (s *Service) ConfirmPayment(userID, membershipID uint64) (*models.MembershipPurchase, error) {
	user, err := s.Store.FindUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.Purchase(user, membershipID)
}

func publishCommissions(purchase *models.MembershipPurchase, credited []*models.Commission) {
	for _, commission := range credited {
		commission.WriteToInflux()
	}
}
