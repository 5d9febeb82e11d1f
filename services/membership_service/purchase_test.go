package membership_service

import (
	"errors"
	"testing"

	"github.com/bayezid0075/Dreamy-Life-v2.0/commission"
	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/referral"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// memoryStore keeps the whole purchase workflow in memory: users,
// memberships, purchases, wallet balances and commission rows. Transaction
// snapshots mutable state and restores it when fn returns an error, which is
// what the database transaction does in production.
type memoryStore struct {
	users       map[uint64]*models.User
	parents     map[uint64]uint64
	memberships map[uint64]*models.Membership
	purchases   []*models.MembershipPurchase
	balances    map[uint64]decimal.Decimal
	entries     int
	commissions []*models.Commission
	nextID      uint64

	failCreditFor uint64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       make(map[uint64]*models.User),
		parents:     make(map[uint64]uint64),
		memberships: make(map[uint64]*models.Membership),
		balances:    make(map[uint64]decimal.Decimal),
		nextID:      1,
	}
}

func (s *memoryStore) FindUser(id uint64) (*models.User, error) {
	return s.users[id], nil
}

func (s *memoryStore) FindMembership(id uint64) (*models.Membership, error) {
	return s.memberships[id], nil
}

func (s *memoryStore) FindActivePurchase(userID, membershipID uint64) (*models.MembershipPurchase, error) {
	for _, purchase := range s.purchases {
		if purchase.UserID == userID && purchase.MembershipID == membershipID && purchase.IsActive {
			return purchase, nil
		}
	}

	return nil, nil
}

func (s *memoryStore) Transaction(fn func(tx Store) error) error {
	purchases := make([]*models.MembershipPurchase, len(s.purchases))
	copy(purchases, s.purchases)

	balances := make(map[uint64]decimal.Decimal, len(s.balances))
	for id, balance := range s.balances {
		balances[id] = balance
	}

	commissions := make([]*models.Commission, len(s.commissions))
	copy(commissions, s.commissions)

	type userState struct {
		status   string
		verified bool
	}

	states := make(map[uint64]userState, len(s.users))
	for id, user := range s.users {
		states[id] = userState{status: user.MemberStatus, verified: user.IsVerified}
	}

	entries := s.entries
	nextID := s.nextID

	if err := fn(s); err != nil {
		s.purchases = purchases
		s.balances = balances
		s.commissions = commissions
		s.entries = entries
		s.nextID = nextID
		for id, state := range states {
			s.users[id].MemberStatus = state.status
			s.users[id].IsVerified = state.verified
		}

		return err
	}

	return nil
}

func (s *memoryStore) CreatePurchase(purchase *models.MembershipPurchase) error {
	purchase.ID = s.nextID
	s.nextID++
	s.purchases = append(s.purchases, purchase)

	return nil
}

func (s *memoryStore) Engine() *commission.Engine {
	return &commission.Engine{
		Graph:    referral.NewGraph(s),
		Ledger:   s,
		Recorder: s,
		Notifier: s,
	}
}

func (s *memoryStore) SaveMemberStatus(user *models.User, status string) error {
	user.MemberStatus = status
	user.IsVerified = true

	return nil
}

func (s *memoryStore) Referrer(user *models.User) (*models.User, error) {
	parentID, ok := s.parents[user.ID]
	if !ok {
		return nil, nil
	}

	return s.users[parentID], nil
}

func (s *memoryStore) Children(userID uint64) ([]*models.User, error) {
	return nil, nil
}

func (s *memoryStore) Credit(user *models.User, amount decimal.Decimal, description string) error {
	if s.failCreditFor != 0 && user.ID == s.failCreditFor {
		return errors.New("credit failed")
	}

	s.balances[user.ID] = s.Balance(user.ID).Add(amount)
	s.entries++

	return nil
}

func (s *memoryStore) Record(commission *models.Commission) error {
	s.commissions = append(s.commissions, commission)

	return nil
}

func (s *memoryStore) Notify(userID uint64, title, message string) error {
	return nil
}

func (s *memoryStore) Balance(userID uint64) decimal.Decimal {
	balance, ok := s.balances[userID]
	if !ok {
		return decimal.Zero
	}

	return balance
}

func (s *memoryStore) AddUser(id uint64, username string, parentID uint64) *models.User {
	user := &models.User{ID: id, Username: username, MemberStatus: "user"}
	s.users[id] = user
	if parentID != 0 {
		s.parents[id] = parentID
	}

	return user
}

func (s *memoryStore) AddMembership(id uint64, name string, rules map[int]string) *models.Membership {
	membership := &models.Membership{ID: id, Name: name, Price: decimal.NewFromInt(1000)}

	for level := 1; level <= referral.MaxCommissionLevel; level++ {
		amount, ok := rules[level]
		if !ok {
			continue
		}

		membership.Rules = append(membership.Rules, models.CommissionRule{
			MembershipID: id,
			Level:        level,
			Commission:   decimal.RequireFromString(amount),
		})
	}

	s.memberships[id] = membership

	return membership
}

type PurchaseSuite struct {
	suite.Suite
	store        *memoryStore
	service      *Service
	afterCommits int
	lastCredited []*models.Commission
	buyer        *models.User
}

func (s *PurchaseSuite) SetupTest() {
	config.NewLoggerService()

	s.store = newMemoryStore()
	s.afterCommits = 0
	s.lastCredited = nil

	s.service = &Service{
		Store: s.store,
		AfterCommit: func(purchase *models.MembershipPurchase, credited []*models.Commission) {
			s.afterCommits++
			s.lastCredited = credited
		},
	}

	// alice(1) <- bob(2) <- carol(3); carol buys.
	s.store.AddUser(1, "alice", 0)
	s.store.AddUser(2, "bob", 1)
	s.buyer = s.store.AddUser(3, "carol", 2)

	s.store.AddMembership(10, "Smart", map[int]string{1: "100", 2: "50"})
}

func (s *PurchaseSuite) TestPurchaseDistributesAndSavesStatus() {
	purchase, err := s.service.Purchase(s.buyer, 10)
	s.Require().NoError(err)
	s.Require().NotNil(purchase)

	s.Assert().True(purchase.IsActive)
	s.Assert().Equal(s.buyer.ID, purchase.UserID)
	s.Assert().Equal("100", s.store.Balance(2).String())
	s.Assert().Equal("50", s.store.Balance(1).String())
	s.Assert().Equal("Smart", s.buyer.MemberStatus)
	s.Assert().True(s.buyer.IsVerified)

	s.Assert().Equal(1, s.afterCommits)
	s.Assert().Len(s.lastCredited, 2)
}

func (s *PurchaseSuite) TestPurchaseUnknownMembership() {
	purchase, err := s.service.Purchase(s.buyer, 99)
	s.Require().ErrorIs(err, ErrMembershipNotFound)
	s.Assert().Nil(purchase)
}

func (s *PurchaseSuite) TestRepeatPurchaseIsNoOp() {
	first, err := s.service.Purchase(s.buyer, 10)
	s.Require().NoError(err)

	second, err := s.service.Purchase(s.buyer, 10)
	s.Require().NoError(err)

	s.Assert().Equal(first.ID, second.ID)
	s.Assert().Len(s.store.purchases, 1)

	// No second round of credits.
	s.Assert().Equal("100", s.store.Balance(2).String())
	s.Assert().Equal("50", s.store.Balance(1).String())
	s.Assert().Equal(2, s.store.entries)
	s.Assert().Equal(1, s.afterCommits)
}

func (s *PurchaseSuite) TestFailedDistributionRollsBack() {
	// Level 1 credits fine, level 2 fails; nothing may survive.
	s.store.failCreditFor = 1

	purchase, err := s.service.Purchase(s.buyer, 10)
	s.Require().Error(err)
	s.Assert().Nil(purchase)

	s.Assert().Empty(s.store.purchases)
	s.Assert().Equal("0", s.store.Balance(2).String())
	s.Assert().Equal("0", s.store.Balance(1).String())
	s.Assert().Empty(s.store.commissions)
	s.Assert().Equal("user", s.buyer.MemberStatus)
	s.Assert().False(s.buyer.IsVerified)
	s.Assert().Equal(0, s.afterCommits)
}

func (s *PurchaseSuite) TestConfirmPayment() {
	purchase, err := s.service.ConfirmPayment(3, 10)
	s.Require().NoError(err)
	s.Require().NotNil(purchase)
	s.Assert().Equal("100", s.store.Balance(2).String())
}

func (s *PurchaseSuite) TestConfirmPaymentUnknownUser() {
	purchase, err := s.service.ConfirmPayment(42, 10)
	s.Require().ErrorIs(err, ErrUserNotFound)
	s.Assert().Nil(purchase)
}

func TestPurchaseSuite(t *testing.T) {
	suite.Run(t, new(PurchaseSuite))
}
