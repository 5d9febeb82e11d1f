package referral

import (
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// MaxCommissionLevel bounds commission-bearing upline traversal.
const MaxCommissionLevel = 10

// Source resolves referral edges. Referrer returns (nil, nil) for a root
// user; Children returns the direct downlines in creation order.
type Source interface {
	Referrer(user *models.User) (*models.User, error)
	Children(userID uint64) ([]*models.User, error)
}

type Upline struct {
	User  *models.User
	Level int
}

type Downline struct {
	User  *models.User
	Level int
}

type Graph struct {
	Source Source
}

func NewGraph(source Source) *Graph {
	return &Graph{Source: source}
}

// Uplines returns a lazy traversal of the user's ancestor chain, level 1
// first. The walk stops at maxLevel no matter what the stored graph looks
// like, so even a corrupted cyclic chain cannot loop forever.
func (g *Graph) Uplines(user *models.User, maxLevel int) *UplineIterator {
	return &UplineIterator{
		source:   g.Source,
		current:  user,
		level:    0,
		maxLevel: maxLevel,
	}
}

type UplineIterator struct {
	source   Source
	current  *models.User
	level    int
	maxLevel int
}

// Next yields the next (ancestor, level) pair, or (nil, nil) when the chain
// is exhausted.
func (it *UplineIterator) Next() (*Upline, error) {
	if it.current == nil || it.level >= it.maxLevel {
		return nil, nil
	}

	parent, err := it.source.Referrer(it.current)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		it.current = nil
		return nil, nil
	}

	it.level++
	it.current = parent

	return &Upline{User: parent, Level: it.level}, nil
}

// All drains the iterator.
func (it *UplineIterator) All() ([]*Upline, error) {
	var uplines []*Upline

	for {
		upline, err := it.Next()
		if err != nil {
			return nil, err
		}
		if upline == nil {
			return uplines, nil
		}

		uplines = append(uplines, upline)
	}
}

// Downlines walks the inverse edge breadth-first down to maxDepth. Cycles
// are structurally impossible (edges point at earlier-created users), so the
// depth bound is the only termination concern.
func (g *Graph) Downlines(user *models.User, maxDepth int) ([]*Downline, error) {
	var downlines []*Downline

	queue := linkedlistqueue.New()
	queue.Enqueue(&Downline{User: user, Level: 0})

	for !queue.Empty() {
		value, _ := queue.Dequeue()
		node := value.(*Downline)

		if node.Level >= maxDepth {
			continue
		}

		children, err := g.Source.Children(node.User.ID)
		if err != nil {
			return nil, err
		}

		for _, child := range children {
			entry := &Downline{User: child, Level: node.Level + 1}
			downlines = append(downlines, entry)
			queue.Enqueue(entry)
		}
	}

	return downlines, nil
}
