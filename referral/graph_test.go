package referral

import (
	"testing"

	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySource struct {
	parents       map[uint64]uint64
	users         map[uint64]*models.User
	referrerCalls int
}

func newMemorySource() *memorySource {
	return &memorySource{
		parents: make(map[uint64]uint64),
		users:   make(map[uint64]*models.User),
	}
}

func (s *memorySource) AddUser(id uint64, username string) *models.User {
	user := &models.User{ID: id, Username: username}
	s.users[id] = user

	return user
}

func (s *memorySource) SetParent(child, parent uint64) {
	s.parents[child] = parent
}

func (s *memorySource) Referrer(user *models.User) (*models.User, error) {
	s.referrerCalls++

	parentID, ok := s.parents[user.ID]
	if !ok {
		return nil, nil
	}

	return s.users[parentID], nil
}

func (s *memorySource) Children(userID uint64) ([]*models.User, error) {
	var children []*models.User

	for id := uint64(1); id <= uint64(len(s.users)+1); id++ {
		if parentID, ok := s.parents[id]; ok && parentID == userID {
			children = append(children, s.users[id])
		}
	}

	return children, nil
}

// chain builds 1 <- 2 <- 3 <- ... <- n (1 is the root).
func chainSource(n uint64) *memorySource {
	source := newMemorySource()
	for id := uint64(1); id <= n; id++ {
		source.AddUser(id, "user")
		if id > 1 {
			source.SetParent(id, id-1)
		}
	}

	return source
}

func TestUplinesOrder(t *testing.T) {
	source := chainSource(4)
	graph := NewGraph(source)

	uplines, err := graph.Uplines(source.users[4], MaxCommissionLevel).All()
	require.NoError(t, err)
	require.Len(t, uplines, 3)

	assert.Equal(t, uint64(3), uplines[0].User.ID)
	assert.Equal(t, 1, uplines[0].Level)
	assert.Equal(t, uint64(2), uplines[1].User.ID)
	assert.Equal(t, 2, uplines[1].Level)
	assert.Equal(t, uint64(1), uplines[2].User.ID)
	assert.Equal(t, 3, uplines[2].Level)
}

func TestUplinesRootUser(t *testing.T) {
	source := chainSource(1)
	graph := NewGraph(source)

	uplines, err := graph.Uplines(source.users[1], MaxCommissionLevel).All()
	require.NoError(t, err)
	assert.Empty(t, uplines)
}

func TestUplinesLevelBound(t *testing.T) {
	source := chainSource(15)
	graph := NewGraph(source)

	uplines, err := graph.Uplines(source.users[15], MaxCommissionLevel).All()
	require.NoError(t, err)
	require.Len(t, uplines, 10)
	assert.Equal(t, 10, uplines[9].Level)
	assert.Equal(t, uint64(5), uplines[9].User.ID)
}

func TestUplinesTerminatesOnCycle(t *testing.T) {
	// A corrupted graph: 1 <-> 2. The walk must still stop at the level
	// bound instead of looping.
	source := newMemorySource()
	source.AddUser(1, "a")
	source.AddUser(2, "b")
	source.SetParent(1, 2)
	source.SetParent(2, 1)

	graph := NewGraph(source)

	uplines, err := graph.Uplines(source.users[1], MaxCommissionLevel).All()
	require.NoError(t, err)
	assert.Len(t, uplines, MaxCommissionLevel)
}

func TestUplinesLazy(t *testing.T) {
	source := chainSource(8)
	graph := NewGraph(source)

	it := graph.Uplines(source.users[8], MaxCommissionLevel)

	upline, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, upline)

	// Only the consumed step touched the source.
	assert.Equal(t, 1, source.referrerCalls)
}

func TestDownlinesBreadthFirst(t *testing.T) {
	// 1 has children 2 and 3; 2 has child 4.
	source := newMemorySource()
	for id := uint64(1); id <= 4; id++ {
		source.AddUser(id, "user")
	}
	source.SetParent(2, 1)
	source.SetParent(3, 1)
	source.SetParent(4, 2)

	graph := NewGraph(source)

	downlines, err := graph.Downlines(source.users[1], MaxCommissionLevel)
	require.NoError(t, err)
	require.Len(t, downlines, 3)

	assert.Equal(t, uint64(2), downlines[0].User.ID)
	assert.Equal(t, 1, downlines[0].Level)
	assert.Equal(t, uint64(3), downlines[1].User.ID)
	assert.Equal(t, 1, downlines[1].Level)
	assert.Equal(t, uint64(4), downlines[2].User.ID)
	assert.Equal(t, 2, downlines[2].Level)
}

func TestDownlinesDepthBound(t *testing.T) {
	source := chainSource(5)
	graph := NewGraph(source)

	downlines, err := graph.Downlines(source.users[1], 2)
	require.NoError(t, err)
	require.Len(t, downlines, 2)
	assert.Equal(t, 2, downlines[1].Level)
}

func TestDownlinesNoChildren(t *testing.T) {
	source := chainSource(3)
	graph := NewGraph(source)

	downlines, err := graph.Downlines(source.users[3], MaxCommissionLevel)
	require.NoError(t, err)
	assert.Empty(t, downlines)
}
