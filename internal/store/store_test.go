package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/store"
)

var seedTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func TestNextIDIsMonotonic(t *testing.T) {
	s := store.New[domain.User]()

	first := s.NextID()
	second := s.NextID()
	third := s.NextID()

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 3, third)
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	s := store.New[domain.User]()
	s.Append(&domain.User{ID: s.NextID(), Username: "first"})
	s.Append(&domain.User{ID: s.NextID(), Username: "second"})
	s.Append(&domain.User{ID: s.NextID(), Username: "third"})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Username)
	assert.Equal(t, "second", list[1].Username)
	assert.Equal(t, "third", list[2].Username)
}

func TestAppendWithExplicitIDBumpsCounter(t *testing.T) {
	s := store.New[domain.User]()
	s.Append(&domain.User{ID: 10, Username: "seeded"})

	// Seeded max id + 1, as the bootstrap contract requires.
	assert.Equal(t, 11, s.NextID())
}

func TestAppendStampsCreatedAt(t *testing.T) {
	s := store.New[domain.User]()

	fresh := domain.User{ID: s.NextID(), Username: "fresh"}
	s.Append(&fresh)
	assert.False(t, fresh.CreatedAt.IsZero())

	seeded := domain.User{ID: s.NextID(), Username: "seeded", CreatedAt: seedTime}
	s.Append(&seeded)
	assert.Equal(t, seedTime, seeded.CreatedAt, "an existing stamp is kept")
}

func TestIDsAreNeverReusedAfterRemove(t *testing.T) {
	s := store.New[domain.User]()
	s.Append(&domain.User{ID: s.NextID()})
	s.Append(&domain.User{ID: s.NextID()})

	i := s.IndexOf(2)
	require.GreaterOrEqual(t, i, 0)
	removed := s.RemoveAt(i)
	assert.Equal(t, 2, removed.ID)

	assert.Equal(t, 3, s.NextID())
	assert.Equal(t, -1, s.IndexOf(2))
}

func TestRemoveAtPreservesOrderOfRest(t *testing.T) {
	s := store.New[domain.User]()
	for _, name := range []string{"a", "b", "c", "d"} {
		s.Append(&domain.User{ID: s.NextID(), Username: name})
	}

	s.RemoveAt(1)

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Username)
	assert.Equal(t, "c", list[1].Username)
	assert.Equal(t, "d", list[2].Username)
}

func TestReplaceAt(t *testing.T) {
	s := store.New[domain.User]()
	s.Append(&domain.User{ID: s.NextID(), Username: "old"})

	record := s.At(0)
	record.Username = "new"
	s.ReplaceAt(0, record)

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "new", got.Username)
}

func TestListReturnsACopy(t *testing.T) {
	s := store.New[domain.User]()
	s.Append(&domain.User{ID: s.NextID(), Username: "kept"})

	list := s.List()
	list[0].Username = "mutated"

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "kept", got.Username)
}

func TestClearKeepsCounterPosition(t *testing.T) {
	s := store.New[domain.User]()
	s.Append(&domain.User{ID: s.NextID()})
	s.Append(&domain.User{ID: s.NextID()})

	count := s.Clear()
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 3, s.NextID())
}
