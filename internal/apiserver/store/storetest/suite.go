// Package storetest 用户存储的行为契约测试，每个 store 实现都应通过。
package storetest

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
)

// NewFactoryFunc 为每个子测试返回一个全新的空存储。
type NewFactoryFunc func(t *testing.T) store.Factory

const (
	missingID uint64 = 9999
	hugeID    uint64 = math.MaxUint64
)

// RunUserStoreSuite 在 newFactory 创建的存储上运行全部契约用例。
func RunUserStoreSuite(t *testing.T, newFactory NewFactoryFunc) {
	cases := []struct {
		name string
		fn   func(t *testing.T, s store.UserStore)
	}{
		{"CreateThenGet", testCreateThenGet},
		{"ListInCreationOrder", testListInCreationOrder},
		{"ListEmpty", testListEmpty},
		{"GetMissing", testGetMissing},
		{"Update", testUpdate},
		{"UpdateMissing", testUpdateMissing},
		{"UpdateDeleted", testUpdateDeleted},
		{"DeleteOnce", testDeleteOnce},
		{"DeleteMissing", testDeleteMissing},
		{"IDsNeverReused", testIDsNeverReused},
		{"ReturnedCopies", testReturnedCopies},
		{"HugeIDAbsent", testHugeIDAbsent},
		{"LongName", testLongName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			factory := newFactory(t)
			t.Cleanup(func() { _ = factory.Close() })

			tc.fn(t, factory.Users())
		})
	}
}

func testCreateThenGet(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	created, err := s.Create(ctx, "Test User")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Test User", created.Name)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func testListInCreationOrder(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	names := []string{"Alice", "Bob", "Charlie"}
	for _, name := range names {
		_, err := s.Create(ctx, name)
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, user := range list {
		assert.Equal(t, names[i], user.Name)
		if i > 0 {
			assert.Greater(t, user.ID, list[i-1].ID)
		}
	}
}

func testListEmpty(t *testing.T, s store.UserStore) {
	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func testGetMissing(t *testing.T, s store.UserStore) {
	got, err := s.Get(context.Background(), missingID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testUpdate(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	created, err := s.Create(ctx, "Old Name")
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, "New Name")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Name", updated.Name)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func testUpdateMissing(t *testing.T, s store.UserStore) {
	updated, err := s.Update(context.Background(), missingID, "New Name")
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func testUpdateDeleted(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	created, err := s.Create(ctx, "Short Lived")
	require.NoError(t, err)
	ok, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := s.Update(ctx, created.ID, "Ghost")
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func testDeleteOnce(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	created, err := s.Create(ctx, "To Be Deleted")
	require.NoError(t, err)

	ok, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testDeleteMissing(t *testing.T, s store.UserStore) {
	ok, err := s.Delete(context.Background(), missingID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testIDsNeverReused(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	first, err := s.Create(ctx, "first")
	require.NoError(t, err)
	second, err := s.Create(ctx, "second")
	require.NoError(t, err)

	_, err = s.Delete(ctx, second.ID)
	require.NoError(t, err)

	third, err := s.Create(ctx, "third")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
	assert.Greater(t, third.ID, second.ID)
}

func testReturnedCopies(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	created, err := s.Create(ctx, "Original")
	require.NoError(t, err)
	created.Name = "mutated by caller"

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name)
}

func testHugeIDAbsent(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	_, err := s.Create(ctx, "Alice")
	require.NoError(t, err)

	got, err := s.Get(ctx, hugeID)
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := s.Update(ctx, hugeID, "Bob")
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := s.Delete(ctx, hugeID)
	require.NoError(t, err)
	assert.False(t, deleted)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Name)
}

func testLongName(t *testing.T, s store.UserStore) {
	ctx := context.Background()
	long := strings.Repeat("名字-name-", 1024)

	created, err := s.Create(ctx, long)
	require.NoError(t, err)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, long, got.Name)

	longer := long + long
	updated, err := s.Update(ctx, created.ID, longer)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, longer, updated.Name)

	got, err = s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, longer, got.Name)
}
