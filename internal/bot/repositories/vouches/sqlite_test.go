package vouches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandx/vouchbot/internal/common"
	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteRepository(db)
	require.NoError(t, r.Init(context.Background()))
	return r
}

func TestInit_Idempotent(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, "t1", "a1", "BGMI-UC", "fast delivery")
	require.NoError(t, err)

	// a second Init must not touch existing data
	require.NoError(t, r.Init(ctx))

	got, err := r.ListByTarget(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestCreate_AssignsIncreasingIDsAndPreservesFields(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	id1, err := r.Create(ctx, "target", "author", "pc-cl3an3r", "works great")
	require.NoError(t, err)
	id2, err := r.Create(ctx, "target", "author", "BGMI-UC", "legit 👍 \"quoted\"")
	require.NoError(t, err)
	require.Greater(t, id2, id1)

	got, err := r.ListByTarget(ctx, "target")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, id1, got[0].ID)
	assert.Equal(t, "target", got[0].TargetUserID)
	assert.Equal(t, "author", got[0].AuthorUserID)
	assert.Equal(t, "pc-cl3an3r", got[0].Product)
	assert.Equal(t, "works great", got[0].Feedback)
	assert.False(t, got[0].CreatedAt.IsZero())

	// feedback text preserved byte-for-byte
	assert.Equal(t, "legit 👍 \"quoted\"", got[1].Feedback)
}

func TestCreate_ProductNotValidatedAgainstCatalog(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	// the store deliberately accepts unknown products
	_, err := r.Create(ctx, "t", "a", "not-a-catalog-entry", "fb")
	require.NoError(t, err)

	got, err := r.ListByTarget(ctx, "t")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "not-a-catalog-entry", got[0].Product)
}

func TestListByTarget_InsertionOrderAndIsolation(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, "u1", "a1", "p", fmt.Sprintf("fb-%d", i))
		require.NoError(t, err)
	}
	_, err := r.Create(ctx, "u2", "a1", "p", "other target")
	require.NoError(t, err)

	got, err := r.ListByTarget(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, v := range got {
		assert.Equal(t, fmt.Sprintf("fb-%d", i), v.Feedback)
		assert.Equal(t, "u1", v.TargetUserID)
	}
}

func TestListByTarget_EmptyForUnknownTarget(t *testing.T) {
	r := setupRepo(t)

	got, err := r.ListByTarget(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteAllByTarget_RemovesAllAndNoOpSucceeds(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := r.Create(ctx, "gone", "a", "p", "fb")
		require.NoError(t, err)
	}
	_, err := r.Create(ctx, "stays", "a", "p", "fb")
	require.NoError(t, err)

	n, err := r.DeleteAllByTarget(ctx, "gone")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	got, err := r.ListByTarget(ctx, "gone")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.ListByTarget(ctx, "stays")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// deleting a target with no records is a no-op, not an error
	n, err = r.DeleteAllByTarget(ctx, "never-existed")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestDeleteAllByTarget_DoesNotReuseIDs(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	id1, err := r.Create(ctx, "u", "a", "p", "fb")
	require.NoError(t, err)

	_, err = r.DeleteAllByTarget(ctx, "u")
	require.NoError(t, err)

	id2, err := r.Create(ctx, "u", "a", "p", "fb")
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
}

func TestTopN_CountsOrderAndLimit(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	// 7 distinct targets: u1 gets 3, u2 gets 2, the rest 1 each
	counts := map[string]int{"u1": 3, "u2": 2, "u3": 1, "u4": 1, "u5": 1, "u6": 1, "u7": 1}
	for target, n := range counts {
		for i := 0; i < n; i++ {
			_, err := r.Create(ctx, target, "author", "p", "fb")
			require.NoError(t, err)
		}
	}

	top, err := r.TopN(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 5)

	assert.Equal(t, "u1", top[0].TargetUserID)
	assert.EqualValues(t, 3, top[0].Count)
	assert.Equal(t, "u2", top[1].TargetUserID)
	assert.EqualValues(t, 2, top[1].Count)

	// ties on count=1 resolve by lowest target id
	assert.Equal(t, "u3", top[2].TargetUserID)
	assert.Equal(t, "u4", top[3].TargetUserID)
	assert.Equal(t, "u5", top[4].TargetUserID)
}

func TestTopN_ProductsGroupedPerTarget(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	for _, product := range []string{"A", "A", "B"} {
		_, err := r.Create(ctx, "U1", "author", product, "fb")
		require.NoError(t, err)
	}

	got, err := r.ListByTarget(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	top, err := r.TopN(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "U1", top[0].TargetUserID)
	assert.EqualValues(t, 3, top[0].Count)
}

func TestTopN_EmptyStore(t *testing.T) {
	r := setupRepo(t)

	top, err := r.TopN(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestStoreErrors_TaggedForClassification(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	r := NewSQLiteRepository(db)
	_, err = r.Create(context.Background(), "t", "a", "p", "fb")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStore))
}
