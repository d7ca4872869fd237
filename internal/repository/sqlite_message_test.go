package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepo_AppendAndList(t *testing.T) {
	repo := NewSQLiteMessageRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	at := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, testutil.NewTestMessage(domain.RoleAssistant, "welcome", at)))
	require.NoError(t, repo.Append(ctx, testutil.NewTestMessage(domain.RoleUser, "hi", at.Add(time.Minute))))

	msgs, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleAssistant, msgs[0].Role)
	assert.Equal(t, "hi", msgs[1].Content)
	assert.True(t, at.Add(time.Minute).Equal(msgs[1].CreatedAt))
}

func TestMessageRepo_ListRecentKeepsNewestInOrder(t *testing.T) {
	repo := NewSQLiteMessageRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	// Same timestamp: insertion order decides.
	at := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	for _, c := range []string{"one", "two", "three", "four"} {
		require.NoError(t, repo.Append(ctx, testutil.NewTestMessage(domain.RoleUser, c, at)))
	}

	msgs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "three", msgs[0].Content)
	assert.Equal(t, "four", msgs[1].Content)
}

func TestMessageRepo_DeleteAll(t *testing.T) {
	repo := NewSQLiteMessageRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestMessage(domain.RoleUser, "x", time.Now())))
	require.NoError(t, repo.DeleteAll(ctx))

	msgs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
