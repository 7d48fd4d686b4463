package viewsinfra

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/views"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newClient connects to REDIS_TEST_ADDR; the test is skipped without it
func newClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisRepository_RoundTrip(t *testing.T) {
	client := newClient(t)
	repo := NewRedisRepository(client, time.Minute)
	ctx := context.Background()
	screen := "resumes-" + uuid.NewString()

	v := views.View{
		ID:        uuid.NewString(),
		Screen:    screen,
		Name:      "Hired",
		Criteria:  filter.NewBuilder().SetMembership("status", "HIRED").Specs(),
		CreatedBy: "Current User",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Save(ctx, v))

	got, err := repo.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	list, err := repo.List(ctx, screen)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, v.ID))
	_, err = repo.Get(ctx, v.ID)
	assert.True(t, errx.HasCode(err, views.CodeNotFound))
}

func TestRedisRepository_ListDropsExpired(t *testing.T) {
	client := newClient(t)
	repo := NewRedisRepository(client, time.Minute)
	ctx := context.Background()
	screen := "jobs-" + uuid.NewString()

	v := views.View{ID: uuid.NewString(), Screen: screen, Name: "Gone"}
	require.NoError(t, repo.Save(ctx, v))
	require.NoError(t, client.Del(ctx, viewKey(v.ID)).Err())

	list, err := repo.List(ctx, screen)
	require.NoError(t, err)
	assert.Empty(t, list)

	members, err := client.SMembers(ctx, screenKey(screen)).Result()
	require.NoError(t, err)
	assert.Empty(t, members)
}
