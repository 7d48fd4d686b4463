package viewsinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/views"
	"github.com/redis/go-redis/v9"
)

// RedisRepository implementación en Redis del views.Repository.
// Cada vista vive en ats:view:<id>; ats:views:<screen> indexa los ids.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ views.Repository = (*RedisRepository)(nil)

// NewRedisRepository crea un nuevo repositorio de vistas con Redis
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{
		client: client,
		ttl:    ttl,
	}
}

func viewKey(id string) string {
	return fmt.Sprintf("ats:view:%s", id)
}

func screenKey(screen string) string {
	return fmt.Sprintf("ats:views:%s", screen)
}

// Save almacena la vista y la agrega al índice de su pantalla
func (r *RedisRepository) Save(ctx context.Context, v views.View) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errx.Wrap(err, "failed to marshal view", errx.TypeInternal).WithDetail("id", v.ID)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, viewKey(v.ID), data, r.ttl)
		pipe.SAdd(ctx, screenKey(v.Screen), v.ID)
		return nil
	})
	if err != nil {
		return views.ErrRegistry.NewWithCause(views.CodeStoreFailed, err).WithDetail("id", v.ID)
	}
	return nil
}

// Get obtiene una vista por id
func (r *RedisRepository) Get(ctx context.Context, id string) (views.View, error) {
	data, err := r.client.Get(ctx, viewKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return views.View{}, views.ErrNotFound(id)
		}
		return views.View{}, views.ErrRegistry.NewWithCause(views.CodeStoreFailed, err).WithDetail("id", id)
	}

	var v views.View
	if err := json.Unmarshal(data, &v); err != nil {
		return views.View{}, errx.Wrap(err, "failed to unmarshal view", errx.TypeInternal).WithDetail("id", id)
	}
	return v, nil
}

// List devuelve las vistas vigentes de una pantalla; los ids expirados se limpian del índice
func (r *RedisRepository) List(ctx context.Context, screen string) ([]views.View, error) {
	ids, err := r.client.SMembers(ctx, screenKey(screen)).Result()
	if err != nil {
		return nil, views.ErrRegistry.NewWithCause(views.CodeStoreFailed, err).WithDetail("screen", screen)
	}

	out := make([]views.View, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = viewKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, views.ErrRegistry.NewWithCause(views.CodeStoreFailed, err).WithDetail("screen", screen)
	}

	var stale []any
	for i, raw := range values {
		s, ok := raw.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var v views.View
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			stale = append(stale, ids[i])
			continue
		}
		out = append(out, v)
	}

	if len(stale) > 0 {
		r.client.SRem(ctx, screenKey(screen), stale...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Delete elimina la vista y su entrada en el índice
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	v, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, viewKey(id))
		pipe.SRem(ctx, screenKey(v.Screen), id)
		return nil
	})
	if err != nil {
		return views.ErrRegistry.NewWithCause(views.CodeStoreFailed, err).WithDetail("id", id)
	}
	return nil
}
