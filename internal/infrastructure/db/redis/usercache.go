package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// CachedUserRepository decorates a UserRepository with a Redis read-through
// cache on the by-id lookup, the hot path of the authorizer's owner check.
// Entries are invalidated on update and delete; a cache failure falls back
// to the inner repository and never fails the request.
type CachedUserRepository struct {
	inner  ports.UserRepository
	client *redis.Client
	logger zerolog.Logger
}

func NewCachedUserRepository(inner ports.UserRepository, client *redis.Client, logger zerolog.Logger) *CachedUserRepository {
	return &CachedUserRepository{inner: inner, client: client, logger: logger}
}

func (r *CachedUserRepository) key(id int64) string {
	return fmt.Sprintf("user:id:%d", id)
}

func (r *CachedUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == nil {
		var entry cachedUser
		if err := json.Unmarshal(raw, &entry); err == nil {
			user := entry.User
			user.PasswordHash = entry.PasswordHash
			return &user, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		r.client.Del(ctx, r.key(id))
	} else if err != redis.Nil {
		r.logger.Warn().Err(err).Int64("id", id).Msg("user cache read failed")
	}

	user, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := marshalUser(user); err == nil {
		if err := r.client.Set(ctx, r.key(id), payload, cacheTTL).Err(); err != nil {
			r.logger.Warn().Err(err).Int64("id", id).Msg("user cache write failed")
		}
	}
	return user, nil
}

func (r *CachedUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := r.inner.Update(ctx, user); err != nil {
		return err
	}
	r.invalidate(ctx, user.ID)
	return nil
}

func (r *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedUserRepository) invalidate(ctx context.Context, id int64) {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.logger.Warn().Err(err).Int64("id", id).Msg("user cache invalidation failed")
	}
}

// Pass-through methods; only the by-id lookup is cached.

func (r *CachedUserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	return r.inner.FindByName(ctx, name)
}

func (r *CachedUserRepository) FindAnyByRole(ctx context.Context, role string) (*domain.User, error) {
	return r.inner.FindAnyByRole(ctx, role)
}

func (r *CachedUserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	return r.inner.List(ctx, filter)
}

func (r *CachedUserRepository) Search(ctx context.Context, filter ports.SearchUsersFilter) ([]*domain.User, error) {
	return r.inner.Search(ctx, filter)
}

func (r *CachedUserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.inner.Insert(ctx, user)
}

// cachedUser re-exposes the password hash, which domain.User hides from
// JSON. The cache lives in the same trust zone as the primary store.
type cachedUser struct {
	domain.User
	PasswordHash string `json:"password_hash"`
}

func marshalUser(u *domain.User) ([]byte, error) {
	return json.Marshal(cachedUser{User: *u, PasswordHash: u.PasswordHash})
}
