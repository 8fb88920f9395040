// Package persistence stores the client's typed records (active session,
// post collection, client id) as JSON values in a kv.Repository.
//
// Records that fail to decode are logged and treated as absent so that a
// damaged store never prevents the client from starting.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/foorum/internal/client/metrics"
	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/client/repositories/kv"
	"github.com/dmitrijs2005/foorum/internal/common"
	"github.com/dmitrijs2005/foorum/internal/logging"
)

type Adapter struct {
	repo    kv.Repository
	log     logging.Logger
	metrics *metrics.Metrics
}

// New builds an Adapter. log may be nil (logging.Nop is used); m may be nil.
func New(repo kv.Repository, log logging.Logger, m *metrics.Metrics) *Adapter {
	if log == nil {
		log = logging.Nop()
	}
	return &Adapter{repo: repo, log: log, metrics: m}
}

func (a *Adapter) SaveSession(ctx context.Context, user models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := a.repo.Set(ctx, common.SessionKey, b); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// GetSession returns the persisted session user, or nil when there is none
// or the stored value is not a user record (bad JSON, null, no id).
func (a *Adapter) GetSession(ctx context.Context) (*models.User, error) {
	b, err := a.repo.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if b == nil {
		return nil, nil
	}

	var u *models.User
	if err := json.Unmarshal(b, &u); err != nil {
		a.corrupt(ctx, common.SessionKey, err)
		return nil, nil
	}
	if u == nil || u.ID == "" {
		a.corrupt(ctx, common.SessionKey, errors.New("session record has no user id"))
		return nil, nil
	}
	return u, nil
}

func (a *Adapter) RemoveSession(ctx context.Context) error {
	if err := a.repo.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// HasPosts reports whether a post collection has ever been written,
// including an empty one.
func (a *Adapter) HasPosts(ctx context.Context) (bool, error) {
	b, err := a.repo.Get(ctx, common.PostsKey)
	if err != nil {
		return false, fmt.Errorf("load posts: %w", err)
	}
	return b != nil, nil
}

// GetPosts returns the stored posts in stored order. The result is never nil.
func (a *Adapter) GetPosts(ctx context.Context) ([]models.Post, error) {
	b, err := a.repo.Get(ctx, common.PostsKey)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	return a.decodePosts(ctx, b), nil
}

// SavePosts overwrites the whole collection.
func (a *Adapter) SavePosts(ctx context.Context, posts []models.Post) error {
	b, err := encodePosts(posts)
	if err != nil {
		return err
	}
	if err := a.repo.Set(ctx, common.PostsKey, b); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}
	return nil
}

// AppendPost places post at the front of the stored collection.
func (a *Adapter) AppendPost(ctx context.Context, post models.Post) error {
	err := a.repo.Update(ctx, common.PostsKey, func(old []byte) ([]byte, error) {
		posts := a.decodePosts(ctx, old)
		next := make([]models.Post, 0, len(posts)+1)
		next = append(next, post)
		next = append(next, posts...)
		return encodePosts(next)
	})
	if err != nil {
		return fmt.Errorf("append post: %w", err)
	}
	return nil
}

// Reset deletes every record this client keeps: session, posts and client
// id. The next ClientID call starts a new identity.
func (a *Adapter) Reset(ctx context.Context) error {
	if err := a.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}

// ClientID returns the identifier of this client installation, creating it
// on first use.
func (a *Adapter) ClientID(ctx context.Context) (string, error) {
	var id string
	err := a.repo.Update(ctx, common.ClientIDKey, func(old []byte) ([]byte, error) {
		if parsed, err := uuid.ParseBytes(old); err == nil {
			id = parsed.String()
			return old, nil
		}
		if old != nil {
			a.corrupt(ctx, common.ClientIDKey, fmt.Errorf("invalid uuid %q", old))
		}
		id = uuid.NewString()
		return []byte(id), nil
	})
	if err != nil {
		return "", fmt.Errorf("client id: %w", err)
	}
	return id, nil
}

func (a *Adapter) decodePosts(ctx context.Context, b []byte) []models.Post {
	if b == nil {
		return []models.Post{}
	}
	var posts []models.Post
	if err := json.Unmarshal(b, &posts); err != nil {
		a.corrupt(ctx, common.PostsKey, err)
		return []models.Post{}
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts
}

func (a *Adapter) corrupt(ctx context.Context, key string, err error) {
	a.log.Warn(ctx, "discarding unreadable stored value", "key", key, "error", err)
	a.metrics.CorruptState(key)
}

func encodePosts(posts []models.Post) ([]byte, error) {
	if posts == nil {
		posts = []models.Post{}
	}
	b, err := json.Marshal(posts)
	if err != nil {
		return nil, fmt.Errorf("encode posts: %w", err)
	}
	return b, nil
}
