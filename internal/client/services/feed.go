package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/foorum/internal/client/config"
	"github.com/dmitrijs2005/foorum/internal/client/directory"
	"github.com/dmitrijs2005/foorum/internal/client/metrics"
	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/client/persistence"
	"github.com/dmitrijs2005/foorum/internal/logging"
)

// Order selects how LoadPosts sorts the feed.
type Order string

const (
	// OrderLegacy puts A before B when A.ID > B.ID as strings. Equal ids
	// keep their stored order.
	OrderLegacy Order = config.OrderLegacy
	// OrderChronological sorts by the millisecond prefix of the id, newest
	// first. Posts with no numeric prefix go last, in legacy order.
	OrderChronological Order = config.OrderChronological
)

// ParseOrder maps a config value to an Order. Empty means legacy.
func ParseOrder(s string) (Order, error) {
	name, err := config.NormalizeFeedOrder(s)
	if err != nil {
		return "", err
	}
	return Order(name), nil
}

// NewPostLabel is the display timestamp given to freshly created posts.
const NewPostLabel = "Just now"

type FeedService struct {
	store   *persistence.Adapter
	dir     *directory.Directory
	log     logging.Logger
	metrics *metrics.Metrics
	order   Order
	now     func() time.Time
}

func NewFeedService(store *persistence.Adapter, dir *directory.Directory, log logging.Logger, m *metrics.Metrics, order Order) *FeedService {
	if log == nil {
		log = logging.Nop()
	}
	if order == "" {
		order = OrderLegacy
	}
	return &FeedService{
		store:   store,
		dir:     dir,
		log:     log,
		metrics: m,
		order:   order,
		now:     time.Now,
	}
}

// LoadPosts reads the stored collection and sorts it newest first.
func (f *FeedService) LoadPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := f.store.GetPosts(ctx)
	if err != nil {
		return nil, err
	}
	sortPosts(posts, f.order)
	return posts, nil
}

// SavePosts overwrites the stored collection.
func (f *FeedService) SavePosts(ctx context.Context, posts []models.Post) error {
	return f.store.SavePosts(ctx, posts)
}

// CreatePost validates in, stores a new post at the front of the collection
// and returns it. Callers reload the feed to see it in order.
func (f *FeedService) CreatePost(ctx context.Context, in models.NewPostInput) (models.Post, error) {
	in.Content = strings.TrimSpace(in.Content)
	if err := models.Validate(in); err != nil {
		return models.Post{}, err
	}

	id, err := models.NewPostID(f.now())
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}

	p := models.Post{
		ID:        id,
		UserID:    in.AuthorID,
		Content:   in.Content,
		Timestamp: NewPostLabel,
	}
	if in.Emoji != "" {
		p.Emoji = models.EmojiPtr(in.Emoji)
	}

	if err := f.store.AppendPost(ctx, p); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}

	f.metrics.PostCreated()
	f.log.Info(ctx, "post created", "post_id", p.ID, "user_id", p.UserID)
	return p, nil
}

// Timeline is LoadPosts with each author resolved. Posts whose author is
// not in the directory are left out.
func (f *FeedService) Timeline(ctx context.Context) ([]models.FeedItem, error) {
	posts, err := f.LoadPosts(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.FeedItem, 0, len(posts))
	for _, p := range posts {
		author, ok := f.dir.FindByID(p.UserID)
		if !ok {
			f.log.Debug(ctx, "skipping post with unknown author", "post_id", p.ID, "user_id", p.UserID)
			continue
		}
		items = append(items, models.FeedItem{Post: p, Author: author})
	}
	return items, nil
}

// SeedIfEmpty stores posts when no collection has been written yet. An
// existing collection, even an empty one, is left alone.
func (f *FeedService) SeedIfEmpty(ctx context.Context, posts []models.Post) (bool, error) {
	has, err := f.store.HasPosts(ctx)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	if err := f.store.SavePosts(ctx, posts); err != nil {
		return false, fmt.Errorf("seed posts: %w", err)
	}
	f.log.Debug(ctx, "seeded posts", "count", len(posts))
	return true, nil
}

func sortPosts(posts []models.Post, order Order) {
	switch order {
	case OrderChronological:
		sort.SliceStable(posts, func(i, j int) bool {
			mi, okI := posts[i].CreatedAtMillis()
			mj, okJ := posts[j].CreatedAtMillis()
			switch {
			case okI && okJ && mi != mj:
				return mi > mj
			case okI != okJ:
				return okI
			}
			return posts[i].ID > posts[j].ID
		})
	default:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].ID > posts[j].ID
		})
	}
}
