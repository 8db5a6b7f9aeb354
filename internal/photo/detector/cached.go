package detector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MindOfAhmed/DigitalSociety/internal/photo"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/metrics"
)

// Cached wraps a detector with a result cache keyed by the image digest.
// Concurrent detections of identical bytes share one provider call. Only
// successful detections are cached.
type Cached struct {
	inner   photo.Detector
	cache   ResultCache
	ttl     time.Duration
	group   singleflight.Group
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type CachedOption func(*Cached)

func WithCacheLogger(logger *slog.Logger) CachedOption {
	return func(c *Cached) {
		c.logger = logger
	}
}

func WithCacheMetrics(m *metrics.Metrics) CachedOption {
	return func(c *Cached) {
		c.metrics = m
	}
}

func NewCached(inner photo.Detector, cache ResultCache, ttl time.Duration, opts ...CachedOption) *Cached {
	c := &Cached{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cached) Name() string {
	return c.inner.Name()
}

func (c *Cached) Detect(ctx context.Context, image []byte) ([]photo.Face, error) {
	sum := sha256.Sum256(image)
	key := hex.EncodeToString(sum[:])

	if faces, ok := c.lookup(ctx, key); ok {
		c.metrics.IncrementDetectorCacheHit()
		return faces, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		faces, err := c.inner.Detect(ctx, image)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, faces)
		return faces, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]photo.Face), nil
}

func (c *Cached) lookup(ctx context.Context, key string) ([]photo.Face, bool) {
	raw, found, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "detection cache read failed", "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	var faces []photo.Face
	if err := json.Unmarshal(raw, &faces); err != nil {
		c.logger.WarnContext(ctx, "detection cache entry unreadable", "error", err)
		return nil, false
	}
	return faces, true
}

func (c *Cached) store(ctx context.Context, key string, faces []photo.Face) {
	raw, err := json.Marshal(faces)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "detection cache write failed", "error", err)
	}
}
