package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/MindOfAhmed/DigitalSociety/internal/photo"
	"github.com/MindOfAhmed/DigitalSociety/internal/photo/detector"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/config"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/metrics"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/redis"
)

// newDetector builds the Rekognition detector behind a result cache: the
// in-process cache alone, or in front of Redis when one is configured.
// It returns nil when face detection is disabled, which makes every photo
// fail admission.
func newDetector(ctx context.Context, cfg config.FaceDetector, awsCfg aws.Config, rdb *redis.Client, m *metrics.Metrics, logger *slog.Logger) (photo.Detector, error) {
	if !cfg.Enabled {
		logger.WarnContext(ctx, "face detection disabled; photo submissions will be rejected")
		return nil, nil
	}

	local, err := detector.NewMemoryCache(cfg.CacheMaxBytes)
	if err != nil {
		return nil, fmt.Errorf("detection cache: %w", err)
	}
	var cache detector.ResultCache = local
	if rdb != nil {
		cache = detector.NewTieredCache(local, detector.NewRedisCache(rdb), cfg.CacheTTL)
	}

	return detector.NewCached(detector.NewRekognition(awsCfg), cache, cfg.CacheTTL,
		detector.WithCacheLogger(logger),
		detector.WithCacheMetrics(m),
	), nil
}
