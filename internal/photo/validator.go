package photo

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"time"

	// Decoders for the accepted upload formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/MindOfAhmed/DigitalSociety/internal/platform/metrics"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/tracing"
)

// Detector finds faces in an encoded image. Implementations return a
// *DetectorError for provider failures.
type Detector interface {
	Detect(ctx context.Context, image []byte) ([]Face, error)
	Name() string
}

// Validator is the photo admission gate used before a request may enter the
// Pending state. It never returns an error: every failure is a rejection.
type Validator struct {
	detector Detector
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

type Option func(*Validator)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Validator) {
		v.metrics = m
	}
}

// NewValidator builds a validator. A nil detector makes every photo fail
// with ReasonNoDetector.
func NewValidator(detector Detector, opts ...Option) *Validator {
	v := &Validator{
		detector: detector,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate decodes imageBytes, asks the detector for faces and applies the
// admission rules. Identical bytes and detector output give identical verdicts.
func (v *Validator) Validate(ctx context.Context, imageBytes []byte) Verdict {
	verdict := v.validate(ctx, imageBytes)
	v.metrics.IncrementPhotoVerdict(string(verdict.Check))
	if !verdict.Accepted {
		v.logger.InfoContext(ctx, "photo rejected",
			"check", string(verdict.Check),
			"reason", verdict.Reason,
		)
	}
	return verdict
}

func (v *Validator) validate(ctx context.Context, imageBytes []byte) Verdict {
	img, format, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return reject(CheckDecode, ReasonUndecodable)
	}
	if v.detector == nil {
		return reject(CheckDetectorUnavailable, ReasonNoDetector)
	}

	faces, err := v.detect(ctx, imageBytes)
	if err != nil {
		v.logger.WarnContext(ctx, "face detection failed",
			"detector", v.detector.Name(),
			"category", string(CategoryOf(err)),
			"format", format,
			"error", err,
		)
		return detectorVerdict(err)
	}
	return Evaluate(img, faces)
}

func (v *Validator) detect(ctx context.Context, imageBytes []byte) (faces []Face, err error) {
	ctx, span := tracing.StartDetectorSpan(ctx, v.detector.Name(), len(imageBytes))
	start := v.now()
	defer func() {
		v.metrics.ObserveDetectorLatency(v.now().Sub(start))
		tracing.End(span, err)
	}()
	return v.detector.Detect(ctx, imageBytes)
}
