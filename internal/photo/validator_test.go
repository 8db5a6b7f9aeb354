package photo_test

//go:generate mockgen -source=validator.go -destination=mocks/mocks.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/MindOfAhmed/DigitalSociety/internal/photo"
	"github.com/MindOfAhmed/DigitalSociety/internal/photo/mocks"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/metrics"
)

type ValidatorSuite struct {
	suite.Suite
	ctx       context.Context
	detector  *mocks.MockDetector
	metrics   *metrics.Metrics
	validator *photo.Validator
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.detector = mocks.NewMockDetector(ctrl)
	s.detector.EXPECT().Name().Return("mock").AnyTimes()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.validator = photo.NewValidator(s.detector,
		photo.WithMetrics(s.metrics),
		photo.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func encodePNG(s *ValidatorSuite, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	var buf bytes.Buffer
	s.Require().NoError(png.Encode(&buf, img))
	return buf.Bytes()
}

func centered() photo.Face {
	return photo.Face{
		BoundingBox: photo.BoundingBox{Left: 0.25, Top: 0.25, Width: 0.5, Height: 0.5},
		Pose:        photo.Pose{Roll: 5},
	}
}

func (s *ValidatorSuite) TestAcceptsCompliantPortrait() {
	raw := encodePNG(s, 800, 800)
	s.detector.EXPECT().Detect(gomock.Any(), raw).Return([]photo.Face{centered()}, nil)

	verdict := s.validator.Validate(s.ctx, raw)

	s.True(verdict.Accepted)
	s.Equal(photo.ReasonValid, verdict.Reason)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PhotoVerdicts.WithLabelValues("passed")))
	s.Equal(1, testutil.CollectAndCount(s.metrics.DetectorLatency))
}

func (s *ValidatorSuite) TestRejectsSmallFace() {
	raw := encodePNG(s, 800, 800)
	face := centered()
	face.BoundingBox.Left = 0.4
	face.BoundingBox.Width = 0.2
	s.detector.EXPECT().Detect(gomock.Any(), raw).Return([]photo.Face{face}, nil)

	verdict := s.validator.Validate(s.ctx, raw)

	s.False(verdict.Accepted)
	s.Contains(verdict.Reason, "Face size")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PhotoVerdicts.WithLabelValues("face_size")))
}

func (s *ValidatorSuite) TestDecodesJPEG() {
	img := image.NewRGBA(image.Rect(0, 0, 800, 800))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	var buf bytes.Buffer
	s.Require().NoError(jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	s.detector.EXPECT().Detect(gomock.Any(), buf.Bytes()).Return([]photo.Face{centered()}, nil)

	verdict := s.validator.Validate(s.ctx, buf.Bytes())

	s.True(verdict.Accepted, verdict.Reason)
}

func (s *ValidatorSuite) TestUndecodableBytesSkipDetector() {
	verdict := s.validator.Validate(s.ctx, []byte("definitely not an image"))

	s.False(verdict.Accepted)
	s.Equal(photo.CheckDecode, verdict.Check)
	s.Equal(photo.ReasonUndecodable, verdict.Reason)
}

func (s *ValidatorSuite) TestMissingDetector() {
	v := photo.NewValidator(nil)

	verdict := v.Validate(s.ctx, encodePNG(s, 800, 800))

	s.False(verdict.Accepted)
	s.Equal(photo.ReasonNoDetector, verdict.Reason)
}

func (s *ValidatorSuite) TestCredentialFailureKeepsProviderMessage() {
	raw := encodePNG(s, 800, 800)
	s.detector.EXPECT().Detect(gomock.Any(), raw).Return(nil,
		photo.NewDetectorError(photo.ErrorCredentials, "rekognition",
			"The security token included in the request is invalid.", errors.New("UnrecognizedClientException")))

	verdict := s.validator.Validate(s.ctx, raw)

	s.False(verdict.Accepted)
	s.Equal(photo.CheckDetectorCredentials, verdict.Check)
	s.Equal("Error with face detection credentials: The security token included in the request is invalid.", verdict.Reason)
}

func (s *ValidatorSuite) TestProviderFailureIsARejection() {
	raw := encodePNG(s, 800, 800)
	s.detector.EXPECT().Detect(gomock.Any(), raw).Return(nil,
		photo.NewDetectorError(photo.ErrorProviderOutage, "rekognition", "service unavailable", nil))

	verdict := s.validator.Validate(s.ctx, raw)

	s.False(verdict.Accepted)
	s.Equal(photo.CheckDetectorError, verdict.Check)
	s.Equal("Error detecting faces: service unavailable", verdict.Reason)
}

func (s *ValidatorSuite) TestUnclassifiedFailureUsesErrorText() {
	raw := encodePNG(s, 800, 800)
	s.detector.EXPECT().Detect(gomock.Any(), raw).Return(nil, errors.New("connection reset"))

	verdict := s.validator.Validate(s.ctx, raw)

	s.Equal("Error detecting faces: connection reset", verdict.Reason)
}

func (s *ValidatorSuite) TestSameInputSameVerdict() {
	raw := encodePNG(s, 800, 800)
	s.detector.EXPECT().Detect(gomock.Any(), raw).Return([]photo.Face{centered()}, nil).Times(2)

	s.Equal(s.validator.Validate(s.ctx, raw), s.validator.Validate(s.ctx, raw))
}

func TestDetectorErrorCategories(t *testing.T) {
	throttled := photo.NewDetectorError(photo.ErrorThrottled, "rekognition", "slow down", nil)
	assert.True(t, photo.IsRetryable(throttled))
	assert.False(t, photo.IsRetryable(photo.NewDetectorError(photo.ErrorCredentials, "rekognition", "bad key", nil)))
	assert.Equal(t, photo.ErrorInternal, photo.CategoryOf(errors.New("plain")))
	assert.Equal(t, photo.ErrorThrottled, photo.CategoryOf(throttled))
	assert.Contains(t, throttled.Error(), "rekognition")
}
