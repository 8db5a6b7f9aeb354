package photo

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func centeredFace(width, roll float64) Face {
	return Face{
		BoundingBox: BoundingBox{Left: 0.5 - width/2, Top: 0.25, Width: width, Height: 0.5},
		Pose:        Pose{Roll: roll},
	}
}

func TestEvaluate(t *testing.T) {
	dark := color.RGBA{R: 40, G: 40, B: 40, A: 255}

	tests := []struct {
		name   string
		img    func() image.Image
		faces  []Face
		check  Check
		reason string
	}{
		{
			name:   "single centered face on white background is accepted",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  []Face{centeredFace(0.5, 5)},
			check:  CheckPassed,
			reason: ReasonValid,
		},
		{
			name:   "no faces",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  nil,
			check:  CheckNoFace,
			reason: ReasonNoFace,
		},
		{
			name:   "two faces",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  []Face{centeredFace(0.5, 0), centeredFace(0.4, 0)},
			check:  CheckMultipleFaces,
			reason: ReasonMultipleFaces,
		},
		{
			name:   "face at 20 percent of width is too small",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  []Face{centeredFace(0.2, 0)},
			check:  CheckFaceSize,
			reason: ReasonFaceSize,
		},
		{
			name:   "face at 80 percent of width is too large",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  []Face{centeredFace(0.8, 0)},
			check:  CheckFaceSize,
			reason: ReasonFaceSize,
		},
		{
			name:   "face at exactly 30 percent of width is in range",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  []Face{centeredFace(0.3, 0)},
			check:  CheckPassed,
			reason: ReasonValid,
		},
		{
			name: "face shifted right is not centered",
			img:  func() image.Image { return whiteImage(800, 800) },
			faces: []Face{{
				BoundingBox: BoundingBox{Left: 0.4, Top: 0.25, Width: 0.5, Height: 0.5},
			}},
			check:  CheckCentering,
			reason: ReasonNotCentered,
		},
		{
			name: "face shifted down is not centered",
			img:  func() image.Image { return whiteImage(800, 800) },
			faces: []Face{{
				BoundingBox: BoundingBox{Left: 0.25, Top: 0.4, Width: 0.5, Height: 0.5},
			}},
			check:  CheckCentering,
			reason: ReasonNotCentered,
		},
		{
			name:   "roll above ten degrees is tilted",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  []Face{centeredFace(0.5, 11)},
			check:  CheckHeadTilt,
			reason: ReasonHeadTilted,
		},
		{
			name:   "roll below minus ten degrees is tilted",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  []Face{centeredFace(0.5, -10.5)},
			check:  CheckHeadTilt,
			reason: ReasonHeadTilted,
		},
		{
			name:   "roll of exactly ten degrees is allowed",
			img:    func() image.Image { return whiteImage(800, 800) },
			faces:  []Face{centeredFace(0.5, 10)},
			check:  CheckPassed,
			reason: ReasonValid,
		},
		{
			name: "dark pixel in the top left corner",
			img: func() image.Image {
				img := whiteImage(800, 800)
				img.Set(49, 49, dark)
				return img
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckBackground,
			reason: ReasonBackground,
		},
		{
			name: "dark pixel in the top right corner",
			img: func() image.Image {
				img := whiteImage(800, 800)
				img.Set(750, 0, dark)
				return img
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckBackground,
			reason: ReasonBackground,
		},
		{
			name: "dark pixel in the left midpoint band",
			img: func() image.Image {
				img := whiteImage(800, 800)
				img.Set(0, 375, dark)
				return img
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckBackground,
			reason: ReasonBackground,
		},
		{
			name: "dark pixel in the right midpoint band",
			img: func() image.Image {
				img := whiteImage(800, 800)
				img.Set(799, 424, dark)
				return img
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckBackground,
			reason: ReasonBackground,
		},
		{
			name: "one channel under the threshold fails",
			img: func() image.Image {
				img := whiteImage(800, 800)
				img.Set(10, 10, color.RGBA{R: 255, G: 255, B: 179, A: 255})
				return img
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckBackground,
			reason: ReasonBackground,
		},
		{
			name: "dark pixels outside the sampled regions are ignored",
			img: func() image.Image {
				img := whiteImage(800, 800)
				img.Set(400, 400, dark)
				img.Set(0, 374, dark)
				img.Set(0, 425, dark)
				img.Set(50, 0, dark)
				img.Set(749, 0, dark)
				img.Set(0, 799, dark)
				return img
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckPassed,
			reason: ReasonValid,
		},
		{
			name: "transparent corner fails",
			img: func() image.Image {
				img := image.NewNRGBA(image.Rect(0, 0, 800, 800))
				draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
				img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
				return img
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckBackground,
			reason: ReasonBackground,
		},
		{
			name: "grayscale white image is accepted",
			img: func() image.Image {
				img := image.NewGray(image.Rect(0, 0, 800, 800))
				draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
				return img
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckPassed,
			reason: ReasonValid,
		},
		{
			name:   "valid composition below 600px is low resolution",
			img:    func() image.Image { return whiteImage(599, 800) },
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckResolution,
			reason: ReasonLowResolution,
		},
		{
			name:   "tiny image samples what it has and fails on resolution",
			img:    func() image.Image { return whiteImage(40, 30) },
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckResolution,
			reason: ReasonLowResolution,
		},
		{
			name: "non zero image origin is handled",
			img: func() image.Image {
				return whiteImage(900, 900).SubImage(image.Rect(100, 100, 900, 900))
			},
			faces:  []Face{centeredFace(0.5, 0)},
			check:  CheckPassed,
			reason: ReasonValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Evaluate(tt.img(), tt.faces)
			assert.Equal(t, tt.check, verdict.Check)
			assert.Equal(t, tt.reason, verdict.Reason)
			assert.Equal(t, tt.check == CheckPassed, verdict.Accepted)
		})
	}
}

func TestEvaluateChecksRunInOrder(t *testing.T) {
	// Too small, off-center, tilted and on a dark background: size wins.
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	face := Face{
		BoundingBox: BoundingBox{Left: 0.0, Top: 0.0, Width: 0.1, Height: 0.1},
		Pose:        Pose{Roll: 45},
	}

	verdict := Evaluate(img, []Face{face})
	assert.Equal(t, CheckFaceSize, verdict.Check)

	face.BoundingBox.Width = 0.5
	verdict = Evaluate(img, []Face{face})
	assert.Equal(t, CheckCentering, verdict.Check)

	face.BoundingBox = BoundingBox{Left: 0.25, Top: 0.25, Width: 0.5, Height: 0.5}
	verdict = Evaluate(img, []Face{face})
	assert.Equal(t, CheckHeadTilt, verdict.Check)

	face.Pose.Roll = 0
	verdict = Evaluate(img, []Face{face})
	assert.Equal(t, CheckBackground, verdict.Check)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	img := whiteImage(800, 800)
	faces := []Face{centeredFace(0.5, 5)}

	first := Evaluate(img, faces)
	for range 10 {
		assert.Equal(t, first, Evaluate(img, faces))
	}
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		n          int
		want       [2]int
	}{
		{"inside", 0, 50, 800, [2]int{0, 50}},
		{"end past length", 0, 50, 30, [2]int{0, 30}},
		{"negative start counts from the end", -50, 800, 800, [2]int{750, 800}},
		{"negative start beyond length clamps to zero", -50, 30, 30, [2]int{0, 30}},
		{"midpoint band on a short image", -10, 40, 30, [2]int{20, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampRange(tt.start, tt.end, tt.n))
		})
	}
}
