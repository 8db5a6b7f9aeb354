package photo

import (
	"image"
	"image/color"
	"math"
)

const (
	minFaceWidthRatio = 0.30
	maxFaceWidthRatio = 0.70
	maxCenterOffset   = 0.10
	maxRollDegrees    = 10.0
	minResolution     = 600

	backgroundMargin    = 50
	backgroundThreshold = 180
)

// Evaluate applies the admission rules, in order, to a decoded image and the
// detector's faces. It stops at the first failing rule so the reason is
// deterministic. It has no side effects.
func Evaluate(img image.Image, faces []Face) Verdict {
	switch {
	case len(faces) == 0:
		return reject(CheckNoFace, ReasonNoFace)
	case len(faces) > 1:
		return reject(CheckMultipleFaces, ReasonMultipleFaces)
	}

	bounds := img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	face := faces[0]

	left := face.BoundingBox.Left * width
	top := face.BoundingBox.Top * height
	faceWidth := face.BoundingBox.Width * width
	faceHeight := face.BoundingBox.Height * height

	if faceWidth < minFaceWidthRatio*width || faceWidth > maxFaceWidthRatio*width {
		return reject(CheckFaceSize, ReasonFaceSize)
	}

	centerX := left + faceWidth/2
	centerY := top + faceHeight/2
	if math.Abs(centerX-width/2) > maxCenterOffset*width || math.Abs(centerY-height/2) > maxCenterOffset*height {
		return reject(CheckCentering, ReasonNotCentered)
	}

	if math.Abs(face.Pose.Roll) > maxRollDegrees {
		return reject(CheckHeadTilt, ReasonHeadTilted)
	}

	if !hasWhiteBackground(img) {
		return reject(CheckBackground, ReasonBackground)
	}

	if bounds.Dx() < minResolution || bounds.Dy() < minResolution {
		return reject(CheckResolution, ReasonLowResolution)
	}

	return accept()
}

// region is a half-open pixel rectangle relative to the image origin.
type region struct {
	x0, x1, y0, y1 int
}

// backgroundRegions returns the four sampled areas: both top corners and the
// left and right edges around the vertical midpoint. Ranges are clamped the
// way slice indexing clamps them, so small images sample what they have.
func backgroundRegions(w, h int) []region {
	mid := h / 2
	midStart := mid - backgroundMargin/2
	midEnd := mid + backgroundMargin/2

	leftCols := clampRange(0, backgroundMargin, w)
	rightCols := clampRange(-backgroundMargin, w, w)
	topRows := clampRange(0, backgroundMargin, h)
	midRows := clampRange(midStart, midEnd, h)

	return []region{
		{leftCols[0], leftCols[1], topRows[0], topRows[1]},
		{rightCols[0], rightCols[1], topRows[0], topRows[1]},
		{leftCols[0], leftCols[1], midRows[0], midRows[1]},
		{rightCols[0], rightCols[1], midRows[0], midRows[1]},
	}
}

// clampRange resolves [start, end) against a length n: negative indices count
// from the end and everything is clamped to [0, n].
func clampRange(start, end, n int) [2]int {
	resolve := func(i int) int {
		if i < 0 {
			i += n
		}
		return min(max(i, 0), n)
	}
	return [2]int{resolve(start), resolve(end)}
}

func hasWhiteBackground(img image.Image) bool {
	bounds := img.Bounds()
	for _, r := range backgroundRegions(bounds.Dx(), bounds.Dy()) {
		for y := r.y0; y < r.y1; y++ {
			for x := r.x0; x < r.x1; x++ {
				if !isNearWhite(img.At(bounds.Min.X+x, bounds.Min.Y+y)) {
					return false
				}
			}
		}
	}
	return true
}

// isNearWhite requires every stored channel, alpha included, to reach the
// threshold. Opaque images always pass the alpha test.
func isNearWhite(c color.Color) bool {
	switch px := c.(type) {
	case color.Gray:
		return px.Y >= backgroundThreshold
	case color.Gray16:
		return px.Y>>8 >= backgroundThreshold
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R >= backgroundThreshold &&
		n.G >= backgroundThreshold &&
		n.B >= backgroundThreshold &&
		n.A >= backgroundThreshold
}
