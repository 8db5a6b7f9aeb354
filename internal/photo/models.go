// Package photo decides whether an uploaded portrait is admissible on an
// identity document.
package photo

// BoundingBox is a face box in coordinates normalized to the image size (0..1).
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Pose is the head orientation in degrees.
type Pose struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// Face is one face reported by a detector.
type Face struct {
	BoundingBox BoundingBox `json:"bounding_box"`
	Pose        Pose        `json:"pose"`
}

// Check names the admission rule that produced a verdict. Values are stable
// and used as metric labels.
type Check string

const (
	CheckPassed              Check = "passed"
	CheckDecode              Check = "decode"
	CheckDetectorUnavailable Check = "detector_unavailable"
	CheckDetectorCredentials Check = "detector_credentials"
	CheckDetectorError       Check = "detector_error"
	CheckNoFace              Check = "no_face"
	CheckMultipleFaces       Check = "multiple_faces"
	CheckFaceSize            Check = "face_size"
	CheckCentering           Check = "centering"
	CheckHeadTilt            Check = "head_tilt"
	CheckBackground          Check = "background"
	CheckResolution          Check = "resolution"
)

const (
	ReasonValid          = "Image is valid."
	ReasonNoFace         = "No faces detected in the image."
	ReasonMultipleFaces  = "Multiple faces detected in the image."
	ReasonFaceSize       = "Face size is not within the required range. It should be between 30% and 70% of the image width."
	ReasonNotCentered    = "Face must be centered in the image."
	ReasonHeadTilted     = "Head is tilted in the image."
	ReasonBackground     = "The background of the image is not white."
	ReasonLowResolution  = "Image resolution is too low."
	ReasonUndecodable    = "Image could not be decoded."
	ReasonNoDetector     = "Face detection is not available."
	reasonCredentialsFmt = "Error with face detection credentials: %s"
	reasonDetectorFmt    = "Error detecting faces: %s"
)

// Verdict is the admission decision. Reason is always human readable.
type Verdict struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
	Check    Check  `json:"check"`
}

func accept() Verdict {
	return Verdict{Accepted: true, Reason: ReasonValid, Check: CheckPassed}
}

func reject(check Check, reason string) Verdict {
	return Verdict{Accepted: false, Reason: reason, Check: check}
}
