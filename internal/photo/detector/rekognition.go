// Package detector holds face-detection providers for the photo validator.
package detector

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"

	"github.com/MindOfAhmed/DigitalSociety/internal/photo"
)

const rekognitionName = "rekognition"

// RekognitionAPI is the subset of the Rekognition client used here.
type RekognitionAPI interface {
	DetectFaces(ctx context.Context, params *rekognition.DetectFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectFacesOutput, error)
}

// Rekognition detects faces with AWS Rekognition DetectFaces.
type Rekognition struct {
	client RekognitionAPI
}

// NewRekognition builds a detector from a loaded AWS configuration.
func NewRekognition(cfg aws.Config) *Rekognition {
	return &Rekognition{client: rekognition.NewFromConfig(cfg)}
}

// NewRekognitionWithClient wraps an existing client.
func NewRekognitionWithClient(client RekognitionAPI) *Rekognition {
	return &Rekognition{client: client}
}

func (r *Rekognition) Name() string {
	return rekognitionName
}

func (r *Rekognition) Detect(ctx context.Context, image []byte) ([]photo.Face, error) {
	out, err := r.client.DetectFaces(ctx, &rekognition.DetectFacesInput{
		Image:      &types.Image{Bytes: image},
		Attributes: []types.Attribute{types.AttributeAll},
	})
	if err != nil {
		return nil, classify(err)
	}

	faces := make([]photo.Face, 0, len(out.FaceDetails))
	for _, d := range out.FaceDetails {
		var face photo.Face
		if box := d.BoundingBox; box != nil {
			face.BoundingBox = photo.BoundingBox{
				Left:   float64(aws.ToFloat32(box.Left)),
				Top:    float64(aws.ToFloat32(box.Top)),
				Width:  float64(aws.ToFloat32(box.Width)),
				Height: float64(aws.ToFloat32(box.Height)),
			}
		}
		if pose := d.Pose; pose != nil {
			face.Pose = photo.Pose{
				Roll:  float64(aws.ToFloat32(pose.Roll)),
				Pitch: float64(aws.ToFloat32(pose.Pitch)),
				Yaw:   float64(aws.ToFloat32(pose.Yaw)),
			}
		}
		faces = append(faces, face)
	}
	return faces, nil
}

var credentialCodes = map[string]bool{
	"UnrecognizedClientException":         true,
	"InvalidSignatureException":           true,
	"AccessDeniedException":               true,
	"ExpiredTokenException":               true,
	"MissingAuthenticationTokenException": true,
	"IncompleteSignature":                 true,
}

// classify maps SDK failures onto the photo error taxonomy, keeping the
// provider's own message.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return photo.NewDetectorError(photo.ErrorTimeout, rekognitionName, "request timed out", err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.ErrorMessage()
		if message == "" {
			message = apiErr.ErrorCode()
		}
		return photo.NewDetectorError(categoryFor(apiErr), rekognitionName, message, err)
	}

	// Credential resolution fails before any request is sent, so there is
	// no API error to inspect.
	if strings.Contains(err.Error(), "retrieve credentials") || strings.Contains(err.Error(), "refresh cached credentials") {
		return photo.NewDetectorError(photo.ErrorCredentials, rekognitionName, "unable to locate credentials", err)
	}

	return photo.NewDetectorError(photo.ErrorProviderOutage, rekognitionName, err.Error(), err)
}

func categoryFor(apiErr smithy.APIError) photo.ErrorCategory {
	var (
		throttling   *types.ThrottlingException
		throughput   *types.ProvisionedThroughputExceededException
		badFormat    *types.InvalidImageFormatException
		tooLarge     *types.ImageTooLargeException
		badParameter *types.InvalidParameterException
		internal     *types.InternalServerError
	)
	switch {
	case credentialCodes[apiErr.ErrorCode()]:
		return photo.ErrorCredentials
	case errors.As(apiErr, &throttling), errors.As(apiErr, &throughput):
		return photo.ErrorThrottled
	case errors.As(apiErr, &badFormat), errors.As(apiErr, &tooLarge), errors.As(apiErr, &badParameter):
		return photo.ErrorInvalidImage
	case errors.As(apiErr, &internal):
		return photo.ErrorProviderOutage
	case apiErr.ErrorFault() == smithy.FaultServer:
		return photo.ErrorProviderOutage
	default:
		return photo.ErrorInternal
	}
}
