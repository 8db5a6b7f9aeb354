package registration_test

//go:generate mockgen -source=handler.go -destination=mocks/handler_mocks.go -package=mocks

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/registration"
	"github.com/MindOfAhmed/DigitalSociety/internal/registration/mocks"
	"github.com/MindOfAhmed/DigitalSociety/internal/request"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/testutil"
)

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

type messageBody struct {
	Message string `json:"message"`
}

type HandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	workflow *mocks.MockWorkflow
	router   chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.workflow = mocks.NewMockWorkflow(s.ctrl)
	h := registration.NewHandler(s.workflow, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.router = chi.NewRouter()
	h.RegisterCitizenRoutes(s.router)
	h.RegisterInspectorRoutes(s.router)
}

func (s *HandlerSuite) post(path string, fields map[string]string, files map[string][]byte) (int, string) {
	req := testutil.NewMultipartRequest(s.T(), http.MethodPost, path, fields, files)
	rr := testutil.DoRequest(s.router, testutil.AsCitizen(req, string(citizen)))
	return rr.Code, rr.Body.String()
}

func (s *HandlerSuite) TestSubmitAddress() {
	var got registration.Submission
	s.workflow.EXPECT().Submit(gomock.Any(), citizen, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ id.NationalID, sub registration.Submission) (*registration.Request, error) {
			got = sub
			return &registration.Request{ID: id.NewRequestID(), Type: registration.TypeAddress, Review: request.NewPendingReview(now)}, nil
		})

	code, body := s.post("/registrations/address", map[string]string{
		"country":          "Egypt",
		"city":             "Cairo",
		"street":           " Tahrir ",
		"building_number":  "12",
		"floor_number":     "3",
		"apartment_number": "7",
	}, map[string][]byte{"proof_document": []byte("lease")})

	s.Require().Equal(http.StatusCreated, code, body)
	s.Contains(body, registration.MessageSubmitted)
	claim, ok := got.Claim.(registration.AddressClaim)
	s.Require().True(ok)
	s.Equal(home, claim.Line)
	s.Equal([]byte("lease"), got.ProofDocument)
	s.Empty(got.Picture)
}

func (s *HandlerSuite) TestSubmitAddressNonNumericFloor() {
	code, body := s.post("/registrations/address", map[string]string{
		"country":          "Egypt",
		"city":             "Cairo",
		"street":           "Tahrir",
		"building_number":  "12",
		"floor_number":     "third",
		"apartment_number": "7",
	}, nil)

	s.Equal(http.StatusBadRequest, code, body)
	s.Contains(body, "floor_number must be a number")
}

func (s *HandlerSuite) TestSubmitPropertyTransfer() {
	s.workflow.EXPECT().Submit(gomock.Any(), citizen, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ id.NationalID, sub registration.Submission) (*registration.Request, error) {
			claim, ok := sub.Claim.(registration.PropertyClaim)
			s.Require().True(ok)
			s.Equal("PR-9", claim.PropertyID)
			s.Equal(records.PropertyType("Residential"), claim.PropertyType)
			s.Equal(seller, claim.PreviousOwnerID)
			s.Require().NotNil(claim.Size)
			s.Equal("120m2", *claim.Size)
			return &registration.Request{ID: id.NewRequestID(), Type: registration.TypeProperty}, nil
		})

	code, body := s.post("/registrations/property", map[string]string{
		"property_id":       "PR-9",
		"location":          "Giza",
		"property_type":     "Residential",
		"description":       "flat",
		"size":              "120m2",
		"previous_owner_id": string(seller),
	}, map[string][]byte{"picture": []byte("jpeg"), "proof_document": []byte("contract")})

	s.Equal(http.StatusCreated, code, body)
}

func (s *HandlerSuite) TestSubmitVehicle() {
	s.workflow.EXPECT().Submit(gomock.Any(), citizen, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ id.NationalID, sub registration.Submission) (*registration.Request, error) {
			claim, ok := sub.Claim.(registration.VehicleClaim)
			s.Require().True(ok)
			s.Equal(2019, claim.Year)
			s.Empty(claim.PreviousOwnerID)
			return &registration.Request{ID: id.NewRequestID(), Type: registration.TypeVehicle}, nil
		})

	code, body := s.post("/registrations/vehicle", map[string]string{
		"serial_number": "12345",
		"model":         "Corolla",
		"manufacturer":  "Toyota",
		"year":          "2019",
		"vehicle_type":  "Sedan",
		"plate_number":  "ABC-123",
	}, map[string][]byte{"picture": []byte("jpeg"), "proof_document": []byte("invoice")})

	s.Equal(http.StatusCreated, code, body)
}

func (s *HandlerSuite) TestSubmitRejectsMalformedPreviousOwner() {
	code, body := s.post("/registrations/vehicle", map[string]string{
		"serial_number":     "12345",
		"model":             "Corolla",
		"manufacturer":      "Toyota",
		"year":              "2019",
		"vehicle_type":      "Sedan",
		"plate_number":      "ABC-123",
		"previous_owner_id": "not an id!",
	}, nil)

	s.Equal(http.StatusBadRequest, code, body)
}

func (s *HandlerSuite) TestSubmitAlreadyRegistered() {
	s.workflow.EXPECT().Submit(gomock.Any(), citizen, gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeConflict, "This vehicle is already registered."))

	req := testutil.NewMultipartRequest(s.T(), http.MethodPost, "/registrations/vehicle", map[string]string{
		"serial_number": "12345",
		"model":         "Corolla",
		"manufacturer":  "Toyota",
		"year":          "2019",
		"vehicle_type":  "Sedan",
		"plate_number":  "ABC-123",
	}, map[string][]byte{"picture": []byte("jpeg"), "proof_document": []byte("invoice")})
	rr := testutil.DoRequest(s.router, testutil.AsCitizen(req, string(citizen)))

	s.Equal(http.StatusConflict, rr.Code)
	body := testutil.UnmarshalResponse[errorBody](s.T(), rr)
	s.Equal(string(dErrors.CodeConflict), body.Error)
	s.Equal("This vehicle is already registered.", body.Description)
}

func (s *HandlerSuite) TestListPendingCarriesPlaceholders() {
	placeholder := records.Vehicle{ID: uuid.New(), SerialNumber: "12345", CitizenID: citizen, IsUnderTransfer: true}
	s.workflow.EXPECT().ListPending(gomock.Any(), registration.TypeVehicle).Return([]registration.PendingRequest{{
		Request: registration.Request{ID: id.NewRequestID(), CitizenID: citizen, Type: registration.TypeVehicle, Subject: "12345"},
		Vehicle: &placeholder,
	}}, nil)

	req := testutil.NewRequest(s.T(), http.MethodGet, "/inspector/registrations?type=Vehicle+Registration")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	got := testutil.UnmarshalResponse[[]map[string]any](s.T(), rr)
	s.Require().Len(*got, 1)
	s.Contains((*got)[0], "vehicle_info")
	s.NotContains((*got)[0], "address_info")
}

func (s *HandlerSuite) TestListPendingUnknownType() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/inspector/registrations?type=Boat")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerSuite) TestApprove() {
	requestID := id.NewRequestID()
	s.workflow.EXPECT().Approve(gomock.Any(), requestID, inspector).Return(&registration.Request{ID: requestID}, nil)

	req := testutil.NewRequest(s.T(), http.MethodPost, "/inspector/registrations/"+requestID.String()+"/approve")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusOK, rr.Code)
	s.Equal(registration.MessageApproved, testutil.UnmarshalResponse[messageBody](s.T(), rr).Message)
}

func (s *HandlerSuite) TestApproveAlreadyResolved() {
	requestID := id.NewRequestID()
	s.workflow.EXPECT().Approve(gomock.Any(), requestID, inspector).
		Return(nil, dErrors.New(dErrors.CodeConflict, "request has already been resolved"))

	req := testutil.NewRequest(s.T(), http.MethodPost, "/inspector/registrations/"+requestID.String()+"/approve")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusConflict, rr.Code)
}

func (s *HandlerSuite) TestReject() {
	requestID := id.NewRequestID()
	s.workflow.EXPECT().Reject(gomock.Any(), requestID, inspector, "forged contract").Return(&registration.Request{ID: requestID}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/inspector/registrations/"+requestID.String()+"/reject",
		map[string]string{"rejectionReason": "forged contract"})
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusOK, rr.Code)
	s.Equal(registration.MessageRejected, testutil.UnmarshalResponse[messageBody](s.T(), rr).Message)
}

func (s *HandlerSuite) TestRejectMalformedID() {
	req := testutil.NewRequest(s.T(), http.MethodPost, "/inspector/registrations/42/reject")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusBadRequest, rr.Code)
}
