package renewal_test

//go:generate mockgen -source=handler.go -destination=mocks/handler_mocks.go -package=mocks

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/renewal"
	"github.com/MindOfAhmed/DigitalSociety/internal/renewal/mocks"
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
	h := renewal.NewHandler(s.workflow, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.router = chi.NewRouter()
	h.RegisterCitizenRoutes(s.router)
	h.RegisterInspectorRoutes(s.router)
}

func (s *HandlerSuite) passportForm() map[string]string {
	return map[string]string{
		"passport_number": "P1234567",
		"issue_date":      "2023-07-04",
		"expiry_date":     "2028-07-03",
		"reason":          "damaged",
	}
}

func (s *HandlerSuite) TestSubmitPassport() {
	var got renewal.Submission
	s.workflow.EXPECT().Submit(gomock.Any(), citizen, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ id.NationalID, sub renewal.Submission) (*renewal.Request, error) {
			got = sub
			return &renewal.Request{ID: id.NewRequestID(), CitizenID: citizen, Type: renewal.TypePassport, Review: request.NewPendingReview(now)}, nil
		})

	req := testutil.NewMultipartRequest(s.T(), http.MethodPost, "/renewals/passport", s.passportForm(),
		map[string][]byte{"picture": []byte("jpeg"), "proof_document": []byte("pdf")})
	rr := testutil.DoRequest(s.router, testutil.AsCitizen(req, string(citizen)))

	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	body := testutil.UnmarshalResponse[messageBody](s.T(), rr)
	s.Equal(renewal.MessageSubmitted, body.Message)

	claim, ok := got.Claim.(renewal.PassportClaim)
	s.Require().True(ok)
	s.Equal("P1234567", claim.Number)
	s.Equal("2023-07-04", claim.IssueDate.Format("2006-01-02"))
	s.Equal([]byte("jpeg"), got.Picture)
	s.Equal([]byte("pdf"), got.ProofDocument)
	s.Equal("damaged", got.Reason)
}

func (s *HandlerSuite) TestSubmitLicense() {
	s.workflow.EXPECT().Submit(gomock.Any(), citizen, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ id.NationalID, sub renewal.Submission) (*renewal.Request, error) {
			claim, ok := sub.Claim.(renewal.LicenseClaim)
			s.Require().True(ok)
			s.Equal(records.LicenseClassB, claim.LicenseClass)
			s.Equal("01111111111", claim.EmergencyContact)
			return &renewal.Request{ID: id.NewRequestID(), Type: renewal.TypeDrivingLicense}, nil
		})

	req := testutil.NewMultipartRequest(s.T(), http.MethodPost, "/renewals/driving-license", map[string]string{
		"license_number":    "L1",
		"issue_date":        "2020-01-01",
		"expiry_date":       "2030-01-01",
		"nationality":       "Egyptian",
		"license_class":     "B",
		"emergency_contact": "01111111111",
	}, map[string][]byte{"picture": []byte("jpeg")})
	rr := testutil.DoRequest(s.router, testutil.AsCitizen(req, string(citizen)))

	s.Equal(http.StatusCreated, rr.Code, rr.Body.String())
}

func (s *HandlerSuite) TestSubmitBadDateNeverReachesWorkflow() {
	form := s.passportForm()
	form["issue_date"] = "04/07/2023"

	req := testutil.NewMultipartRequest(s.T(), http.MethodPost, "/renewals/passport", form,
		map[string][]byte{"picture": []byte("jpeg")})
	rr := testutil.DoRequest(s.router, testutil.AsCitizen(req, string(citizen)))

	s.Equal(http.StatusBadRequest, rr.Code)
	body := testutil.UnmarshalResponse[errorBody](s.T(), rr)
	s.Equal(string(dErrors.CodeValidation), body.Error)
}

func (s *HandlerSuite) TestSubmitUnknownLicenseClass() {
	req := testutil.NewMultipartRequest(s.T(), http.MethodPost, "/renewals/driving-license", map[string]string{
		"license_number": "L1",
		"issue_date":     "2020-01-01",
		"expiry_date":    "2030-01-01",
		"license_class":  "Z",
	}, nil)
	rr := testutil.DoRequest(s.router, testutil.AsCitizen(req, string(citizen)))

	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerSuite) TestSubmitPropagatesWorkflowMessage() {
	s.workflow.EXPECT().Submit(gomock.Any(), citizen, gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeConflict, "You already have a pending request."))

	req := testutil.NewMultipartRequest(s.T(), http.MethodPost, "/renewals/passport", s.passportForm(),
		map[string][]byte{"picture": []byte("jpeg")})
	rr := testutil.DoRequest(s.router, testutil.AsCitizen(req, string(citizen)))

	s.Equal(http.StatusConflict, rr.Code)
	body := testutil.UnmarshalResponse[errorBody](s.T(), rr)
	s.Equal("You already have a pending request.", body.Description)
}

func (s *HandlerSuite) TestListPending() {
	s.workflow.EXPECT().ListPending(gomock.Any()).Return(nil, nil)

	rr := testutil.DoRequest(s.router, testutil.AsInspector(testutil.NewRequest(s.T(), http.MethodGet, "/inspector/renewals"), inspector))

	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`[]`, rr.Body.String())
}

func (s *HandlerSuite) TestListPendingByType() {
	s.workflow.EXPECT().ListPending(gomock.Any(), renewal.TypePassport).
		Return([]renewal.Request{{ID: id.NewRequestID(), Type: renewal.TypePassport}}, nil)

	rr := testutil.DoRequest(s.router, testutil.AsInspector(testutil.NewRequest(s.T(), http.MethodGet, "/inspector/renewals?type=Passport"), inspector))

	s.Equal(http.StatusOK, rr.Code)
	got := testutil.UnmarshalResponse[[]renewal.Request](s.T(), rr)
	s.Len(*got, 1)
}

func (s *HandlerSuite) TestApprove() {
	requestID := id.NewRequestID()
	s.workflow.EXPECT().Approve(gomock.Any(), requestID, inspector).Return(&renewal.Request{ID: requestID}, nil)

	req := testutil.NewRequest(s.T(), http.MethodPost, "/inspector/renewals/"+requestID.String()+"/approve")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusOK, rr.Code)
	s.Equal(renewal.MessageApproved, testutil.UnmarshalResponse[messageBody](s.T(), rr).Message)
}

func (s *HandlerSuite) TestApproveMalformedID() {
	req := testutil.NewRequest(s.T(), http.MethodPost, "/inspector/renewals/not-a-uuid/approve")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerSuite) TestApproveConsistencyFaultHidesDetails() {
	requestID := id.NewRequestID()
	s.workflow.EXPECT().Approve(gomock.Any(), requestID, inspector).
		Return(nil, dErrors.New(dErrors.CodeInconsistentState, "passport for renewal request no longer exists"))

	req := testutil.NewRequest(s.T(), http.MethodPost, "/inspector/renewals/"+requestID.String()+"/approve")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusInternalServerError, rr.Code)
	s.Empty(testutil.UnmarshalResponse[errorBody](s.T(), rr).Description)
}

func (s *HandlerSuite) TestReject() {
	requestID := id.NewRequestID()
	s.workflow.EXPECT().Reject(gomock.Any(), requestID, inspector, "blurry photo").Return(&renewal.Request{ID: requestID}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/inspector/renewals/"+requestID.String()+"/reject",
		map[string]string{"rejectionReason": "blurry photo"})
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusOK, rr.Code)
	s.Equal(renewal.MessageRejected, testutil.UnmarshalResponse[messageBody](s.T(), rr).Message)
}

func (s *HandlerSuite) TestRejectWithoutBody() {
	requestID := id.NewRequestID()
	s.workflow.EXPECT().Reject(gomock.Any(), requestID, inspector, "").Return(&renewal.Request{ID: requestID}, nil)

	req := testutil.NewRequest(s.T(), http.MethodPost, "/inspector/renewals/"+requestID.String()+"/reject")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusOK, rr.Code)
}

func (s *HandlerSuite) TestRejectUnknownRequest() {
	requestID := id.NewRequestID()
	s.workflow.EXPECT().Reject(gomock.Any(), requestID, inspector, "").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "The request does not exist."))

	req := testutil.NewRequest(s.T(), http.MethodPost, "/inspector/renewals/"+requestID.String()+"/reject")
	rr := testutil.DoRequest(s.router, testutil.AsInspector(req, inspector))

	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal("The request does not exist.", testutil.UnmarshalResponse[errorBody](s.T(), rr).Description)
}
