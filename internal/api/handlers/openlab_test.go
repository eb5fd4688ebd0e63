package handlers

import (
	"net/http"
	"testing"

	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/repository"
	"openlab-reservation-backend/internal/service"
	"openlab-reservation-backend/internal/service/mocks"
	"openlab-reservation-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OpenLabHandlerTestSuite struct {
	testutils.HTTPTestSuite
	ctrl            *gomock.Controller
	lookupSvc       *mocks.MockLookupServiceInterface
	reservationSvc  *mocks.MockReservationServiceInterface
	equipmentSvc    *mocks.MockEquipmentServiceInterface
	authSvc         *mocks.MockAuthServiceInterface
	notificationSvc *mocks.MockNotificationServiceInterface
}

func (s *OpenLabHandlerTestSuite) SetupTest() {
	s.SetupHTTPTest()
	s.ctrl = gomock.NewController(s.T())
	s.lookupSvc = mocks.NewMockLookupServiceInterface(s.ctrl)
	s.reservationSvc = mocks.NewMockReservationServiceInterface(s.ctrl)
	s.equipmentSvc = mocks.NewMockEquipmentServiceInterface(s.ctrl)
	s.authSvc = mocks.NewMockAuthServiceInterface(s.ctrl)
	s.notificationSvc = mocks.NewMockNotificationServiceInterface(s.ctrl)

	handler := NewOpenLabHandler(s.lookupSvc, s.reservationSvc, s.equipmentSvc, s.authSvc, s.notificationSvc)
	main := s.Router.Group("/api/main")
	main.GET("/lookups", handler.GetLookups)
	main.GET("/openlab-resv", handler.ListReservations)
	main.GET("/openlab-eqp", handler.ListEquipments)
	main.GET("/openlab-auth", handler.ListAuthorizations)
	main.POST("/openlab-auth", handler.CreateAuthorization)
	main.DELETE("/openlab-auth/:id", handler.DeleteAuthorization)
	main.GET("/openlab-receivers", handler.ListReceivers)
}

func (s *OpenLabHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OpenLabHandlerTestSuite) TestGetLookups() {
	s.lookupSvc.EXPECT().GetLookups("HQ").Return(&service.LookupResponse{
		Lines: []string{"LINE1"},
	}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/main/lookups?site=HQ", nil)
	s.Equal(http.StatusOK, w.Code)

	var response service.LookupResponse
	s.ParseJSONResponse(w, &response)
	s.Equal([]string{"LINE1"}, response.Lines)
}

func (s *OpenLabHandlerTestSuite) TestListReservationsNormalizesSite() {
	s.reservationSvc.EXPECT().
		ListReservations(service.ReservationListRequest{
			PurposeContains: "ALL",
			Site:            "HQ",
		}).
		Return(nil, nil)

	w := s.MakeRequest(http.MethodGet, "/api/main/openlab-resv?purpose=ALL&site=hq", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *OpenLabHandlerTestSuite) TestListReservationsBlankSiteDefaultsToHQ() {
	s.reservationSvc.EXPECT().
		ListReservations(service.ReservationListRequest{Site: "HQ"}).
		Return(nil, nil)

	w := s.MakeRequest(http.MethodGet, "/api/main/openlab-resv", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *OpenLabHandlerTestSuite) TestListEquipmentsWithCounts() {
	s.equipmentSvc.EXPECT().
		ListWithReservationCounts("LINE1", "").
		Return([]repository.EquipmentCountRow{{EqpID: "AWB07B2", ReservationCount: 2}}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/main/openlab-eqp?lineId=LINE1", nil)
	s.Equal(http.StatusOK, w.Code)

	var rows []repository.EquipmentCountRow
	s.ParseJSONResponse(w, &rows)
	s.Require().Len(rows, 1)
	s.Equal(int64(2), rows[0].ReservationCount)
}

func (s *OpenLabHandlerTestSuite) TestListAuthorizations() {
	s.authSvc.EXPECT().
		ListAuthorizations("HQ", "AWB07B2", "RESV").
		Return([]repository.AuthRow{{EqpName: "AWB07B2"}}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/main/openlab-auth?site=HQ&eqpName=AWB07B2&authType=RESV", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *OpenLabHandlerTestSuite) TestCreateAuthorization() {
	s.authSvc.EXPECT().
		CreateAuthorization(gomock.Any()).
		DoAndReturn(func(req *service.AuthUpsertRequest) (*repository.AuthRow, error) {
			s.Equal("AWB07B2", req.EqpName)
			s.Equal("E0001", req.EmpNo)
			return &repository.AuthRow{ID: 5, EqpName: "AWB07B2"}, nil
		})

	w := s.MakeRequest(http.MethodPost, "/api/main/openlab-auth", map[string]any{
		"eqpName": "AWB07B2", "empNo": "E0001",
	})
	s.Equal(http.StatusOK, w.Code)

	var row repository.AuthRow
	s.ParseJSONResponse(w, &row)
	s.Equal(uint(5), row.ID)
}

func (s *OpenLabHandlerTestSuite) TestCreateAuthorizationValidationError() {
	s.authSvc.EXPECT().
		CreateAuthorization(gomock.Any()).
		Return(nil, apperrors.NewValidationError("empNo", "employee does not exist"))

	w := s.MakeRequest(http.MethodPost, "/api/main/openlab-auth", map[string]any{
		"eqpName": "AWB07B2", "empNo": "E9999",
	})
	s.AssertErrorResponse(w, http.StatusBadRequest, "empNo")
}

func (s *OpenLabHandlerTestSuite) TestDeleteAuthorization() {
	s.authSvc.EXPECT().DeleteAuthorization(uint(5)).Return(nil)

	w := s.MakeRequest(http.MethodDelete, "/api/main/openlab-auth/5", nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *OpenLabHandlerTestSuite) TestDeleteAuthorizationNotFound() {
	s.authSvc.EXPECT().DeleteAuthorization(uint(5)).Return(apperrors.ErrEquipmentAuthNotFound)

	w := s.MakeRequest(http.MethodDelete, "/api/main/openlab-auth/5", nil)
	s.AssertErrorResponse(w, http.StatusNotFound, "Authorization not found")
}

func (s *OpenLabHandlerTestSuite) TestListReceivers() {
	s.notificationSvc.EXPECT().
		ListReceivers("RESV-A", "0").
		Return([]service.ReceiverResponse{{UserID: "yyj1204"}}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/main/openlab-receivers?issueNo=RESV-A&approvalSeq=0", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *OpenLabHandlerTestSuite) TestListReceiversRequiresIssueNo() {
	s.notificationSvc.EXPECT().
		ListReceivers("", "").
		Return(nil, apperrors.NewValidationError("issueNo", "issueNo is required"))

	w := s.MakeRequest(http.MethodGet, "/api/main/openlab-receivers", nil)
	s.AssertErrorResponse(w, http.StatusBadRequest, "issueNo")
}

func TestOpenLabHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OpenLabHandlerTestSuite))
}
