package handlers

import (
	"net/http"
	"testing"

	"openlab-reservation-backend/internal/database/models"
	"openlab-reservation-backend/internal/service/mocks"
	"openlab-reservation-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EquipmentHandlerTestSuite struct {
	testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	service *mocks.MockEquipmentServiceInterface
}

func (s *EquipmentHandlerTestSuite) SetupTest() {
	s.SetupHTTPTest()
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockEquipmentServiceInterface(s.ctrl)

	handler := NewEquipmentHandler(s.service)
	s.Router.GET("/api/equipments", handler.ListEquipments)
	s.Router.GET("/api/equipments/lines", handler.GetLines)
	s.Router.GET("/api/equipments/classes", handler.GetClasses)
}

func (s *EquipmentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EquipmentHandlerTestSuite) TestListEquipments() {
	s.service.EXPECT().
		ListEquipments("LINE1", "BOND", "").
		Return([]models.Equipment{{EqpID: "AWB07B2"}}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/equipments?lineId=LINE1&largeClass=BOND", nil)
	s.Equal(http.StatusOK, w.Code)

	var equipments []models.Equipment
	s.ParseJSONResponse(w, &equipments)
	s.Require().Len(equipments, 1)
	s.Equal("AWB07B2", equipments[0].EqpID)
}

func (s *EquipmentHandlerTestSuite) TestGetLines() {
	s.service.EXPECT().GetLines().Return([]string{"LINE1", "LINE2"}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/equipments/lines", nil)
	s.Equal(http.StatusOK, w.Code)

	var lines []string
	s.ParseJSONResponse(w, &lines)
	s.Equal([]string{"LINE1", "LINE2"}, lines)
}

func (s *EquipmentHandlerTestSuite) TestGetClasses() {
	s.service.EXPECT().GetClasses("LINE1").Return([]string{"BOND"}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/equipments/classes?lineId=LINE1", nil)
	s.Equal(http.StatusOK, w.Code)

	var classes []string
	s.ParseJSONResponse(w, &classes)
	s.Equal([]string{"BOND"}, classes)
}

func TestEquipmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentHandlerTestSuite))
}
