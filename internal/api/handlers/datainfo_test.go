package handlers

import (
	"fmt"
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

type DataInfoHandlerTestSuite struct {
	testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	service *mocks.MockDataInfoServiceInterface
}

func (s *DataInfoHandlerTestSuite) SetupTest() {
	s.SetupHTTPTest()
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockDataInfoServiceInterface(s.ctrl)

	handler := NewDataInfoHandler(s.service)
	s.Router.POST("/api/datainfo/execute", handler.Execute)
}

func (s *DataInfoHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DataInfoHandlerTestSuite) TestExecute() {
	s.service.EXPECT().
		Execute(gomock.Any()).
		DoAndReturn(func(req *service.DataInfoRequest) (*repository.DataTable, error) {
			s.Equal("Controls", req.ClassName)
			s.Equal("GetEmployeeList", req.MethodName)
			return &repository.DataTable{
				Columns: []string{"EMP_NO", "USER_NAME", "SINGLE_ID"},
				Rows: []map[string]any{
					{"EMP_NO": "E0001", "USER_NAME": "유연재", "SINGLE_ID": "yyj1204"},
				},
			}, nil
		})

	w := s.MakeRequest(http.MethodPost, "/api/datainfo/execute", map[string]any{
		"className":  "Controls",
		"methodName": "GetEmployeeList",
		"params":     map[string]any{"userNames": []string{"유연재"}},
	})
	s.Equal(http.StatusOK, w.Code)

	var table repository.DataTable
	s.ParseJSONResponse(w, &table)
	s.Equal([]string{"EMP_NO", "USER_NAME", "SINGLE_ID"}, table.Columns)
	s.Require().Len(table.Rows, 1)
	s.Equal("E0001", table.Rows[0]["EMP_NO"])
}

func (s *DataInfoHandlerTestSuite) TestExecuteUnknownMethod() {
	s.service.EXPECT().
		Execute(gomock.Any()).
		Return(nil, fmt.Errorf("%w: Main.DropTables", apperrors.ErrUnknownDataInfoMethod))

	w := s.MakeRequest(http.MethodPost, "/api/datainfo/execute", map[string]any{
		"className": "Main", "methodName": "DropTables",
	})
	s.AssertErrorResponse(w, http.StatusBadRequest, "unknown datainfo")
}

func TestDataInfoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DataInfoHandlerTestSuite))
}
