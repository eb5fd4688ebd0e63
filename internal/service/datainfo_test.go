package service

import (
	"testing"

	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/mocks"
	"openlab-reservation-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DataInfoServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	agent   *mocks.MockDataAgentInterface
	service *DataInfoService
}

func (s *DataInfoServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.agent = mocks.NewMockDataAgentInterface(s.ctrl)
	s.service = NewDataInfoService(s.agent)
}

func (s *DataInfoServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DataInfoServiceTestSuite) TestExecuteUnknownPair() {
	_, err := s.service.Execute(&DataInfoRequest{ClassName: "Main", MethodName: "DropTables"})
	s.ErrorIs(err, apperrors.ErrUnknownDataInfoMethod)
}

func (s *DataInfoServiceTestSuite) TestExecuteDispatchIsCaseInsensitive() {
	s.agent.EXPECT().Fill(gomock.Any()).Return(&repository.DataTable{}, nil)

	_, err := s.service.Execute(&DataInfoRequest{ClassName: " main ", MethodName: " GetAdmin "})
	s.NoError(err)
}

func (s *DataInfoServiceTestSuite) TestGetEmployeeListWithoutFilter() {
	s.agent.EXPECT().
		Fill(gomock.Any()).
		DoAndReturn(func(query string, args ...interface{}) (*repository.DataTable, error) {
			s.Contains(query, "EMP_NO")
			s.Contains(query, "USER_NAME")
			s.Contains(query, "SINGLE_ID")
			s.NotContains(query, "WHERE")
			s.Empty(args)
			return &repository.DataTable{}, nil
		})

	_, err := s.service.Execute(&DataInfoRequest{ClassName: "Controls", MethodName: "GetEmployeeList"})
	s.NoError(err)
}

func (s *DataInfoServiceTestSuite) TestGetEmployeeListNameFilter() {
	s.agent.EXPECT().
		Fill(gomock.Any(), "%유연재%").
		DoAndReturn(func(query string, args ...interface{}) (*repository.DataTable, error) {
			s.Contains(query, "h_name LIKE ?")
			return &repository.DataTable{}, nil
		})

	_, err := s.service.Execute(&DataInfoRequest{
		ClassName:  "Controls",
		MethodName: "GetEmployeeList",
		Params:     map[string]any{"userNames": []any{"유연재"}},
	})
	s.NoError(err)
}

func (s *DataInfoServiceTestSuite) TestGetEquipmentListLineFilter() {
	s.agent.EXPECT().
		Fill(gomock.Any(), "LINE1").
		DoAndReturn(func(query string, args ...interface{}) (*repository.DataTable, error) {
			s.Contains(query, "INPUT_KEY")
			s.Contains(query, "INPUT_NAME")
			s.Contains(query, "line_id = ?")
			return &repository.DataTable{}, nil
		})

	_, err := s.service.Execute(&DataInfoRequest{
		ClassName:  "Main",
		MethodName: "GetEquipmentList",
		Params:     map[string]any{"lineId": "LINE1"},
	})
	s.NoError(err)
}

func TestDataInfoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DataInfoServiceTestSuite))
}

func TestFirstString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", " 유연재 ", "유연재"},
		{"empty any slice", []any{}, ""},
		{"any slice", []any{" LINE1 ", "LINE2"}, "LINE1"},
		{"nested any slice", []any{[]any{"LINE1"}}, "LINE1"},
		{"string slice", []string{" LINE1 "}, "LINE1"},
		{"empty string slice", []string{}, ""},
		{"number stringified", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstString(tt.input))
		})
	}
}
