package service

import (
	"testing"

	"openlab-reservation-backend/internal/database/models"
	"openlab-reservation-backend/internal/mocks"
	"openlab-reservation-backend/internal/repository"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockEmployeeRepositoryInterface
	service *EmployeeService
}

func (s *EmployeeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockEmployeeRepositoryInterface(s.ctrl)
	s.service = NewEmployeeService(s.repo)
}

func (s *EmployeeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EmployeeServiceTestSuite) TestListEmployeesBlankSiteMeansEveryone() {
	s.repo.EXPECT().GetAll().Return([]models.Employee{}, nil)

	_, err := s.service.ListEmployees("  ")
	s.NoError(err)
}

func (s *EmployeeServiceTestSuite) TestListEmployeesNormalizesSite() {
	s.repo.EXPECT().GetBySite("FAB").Return([]models.Employee{}, nil)

	_, err := s.service.ListEmployees(" fab ")
	s.NoError(err)
}

func (s *EmployeeServiceTestSuite) TestListAdminCandidatesDeduplicatesByEmpNo() {
	s.repo.EXPECT().GetAdminCandidates("HQ").Return([]repository.AdminCandidateRow{
		{EmpNo: "ADM0001", UserID: "hqadmin", HName: "관리자", SingleID: "hqadmin"},
		{EmpNo: "ADM0001", UserID: "hqadmin", HName: "관리자", SingleID: "hqadmin"},
		{EmpNo: "E0001", UserID: "yyj1204", HName: "유연재", SingleID: "yyj1204"},
	}, nil)

	candidates, err := s.service.ListAdminCandidates("hq")
	s.Require().NoError(err)
	s.Require().Len(candidates, 2)
	s.Equal("ADM0001", candidates[0].InputKey)
	s.Equal("hqadmin", candidates[0].InputValue)
	s.Equal("관리자", candidates[0].Name)
	s.Equal("E0001", candidates[1].InputKey)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
