package service

import (
	"testing"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/mocks"
	"openlab-reservation-backend/internal/repository"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	repo          *mocks.MockEquipmentAuthRepositoryInterface
	employeeRepo  *mocks.MockEmployeeRepositoryInterface
	equipmentRepo *mocks.MockEquipmentRepositoryInterface
	service       *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockEquipmentAuthRepositoryInterface(s.ctrl)
	s.employeeRepo = mocks.NewMockEmployeeRepositoryInterface(s.ctrl)
	s.equipmentRepo = mocks.NewMockEquipmentRepositoryInterface(s.ctrl)
	s.service = NewAuthService(s.repo, s.employeeRepo, s.equipmentRepo)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthServiceTestSuite) employee() *models.Employee {
	return &models.Employee{
		UserID: "yyj1204", EmpNo: "E0001", HName: "유연재",
		SingleID: "yyj1204", DeptCode: "CAS2", DeptName: "CAS2 BOND",
	}
}

func (s *AuthServiceTestSuite) TestCheckReceptionNormalizesInputs() {
	s.repo.EXPECT().HasAuthority("HQ", "AWB07B2", "RESV", "E0001", "yyj1204").Return(true, nil)

	ok, err := s.service.CheckReception(&CheckReceptionRequest{
		Site:     " hq ",
		EqpName:  " awb07b2 ",
		AuthType: "anything",
		EmpNo:    " e0001 ",
		SingleID: " YYJ1204 ",
	})
	s.Require().NoError(err)
	s.True(ok)
}

func (s *AuthServiceTestSuite) TestCheckReceptionAdminKind() {
	s.repo.EXPECT().HasAuthority("HQ", "AWB07B2", "ADMIN", "E0001", "yyj1204").Return(false, nil)

	ok, err := s.service.CheckReception(&CheckReceptionRequest{
		Site: "HQ", EqpName: "AWB07B2", AuthType: "admin", EmpNo: "E0001", SingleID: "yyj1204",
	})
	s.Require().NoError(err)
	s.False(ok)
}

func (s *AuthServiceTestSuite) TestCheckReceptionValidatesRequest() {
	_, err := s.service.CheckReception(&CheckReceptionRequest{Site: "HQ"})
	s.True(apperrors.IsValidation(err))
}

func (s *AuthServiceTestSuite) TestListAuthorizationsNormalizesFilters() {
	s.repo.EXPECT().List("HQ", "AWB07B2", "RESV").Return([]repository.AuthRow{}, nil)

	_, err := s.service.ListAuthorizations("", " awb07b2 ", " resv ")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestCreateAuthorization() {
	s.employeeRepo.EXPECT().GetByEmpNo("E0001").Return(s.employee(), nil)
	s.equipmentRepo.EXPECT().ExistsByEqpID("AWB07B2").Return(true, nil)
	s.repo.EXPECT().GetByTuple("HQ", "AWB07B2", "RESV", "E0001").Return(nil, gorm.ErrRecordNotFound)
	s.repo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(auth *models.EquipmentAuth) error {
			s.Equal("HQ", auth.Site)
			s.Equal("AWB07B2", auth.EqpName)
			s.Equal("RESV", auth.AuthType)
			s.Equal("E0001", auth.EmpNo)
			auth.ID = 11
			return nil
		})

	row, err := s.service.CreateAuthorization(&AuthUpsertRequest{
		EqpName: " awb07b2 ", EmpNo: " e0001 ",
	})
	s.Require().NoError(err)
	s.Equal(uint(11), row.ID)
	s.Equal("유연재", row.EmpName)
	s.Equal("yyj1204", row.UserID)
}

func (s *AuthServiceTestSuite) TestCreateAuthorizationIdempotent() {
	existing := &models.EquipmentAuth{ID: 4, Site: "HQ", EqpName: "AWB07B2", AuthType: "RESV", EmpNo: "E0001"}
	s.employeeRepo.EXPECT().GetByEmpNo("E0001").Return(s.employee(), nil)
	s.equipmentRepo.EXPECT().ExistsByEqpID("AWB07B2").Return(true, nil)
	s.repo.EXPECT().GetByTuple("HQ", "AWB07B2", "RESV", "E0001").Return(existing, nil)

	row, err := s.service.CreateAuthorization(&AuthUpsertRequest{EqpName: "AWB07B2", EmpNo: "E0001"})
	s.Require().NoError(err)
	s.Equal(uint(4), row.ID)
}

func (s *AuthServiceTestSuite) TestCreateAuthorizationUnknownEmployee() {
	s.employeeRepo.EXPECT().GetByEmpNo("E9999").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.CreateAuthorization(&AuthUpsertRequest{EqpName: "AWB07B2", EmpNo: "E9999"})
	s.True(apperrors.IsValidation(err))
}

func (s *AuthServiceTestSuite) TestCreateAuthorizationUnknownEquipment() {
	s.employeeRepo.EXPECT().GetByEmpNo("E0001").Return(s.employee(), nil)
	s.equipmentRepo.EXPECT().ExistsByEqpID("NOPE01").Return(false, nil)

	_, err := s.service.CreateAuthorization(&AuthUpsertRequest{EqpName: "NOPE01", EmpNo: "E0001"})
	s.True(apperrors.IsValidation(err))
}

func (s *AuthServiceTestSuite) TestCreateAuthorizationRequiresFields() {
	_, err := s.service.CreateAuthorization(&AuthUpsertRequest{EqpName: "", EmpNo: ""})
	s.True(apperrors.IsValidation(err))
}

func (s *AuthServiceTestSuite) TestDeleteAuthorization() {
	s.repo.EXPECT().Delete(uint(4)).Return(nil)
	s.NoError(s.service.DeleteAuthorization(4))
}

func (s *AuthServiceTestSuite) TestDeleteAuthorizationNotFound() {
	s.repo.EXPECT().Delete(uint(4)).Return(gorm.ErrRecordNotFound)
	s.ErrorIs(s.service.DeleteAuthorization(4), apperrors.ErrEquipmentAuthNotFound)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
