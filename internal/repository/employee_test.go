package repository

import (
	"testing"

	"openlab-reservation-backend/internal/database/models"
	"openlab-reservation-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type EmployeeRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo *EmployeeRepository
}

func (s *EmployeeRepositoryTestSuite) SetupSuite() {
	s.BaseTestSuite.SetupSuite()
	s.repo = NewEmployeeRepository(s.DB)
}

func (s *EmployeeRepositoryTestSuite) seedDirectory() {
	testutils.MustCreate(s.DB, testutils.NewEmployee("yyj1204", "E0001", "HQ"))
	testutils.MustCreate(s.DB, testutils.NewEmployee("kcs0301", "E0002", "FAB"))
}

func (s *EmployeeRepositoryTestSuite) TestGetBySite() {
	s.seedDirectory()

	hq, err := s.repo.GetBySite("HQ")
	s.Require().NoError(err)
	s.Require().Len(hq, 1)
	s.Equal("yyj1204", hq[0].UserID)

	all, err := s.repo.GetBySite(models.SiteAll)
	s.Require().NoError(err)
	s.Len(all, 2)

	blank, err := s.repo.GetBySite("")
	s.Require().NoError(err)
	s.Len(blank, 2)
}

func (s *EmployeeRepositoryTestSuite) TestGetByUserIDCaseInsensitive() {
	s.seedDirectory()

	employee, err := s.repo.GetByUserID("YYJ1204")
	s.Require().NoError(err)
	s.Equal("E0001", employee.EmpNo)

	_, err = s.repo.GetByUserID("missing")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *EmployeeRepositoryTestSuite) TestGetByEmpNoCaseInsensitive() {
	s.seedDirectory()

	employee, err := s.repo.GetByEmpNo("e0002")
	s.Require().NoError(err)
	s.Equal("kcs0301", employee.UserID)

	_, err = s.repo.GetByEmpNo("E9999")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *EmployeeRepositoryTestSuite) TestGetAdminCandidates() {
	s.seedDirectory()
	testutils.MustCreate(s.DB, &models.EquipmentAuth{
		Site: "HQ", EqpName: "AWB07B2", AuthType: "ADMIN", EmpNo: "E0001",
	})
	testutils.MustCreate(s.DB, &models.EquipmentAuth{
		Site: "HQ", EqpName: "CDA03A", AuthType: "ADMIN", EmpNo: "E0001",
	})
	testutils.MustCreate(s.DB, &models.EquipmentAuth{
		Site: "FAB", EqpName: "YMD02A", AuthType: "RESV", EmpNo: "E0002",
	})

	rows, err := s.repo.GetAdminCandidates("HQ")
	s.Require().NoError(err)
	// one row per grant; the service layer collapses duplicates
	s.Require().Len(rows, 2)
	s.Equal("E0001", rows[0].EmpNo)
	s.Equal("yyj1204", rows[0].UserID)
	s.Equal("yyj1204", rows[0].SingleID)

	fab, err := s.repo.GetAdminCandidates("FAB")
	s.Require().NoError(err)
	s.Empty(fab)
}

func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
