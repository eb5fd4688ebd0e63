package repository

import (
	"testing"
	"time"

	"openlab-reservation-backend/internal/database/models"
	"openlab-reservation-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type EquipmentRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo *EquipmentRepository
}

func (s *EquipmentRepositoryTestSuite) SetupSuite() {
	s.BaseTestSuite.SetupSuite()
	s.repo = NewEquipmentRepository(s.DB)
}

func (s *EquipmentRepositoryTestSuite) seedCatalog() {
	testutils.MustCreate(s.DB, testutils.NewEquipment("LINE1", "BOND", "AWB07B2"))
	testutils.MustCreate(s.DB, testutils.NewEquipment("LINE1", "BOND", "CDA03A"))
	testutils.MustCreate(s.DB, testutils.NewEquipment("LINE2", "MEASURE", "YMD02A"))
}

func (s *EquipmentRepositoryTestSuite) TestListFiltersCaseInsensitively() {
	s.seedCatalog()

	all, err := s.repo.List(nil, nil, nil)
	s.Require().NoError(err)
	s.Len(all, 3)

	byLine, err := s.repo.List([]string{"line1"}, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(byLine, 2)
	s.Equal("AWB07B2", byLine[0].EqpID)
	s.Equal("CDA03A", byLine[1].EqpID)

	byClass, err := s.repo.List(nil, []string{"measure"}, nil)
	s.Require().NoError(err)
	s.Require().Len(byClass, 1)
	s.Equal("YMD02A", byClass[0].EqpID)
}

func (s *EquipmentRepositoryTestSuite) TestExistsByEqpID() {
	s.seedCatalog()

	exists, err := s.repo.ExistsByEqpID("awb07b2")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByEqpID("NOPE01")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *EquipmentRepositoryTestSuite) TestDistinctLines() {
	s.seedCatalog()

	lines, err := s.repo.DistinctLines()
	s.Require().NoError(err)
	s.Equal([]string{"LINE1", "LINE2"}, lines)
}

func (s *EquipmentRepositoryTestSuite) TestDistinctClassesScopedByLine() {
	s.seedCatalog()

	all, err := s.repo.DistinctClasses(nil)
	s.Require().NoError(err)
	s.Equal([]string{"BOND", "MEASURE"}, all)

	scoped, err := s.repo.DistinctClasses([]string{"line1"})
	s.Require().NoError(err)
	s.Equal([]string{"BOND"}, scoped)
}

func (s *EquipmentRepositoryTestSuite) TestListWithReservationCounts() {
	s.seedCatalog()

	date := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	var busy models.Equipment
	s.Require().NoError(s.DB.Where("eqp_id = ?", "AWB07B2").First(&busy).Error)
	testutils.MustCreate(s.DB, testutils.NewReservation("RESV-A", &busy, "E0001", date))
	testutils.MustCreate(s.DB, testutils.NewReservation("RESV-B", &busy, "E0001", date.Add(time.Hour)))

	rows, err := s.repo.ListWithReservationCounts(nil, nil)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.EqpID] = row.ReservationCount
	}
	s.Equal(int64(2), counts["AWB07B2"])
	s.Equal(int64(0), counts["CDA03A"])
	s.Equal(int64(0), counts["YMD02A"])
}

func (s *EquipmentRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(99999)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestEquipmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentRepositoryTestSuite))
}
