package service

import (
	"testing"
	"time"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/mocks"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuditServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockSearchHistoryRepositoryInterface
	service *AuditService
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockSearchHistoryRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.repo)
	s.service.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuditServiceTestSuite) TestSaveSearchHistory() {
	s.repo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(row *models.UISearchHistory) error {
			s.Equal("OPENLAB", row.AppID)
			s.Equal("resv-grid", row.ControlID)
			s.Equal("yyj1204", row.UserID)
			s.Equal(`{"line":"LINE1"}`, row.SearchValue)
			s.Equal(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), row.SearchTime)
			return nil
		})

	err := s.service.SaveSearchHistory(&SearchHistoryRequest{
		AppID:       " OPENLAB ",
		ControlID:   " resv-grid ",
		UserID:      " yyj1204 ",
		SearchValue: ` {"line":"LINE1"} `,
	})
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestSaveSearchHistoryValidatesRequest() {
	err := s.service.SaveSearchHistory(&SearchHistoryRequest{AppID: "OPENLAB"})
	s.True(apperrors.IsValidation(err))
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
