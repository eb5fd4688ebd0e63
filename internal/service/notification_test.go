package service

import (
	"testing"
	"time"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/mocks"
	"openlab-reservation-backend/internal/repository"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	repo         *mocks.MockNotificationRepositoryInterface
	employeeRepo *mocks.MockEmployeeRepositoryInterface
	service      *NotificationService
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockNotificationRepositoryInterface(s.ctrl)
	s.employeeRepo = mocks.NewMockEmployeeRepositoryInterface(s.ctrl)
	s.service = NewNotificationService(s.repo, s.employeeRepo)
	s.service.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}
}

func (s *NotificationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NotificationServiceTestSuite) TestListReceiversRequiresIssueNo() {
	_, err := s.service.ListReceivers("  ", "0")
	s.True(apperrors.IsValidation(err))
}

func (s *NotificationServiceTestSuite) TestListReceiversBlankSeqMeansPreApproval() {
	s.repo.EXPECT().ListRecipients("RESV-A", "0").Return([]repository.RecipientRow{}, nil)

	receivers, err := s.service.ListReceivers("RESV-A", "")
	s.Require().NoError(err)
	s.Empty(receivers)
}

func (s *NotificationServiceTestSuite) TestListReceiversDeduplicatesByUserID() {
	s.repo.EXPECT().ListRecipients("RESV-A", "0").Return([]repository.RecipientRow{
		{UserID: "yyj1204", UserName: "유연재", SingleMailAddr: "yyj1204@samsung.com"},
		{UserID: "YYJ1204", UserName: "유연재", SingleMailAddr: "yyj1204@samsung.com"},
		{UserID: "kcs0301", UserName: "김철수", SingleMailAddr: "kcs0301@samsung.com"},
	}, nil)

	receivers, err := s.service.ListReceivers("RESV-A", "0")
	s.Require().NoError(err)
	s.Require().Len(receivers, 2)
	s.Equal("yyj1204", receivers[0].UserID)
	s.Equal("kcs0301", receivers[1].UserID)
}

func (s *NotificationServiceTestSuite) templateRows() []models.ApprovalNotification {
	return []models.ApprovalNotification{
		{NotiUserID: "hqadmin", NotiUserName: "관리자", NotiSingleMailAddr: "hqadmin@samsung.com"},
		{NotiUserID: "yyj1204", NotiUserName: "유연재", NotiSingleMailAddr: "yyj1204@samsung.com"},
	}
}

func (s *NotificationServiceTestSuite) TestApplyNoticeTemplate() {
	s.repo.EXPECT().ListForIssueSeq("NOTICE-ESD 측정", "0").Return(s.templateRows(), nil)
	s.repo.EXPECT().ListByIssue("RESV-A").Return([]models.ApprovalNotification{
		{NotiUserID: "yyj1204"},
	}, nil)
	s.employeeRepo.EXPECT().GetByUserID("kcs0301").Return(&models.Employee{
		UserID: "kcs0301", HName: "김철수", SingleMailAddr: "kcs0301@samsung.com",
	}, nil)
	s.repo.EXPECT().
		InsertAll(gomock.Any()).
		DoAndReturn(func(rows []models.ApprovalNotification) error {
			// yyj1204 already on the issue; hqadmin from template plus requester
			s.Require().Len(rows, 2)
			s.Equal("hqadmin", rows[0].NotiUserID)
			s.Equal("kcs0301", rows[1].NotiUserID)
			s.Equal("RESV-A", rows[0].IssueNo)
			s.Equal("0", rows[0].ApprovalSeq)
			return nil
		})

	inserted, err := s.service.ApplyNoticeTemplate(&NoticeTemplateRequest{
		IssueNo:     "RESV-A",
		ReqAnalType: "ESD 측정",
		ReqUserID:   "kcs0301",
		Site:        "HQ",
	})
	s.Require().NoError(err)
	s.Equal(2, inserted)
}

func (s *NotificationServiceTestSuite) TestApplyNoticeTemplateSkipsApprover() {
	s.repo.EXPECT().ListForIssueSeq("NOTICE-ESD 측정", "0").Return(s.templateRows(), nil)
	s.repo.EXPECT().ListByIssue("RESV-A").Return(nil, nil)
	s.repo.EXPECT().
		InsertAll(gomock.Any()).
		DoAndReturn(func(rows []models.ApprovalNotification) error {
			s.Require().Len(rows, 1)
			s.Equal("yyj1204", rows[0].NotiUserID)
			return nil
		})

	inserted, err := s.service.ApplyNoticeTemplate(&NoticeTemplateRequest{
		IssueNo:     "RESV-A",
		ReqAnalType: "ESD 측정",
		AppUserID:   "HQADMIN",
	})
	s.Require().NoError(err)
	s.Equal(1, inserted)
}

func (s *NotificationServiceTestSuite) TestApplyNoticeTemplateDefaultsAnalType() {
	s.repo.EXPECT().ListForIssueSeq("NOTICE--", "0").Return(nil, nil)
	s.repo.EXPECT().ListByIssue("RESV-A").Return(nil, nil)
	s.repo.EXPECT().InsertAll(gomock.Nil()).Return(nil)

	inserted, err := s.service.ApplyNoticeTemplate(&NoticeTemplateRequest{IssueNo: "RESV-A"})
	s.Require().NoError(err)
	s.Zero(inserted)
}

func (s *NotificationServiceTestSuite) TestApplyNoticeTemplateOutsideHQUsesBareTemplate() {
	s.repo.EXPECT().ListForIssueSeq("NOTICE--", "0").Return(nil, nil)
	s.repo.EXPECT().ListByIssue("RESV-A").Return(nil, nil)
	s.repo.EXPECT().InsertAll(gomock.Nil()).Return(nil)

	_, err := s.service.ApplyNoticeTemplate(&NoticeTemplateRequest{
		IssueNo:     "RESV-A",
		ReqAnalType: "ESD 측정",
		Site:        "FAB",
	})
	s.NoError(err)
}

func (s *NotificationServiceTestSuite) TestApplyNoticeTemplateResolvesRequesterByEmpNo() {
	s.repo.EXPECT().ListForIssueSeq("NOTICE--", "0").Return(nil, nil)
	s.repo.EXPECT().ListByIssue("RESV-A").Return(nil, nil)
	s.employeeRepo.EXPECT().GetByUserID("E0002").Return(nil, gorm.ErrRecordNotFound)
	s.employeeRepo.EXPECT().GetByEmpNo("E0002").Return(&models.Employee{
		UserID: "kcs0301", HName: "김철수",
	}, nil)
	s.repo.EXPECT().
		InsertAll(gomock.Any()).
		DoAndReturn(func(rows []models.ApprovalNotification) error {
			s.Require().Len(rows, 1)
			s.Equal("kcs0301", rows[0].NotiUserID)
			return nil
		})

	inserted, err := s.service.ApplyNoticeTemplate(&NoticeTemplateRequest{
		IssueNo:   "RESV-A",
		ReqUserID: "E0002",
	})
	s.Require().NoError(err)
	s.Equal(1, inserted)
}

func (s *NotificationServiceTestSuite) TestApplyNoticeTemplateRequiresIssueNo() {
	_, err := s.service.ApplyNoticeTemplate(&NoticeTemplateRequest{})
	s.True(apperrors.IsValidation(err))
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
