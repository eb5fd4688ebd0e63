package service

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// MailMessage is one reservation event to announce
type MailMessage struct {
	IssueNo string
	Action  string
	Subject string
	To      []string
	Body    string
}

// LogMailer writes mail events to the structured log instead of an SMTP
// relay. The internal mail gateway is not reachable from every deployment,
// so the default dispatcher only records what would have been sent.
type LogMailer struct {
	logger *logrus.Logger
}

// NewLogMailer creates a mailer that logs through the given logger, or the
// standard logger when nil.
func NewLogMailer(logger *logrus.Logger) *LogMailer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogMailer{logger: logger}
}

// Ensure LogMailer implements Mailer
var _ Mailer = (*LogMailer)(nil)

// SendReservationEvent logs the message and never fails
func (m *LogMailer) SendReservationEvent(msg MailMessage) error {
	m.logger.WithFields(logrus.Fields{
		"action":   msg.Action,
		"issue_no": msg.IssueNo,
		"to":       strings.Join(msg.To, ";"),
		"subject":  msg.Subject,
	}).Info("OpenLab mail dispatched")
	m.logger.WithField("issue_no", msg.IssueNo).Infof("OpenLab mail body: %s", msg.Body)
	return nil
}
