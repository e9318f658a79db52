package usecase

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"monastery-guide/internal/domain"
)

const (
	ContactAcknowledgement    = "Thank you for your message! We will get back to you soon."
	NewsletterAcknowledgement = "Thank you for subscribing to our newsletter!"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// ValidateContact checks a contact form submission field by field and
// reports the first problem found.
func ValidateContact(msg domain.ContactMessage) error {
	switch {
	case strings.TrimSpace(msg.Name) == "":
		return newError(ErrorInvalidInput, "name_required", nil)
	case !validEmail(msg.Email):
		return newError(ErrorInvalidInput, "invalid_email", nil)
	case strings.TrimSpace(msg.Subject) == "":
		return newError(ErrorInvalidInput, "subject_required", nil)
	case strings.TrimSpace(msg.Message) == "":
		return newError(ErrorInvalidInput, "message_required", nil)
	}
	return nil
}

type ContactService struct {
	logger *zap.Logger
}

func NewContactService(logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{logger: logger}
}

// Submit validates msg and acknowledges it. Messages are only logged.
func (s *ContactService) Submit(msg domain.ContactMessage) (string, error) {
	if err := ValidateContact(msg); err != nil {
		return "", err
	}
	s.logger.Info("contact message received",
		zap.String("subject", strings.TrimSpace(msg.Subject)),
		zap.Int("length", len(msg.Message)),
	)
	return ContactAcknowledgement, nil
}

// Subscribe validates a newsletter sign-up. Only the address domain is
// logged.
func (s *ContactService) Subscribe(email string) (string, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return "", newError(ErrorInvalidInput, "invalid_email", nil)
	}
	s.logger.Info("newsletter subscription received",
		zap.String("email_domain", email[strings.LastIndex(email, "@")+1:]),
	)
	return NewsletterAcknowledgement, nil
}
