package usecase

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"monastery-guide/internal/domain"
)

const (
	visitDateLayout    = "2006-01-02"
	pricePerVisitor    = 50
	guidedTourPrice    = 500
	bookingCurrency    = "INR"
	paymentSimulated   = "simulated"
	guidedTourDeclined = "no"
)

type BookingService struct {
	catalog CatalogReader
	logger  *zap.Logger
	now     func() time.Time
}

func NewBookingService(c CatalogReader, logger *zap.Logger) (*BookingService, error) {
	if c == nil {
		return nil, errors.New("usecase: catalog must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{catalog: c, logger: logger, now: time.Now}, nil
}

// Quote validates a booking and prices it. No payment is taken.
func (s *BookingService) Quote(monasteryID int, req domain.BookingRequest) (domain.BookingQuote, error) {
	m, ok := s.catalog.GetByID(monasteryID)
	if !ok {
		return domain.BookingQuote{}, newError(ErrorNotFound, "entity_not_found", &EntityNotFoundError{ID: monasteryID})
	}
	visit, err := time.ParseInLocation(visitDateLayout, strings.TrimSpace(req.VisitDate), time.Local)
	if err != nil {
		return domain.BookingQuote{}, newError(ErrorInvalidInput, "invalid_visit_date", err)
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if visit.Before(today) {
		return domain.BookingQuote{}, newError(ErrorInvalidInput, "visit_date_in_past", nil)
	}
	if req.VisitorCount < 1 {
		return domain.BookingQuote{}, newError(ErrorInvalidInput, "invalid_visitor_count", nil)
	}
	if strings.TrimSpace(req.VisitorName) == "" {
		return domain.BookingQuote{}, newError(ErrorInvalidInput, "name_required", nil)
	}
	if !validEmail(req.VisitorEmail) {
		return domain.BookingQuote{}, newError(ErrorInvalidInput, "invalid_email", nil)
	}

	quote := domain.BookingQuote{
		MonasteryID:   m.ID,
		MonasteryName: m.Name,
		VisitorCount:  req.VisitorCount,
		BaseAmount:    pricePerVisitor * req.VisitorCount,
		Currency:      bookingCurrency,
		Payment:       paymentSimulated,
	}
	if strings.TrimSpace(req.GuidedTour) != guidedTourDeclined {
		quote.GuideAmount = guidedTourPrice
	}
	quote.TotalAmount = quote.BaseAmount + quote.GuideAmount

	s.logger.Info("booking quoted",
		zap.Int("monastery_id", m.ID),
		zap.Int("visitors", req.VisitorCount),
		zap.Int("total", quote.TotalAmount),
	)
	return quote, nil
}
