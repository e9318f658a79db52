package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"monastery-guide/internal/domain"
)

func newTestBooking(t *testing.T) *BookingService {
	t.Helper()
	svc, err := NewBookingService(testCatalog(), nil)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.Local) }
	return svc
}

func validBooking() domain.BookingRequest {
	return domain.BookingRequest{
		VisitDate:    "2024-03-12",
		VisitTime:    "10:00",
		VisitorCount: 3,
		GuidedTour:   "english",
		VisitorName:  "Tashi",
		VisitorEmail: "tashi@example.com",
	}
}

func TestQuote_WithGuidedTour(t *testing.T) {
	svc := newTestBooking(t)
	q, err := svc.Quote(1, validBooking())
	require.NoError(t, err)
	require.Equal(t, domain.BookingQuote{
		MonasteryID:   1,
		MonasteryName: "Rumtek Monastery",
		VisitorCount:  3,
		BaseAmount:    150,
		GuideAmount:   500,
		TotalAmount:   650,
		Currency:      "INR",
		Payment:       "simulated",
	}, q)
}

func TestQuote_WithoutGuidedTour(t *testing.T) {
	svc := newTestBooking(t)
	req := validBooking()
	req.GuidedTour = "no"
	req.VisitorCount = 1
	req.VisitDate = "2024-03-10"

	q, err := svc.Quote(2, req)
	require.NoError(t, err)
	require.Equal(t, 50, q.TotalAmount)
	require.Zero(t, q.GuideAmount)
}

func TestQuote_Validation(t *testing.T) {
	svc := newTestBooking(t)

	_, err := svc.Quote(999, validBooking())
	expectUsecaseError(t, err, ErrorNotFound, "entity_not_found")

	cases := []struct {
		name   string
		mutate func(*domain.BookingRequest)
		reason string
	}{
		{"bad date", func(r *domain.BookingRequest) { r.VisitDate = "12/03/2024" }, "invalid_visit_date"},
		{"past date", func(r *domain.BookingRequest) { r.VisitDate = "2024-03-09" }, "visit_date_in_past"},
		{"no visitors", func(r *domain.BookingRequest) { r.VisitorCount = 0 }, "invalid_visitor_count"},
		{"no name", func(r *domain.BookingRequest) { r.VisitorName = " " }, "name_required"},
		{"bad email", func(r *domain.BookingRequest) { r.VisitorEmail = "tashi@" }, "invalid_email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBooking()
			tc.mutate(&req)
			_, err := svc.Quote(1, req)
			expectUsecaseError(t, err, ErrorInvalidInput, tc.reason)
		})
	}
}
