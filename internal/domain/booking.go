package domain

// BookingRequest is a visit booking submitted from a monastery page.
type BookingRequest struct {
	VisitDate       string `json:"visitDate"`
	VisitTime       string `json:"visitTime"`
	VisitorCount    int    `json:"visitorCount"`
	GuidedTour      string `json:"guidedTour"`
	VisitorName     string `json:"visitorName"`
	VisitorEmail    string `json:"visitorEmail"`
	VisitorPhone    string `json:"visitorPhone"`
	SpecialRequests string `json:"specialRequests"`
}

// BookingQuote is the simulated price for a booking. No payment is taken.
type BookingQuote struct {
	MonasteryID   int    `json:"monasteryId"`
	MonasteryName string `json:"monasteryName"`
	VisitorCount  int    `json:"visitorCount"`
	BaseAmount    int    `json:"baseAmount"`
	GuideAmount   int    `json:"guideAmount"`
	TotalAmount   int    `json:"totalAmount"`
	Currency      string `json:"currency"`
	Payment       string `json:"payment"`
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
