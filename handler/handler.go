package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"monastery-guide/internal/catalog"
	"monastery-guide/internal/domain"
	"monastery-guide/internal/usecase"
)

const (
	headerCorrelationID = "X-Correlation-Id"
	maxRequestBodyBytes = 64 << 10
	statusMessage       = "Hello from Backend API!"
)

type CatalogReader interface {
	GetByID(id int) (domain.Monastery, bool)
	Query(term string, order catalog.SortOrder) []domain.Monastery
	Festivals() []domain.Festival
	FestivalByID(id int) (domain.Festival, bool)
	Panorama(id int) (domain.PanoramaConfig, bool)
	AudioGuide(id int, lang string) (domain.AudioGuide, bool)
}

type ChatUseCase interface {
	StartSession() string
	EndSession(sessionID string)
	History(sessionID string) ([]domain.Turn, error)
	Submit(ctx context.Context, view usecase.ChatView, sessionID, input string) (domain.TurnState, error)
}

type InsightUseCase interface {
	GetInsight(ctx context.Context, entityID int, topic domain.TopicKind) (string, error)
}

type GalleryUseCase interface {
	Images(ctx context.Context, query string, num int) ([]domain.Image, error)
}

type BookingUseCase interface {
	Quote(monasteryID int, req domain.BookingRequest) (domain.BookingQuote, error)
}

type ContactUseCase interface {
	Submit(msg domain.ContactMessage) (string, error)
	Subscribe(email string) (string, error)
}

// Deps are the collaborators a Handler serves. All are required except
// SiteRoot; without it no static files are served.
type Deps struct {
	Catalog  CatalogReader
	Chat     ChatUseCase
	Insights InsightUseCase
	Gallery  GalleryUseCase
	Booking  BookingUseCase
	Contact  ContactUseCase
	Logger   *zap.Logger
	SiteRoot string
}

type Handler struct {
	catalog  CatalogReader
	chat     ChatUseCase
	insights InsightUseCase
	gallery  GalleryUseCase
	booking  BookingUseCase
	contact  ContactUseCase
	logger   *zap.Logger
	root     http.Handler
	proxy    *httpadapter.HandlerAdapter
}

func NewHandler(d Deps) (*Handler, error) {
	switch {
	case d.Catalog == nil:
		return nil, errors.New("handler: catalog must not be nil")
	case d.Chat == nil:
		return nil, errors.New("handler: chat use case must not be nil")
	case d.Insights == nil:
		return nil, errors.New("handler: insight use case must not be nil")
	case d.Gallery == nil:
		return nil, errors.New("handler: gallery use case must not be nil")
	case d.Booking == nil:
		return nil, errors.New("handler: booking use case must not be nil")
	case d.Contact == nil:
		return nil, errors.New("handler: contact use case must not be nil")
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		catalog:  d.Catalog,
		chat:     d.Chat,
		insights: d.Insights,
		gallery:  d.Gallery,
		booking:  d.Booking,
		contact:  d.Contact,
		logger:   logger,
	}
	// Middleware wraps the router itself so unmatched routes get it too.
	h.root = h.correlationMiddleware(h.recoverMiddleware(h.logMiddleware(h.routes(strings.TrimSpace(d.SiteRoot)))))
	h.proxy = httpadapter.New(h.root)
	return h, nil
}

func (h *Handler) routes(siteRoot string) *mux.Router {
	r := mux.NewRouter()

	// Each path is registered once; methodRoutes answers 405 for the rest.
	api := r.PathPrefix("/api").Subrouter()
	api.Handle("/message", methodRoutes{http.MethodGet: h.handleStatus})
	api.Handle("/monasteries", methodRoutes{http.MethodGet: h.handleListMonasteries})
	api.Handle("/monasteries/{id:[0-9]+}", methodRoutes{http.MethodGet: h.handleGetMonastery})
	api.Handle("/monasteries/{id:[0-9]+}/panorama", methodRoutes{http.MethodGet: h.handlePanorama})
	api.Handle("/monasteries/{id:[0-9]+}/insights/{topic}", methodRoutes{http.MethodGet: h.handleInsight})
	api.Handle("/monasteries/{id:[0-9]+}/bookings", methodRoutes{http.MethodPost: h.handleBooking})
	api.Handle("/monasteries/{id:[0-9]+}/audio-guide", methodRoutes{http.MethodGet: h.handleAudioGuide})
	api.Handle("/festivals", methodRoutes{http.MethodGet: h.handleFestivals})
	api.Handle("/festivals/{id:[0-9]+}", methodRoutes{http.MethodGet: h.handleGetFestival})
	api.Handle("/images", methodRoutes{http.MethodGet: h.handleImages})
	api.Handle("/chat/sessions", methodRoutes{http.MethodPost: h.handleStartSession})
	api.Handle("/chat/sessions/{sid}", methodRoutes{
		http.MethodGet:    h.handleHistory,
		http.MethodDelete: h.handleEndSession,
	})
	api.Handle("/chat/sessions/{sid}/messages", methodRoutes{http.MethodPost: h.handleSubmit})
	api.Handle("/contact", methodRoutes{http.MethodPost: h.handleContact})
	api.Handle("/newsletter", methodRoutes{http.MethodPost: h.handleSubscribe})
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
	})

	if siteRoot != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(siteRoot)))
	}
	return r
}

// methodRoutes dispatches one path by request method.
type methodRoutes map[string]http.HandlerFunc

func (m methodRoutes) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if fn, ok := m[r.Method]; ok {
		fn(w, r)
		return
	}
	allowed := make([]string, 0, len(m))
	for method := range m {
		allowed = append(allowed, method)
	}
	sort.Strings(allowed)
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, usecase.ErrorInvalidInput)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.root.ServeHTTP(w, r)
}
