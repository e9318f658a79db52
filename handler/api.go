package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"monastery-guide/internal/catalog"
	"monastery-guide/internal/domain"
	"monastery-guide/internal/usecase"
)

type statusResponse struct {
	Message string `json:"message"`
}

type monasteriesResponse struct {
	Monasteries []domain.Monastery `json:"monasteries"`
}

type festivalsResponse struct {
	Festivals []domain.Festival `json:"festivals"`
}

type insightResponse struct {
	MonasteryID int              `json:"monasteryId"`
	Topic       domain.TopicKind `json:"topic"`
	HTML        string           `json:"html"`
}

type imagesResponse struct {
	Images []domain.Image `json:"images"`
}

type contactResponse struct {
	Message string `json:"message"`
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Message: statusMessage})
}

func (h *Handler) handleListMonasteries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	order := catalog.SortOrder(strings.ToLower(strings.TrimSpace(q.Get("sort"))))
	if !order.Valid() {
		writeError(w, http.StatusBadRequest, usecase.ErrorInvalidInput)
		return
	}
	writeJSON(w, http.StatusOK, monasteriesResponse{Monasteries: h.catalog.Query(q.Get("q"), order)})
}

func (h *Handler) handleGetMonastery(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	m, ok := h.catalog.GetByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) handlePanorama(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	cfg, ok := h.catalog.Panorama(id)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handleInsight(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	topic := domain.TopicKind(mux.Vars(r)["topic"])
	html, err := h.insights.GetInsight(r.Context(), id, topic)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, insightResponse{MonasteryID: id, Topic: topic, HTML: html})
}

func (h *Handler) handleBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	var req domain.BookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, usecase.ErrorInvalidInput)
		return
	}
	quote, err := h.booking.Quote(id, req)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *Handler) handleFestivals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, festivalsResponse{Festivals: h.catalog.Festivals()})
}

func (h *Handler) handleGetFestival(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	f, ok := h.catalog.FestivalByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *Handler) handleAudioGuide(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	lang := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang")))
	if lang == "" {
		lang = catalog.DefaultAudioLanguage
	}
	if !catalog.AudioLanguageSupported(lang) {
		writeError(w, http.StatusBadRequest, usecase.ErrorInvalidInput)
		return
	}
	guide, ok := h.catalog.AudioGuide(id, lang)
	if !ok {
		writeError(w, http.StatusNotFound, usecase.ErrorNotFound)
		return
	}
	writeJSON(w, http.StatusOK, guide)
}

func (h *Handler) handleImages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	num := 0
	if raw := strings.TrimSpace(q.Get("num")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, usecase.ErrorInvalidInput)
			return
		}
		num = n
	}
	images, err := h.gallery.Images(r.Context(), q.Get("q"), num)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, imagesResponse{Images: images})
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := decodeBody(r, &msg); err != nil {
		writeError(w, http.StatusBadRequest, usecase.ErrorInvalidInput)
		return
	}
	ack, err := h.contact.Submit(msg)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{Message: ack})
}

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, usecase.ErrorInvalidInput)
		return
	}
	ack, err := h.contact.Subscribe(req.Email)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{Message: ack})
}
