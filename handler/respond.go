package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"monastery-guide/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code usecase.ErrorCode) {
	writeJSON(w, status, errorResponse{Error: string(code)})
}

func (h *Handler) writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := mapUseCaseError(err)
	fields := []zap.Field{
		zap.String("correlation_id", correlationID(r.Context())),
		zap.String("code", string(code)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Info("request rejected", fields...)
	}
	writeError(w, status, code)
}

func mapUseCaseError(err error) (int, usecase.ErrorCode) {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		return http.StatusInternalServerError, usecase.ErrorInternal
	}
	switch ucErr.Code {
	case usecase.ErrorInvalidInput:
		return http.StatusBadRequest, ucErr.Code
	case usecase.ErrorNotFound:
		return http.StatusNotFound, ucErr.Code
	case usecase.ErrorNotInitialized:
		return http.StatusServiceUnavailable, ucErr.Code
	case usecase.ErrorUpstream:
		return http.StatusBadGateway, ucErr.Code
	default:
		return http.StatusInternalServerError, usecase.ErrorInternal
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("handler: decode body: %w", err)
	}
	return nil
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
