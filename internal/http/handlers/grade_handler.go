package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"site_grader/internal/domain/models"
	"site_grader/internal/pkg/errors"
	"site_grader/internal/service"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// GradeService is the one capability the serving layer consumes from
// the engine.
type GradeService interface {
	Grade(ctx context.Context, url string) (*models.GradeReport, error)
}

type GradeHandler struct {
	service GradeService
	// group collapses concurrent grade requests for the same
	// normalized URL into a single run.
	group singleflight.Group
	log   *log.Logger
}

type GradeRequest struct {
	URL string `json:"url"`
}

// GradeErrorResponse is the terminal-failure shape of the report
// contract: no partial scores, just the cause.
type GradeErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	URL     string `json:"url"`
}

func (r *GradeRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return errors.New("url is empty")
	}
	return nil
}

func NewGradeHandler(service GradeService, log *log.Logger) *GradeHandler {
	return &GradeHandler{
		service: service,
		log:     log,
	}
}

func (h *GradeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`grade handler called`)

	var request GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.WithError(err).Error(`failed to decode request body`)
		sendError(w, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		h.log.WithError(err).Error(`failed to validate request body`)
		sendError(w, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	key := service.NormalizeURL(request.URL)
	result, err, _ := h.group.Do(key, func() (any, error) {
		return h.service.Grade(r.Context(), request.URL)
	})
	if err != nil {
		var fetchErr *models.FetchError
		if errors.As(err, &fetchErr) {
			// Terminal fetch failure is part of the report contract,
			// not a server error.
			writeJSON(w, h.log, http.StatusOK, GradeErrorResponse{
				Success: false,
				Error:   fetchErr.Error(),
				URL:     fetchErr.URL,
			})
			return
		}
		sendError(w, `failed to grade web page`, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, log *log.Logger, status int, body any) {
	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error(`failed to encode response`)
	}
}
