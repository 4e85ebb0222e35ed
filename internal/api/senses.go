package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lexnetio/lexnet/internal/models"
	"github.com/lexnetio/lexnet/internal/ws"
)

// SenseHandler serves sense endpoints.
type SenseHandler struct {
	repo   SenseRepository
	events Broadcaster
	log    *logrus.Logger
}

// NewSenseHandler creates a SenseHandler with the given repository and logger.
// events may be nil when no WebSocket hub is attached.
func NewSenseHandler(repo SenseRepository, events Broadcaster, log *logrus.Logger) *SenseHandler {
	return &SenseHandler{repo: repo, events: events, log: log}
}

// ListForSynset handles GET /api/v1/synsets/:id/senses.
func (h *SenseHandler) ListForSynset(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	lang := c.Query("lang")

	senses, err := h.repo.Senses(c.Request.Context(), id, lang)
	if err != nil {
		h.log.WithError(err).Error("listing senses")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"senses": senses})
}

// Create handles POST /api/v1/synsets/:id/senses.
func (h *SenseHandler) Create(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.CreateSenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	req.SynsetID = id

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	sense, err := h.repo.CreateSense(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateKey):
			respondError(c, http.StatusConflict, ErrCodeConflict, "sense already exists")
		case errors.Is(err, models.ErrSynsetNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "synset not found")
		default:
			h.log.WithError(err).Error("creating sense")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":    "sense.create",
		"synset_id": sense.SynsetID,
		"lang":      sense.Lang,
	}).Info("audit")

	if h.events != nil {
		if data, err := json.Marshal(sense); err == nil {
			h.events.BroadcastEvent(ws.EventSenseCreated, data)
		}
	}

	c.JSON(http.StatusCreated, sense)
}
