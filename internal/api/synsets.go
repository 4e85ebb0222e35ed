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

// SynsetHandler serves synset CRUD endpoints.
type SynsetHandler struct {
	repo   SynsetRepository
	events Broadcaster
	log    *logrus.Logger
}

// NewSynsetHandler creates a SynsetHandler with the given repository and logger.
// events may be nil when no WebSocket hub is attached.
func NewSynsetHandler(repo SynsetRepository, events Broadcaster, log *logrus.Logger) *SynsetHandler {
	return &SynsetHandler{repo: repo, events: events, log: log}
}

// List handles GET /api/v1/synsets.
func (h *SynsetHandler) List(c *gin.Context) {
	pos := c.Query("pos")
	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	synsets, hasMore, err := h.repo.ListSynsets(c.Request.Context(), pos, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing synsets")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"synsets": synsets, "has_more": hasMore})
}

// Get handles GET /api/v1/synsets/:id.
func (h *SynsetHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	synset, err := h.repo.GetSynset(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSynsetNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "synset not found")

			return
		}

		h.log.WithError(err).Error("getting synset")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, synset)
}

// Create handles POST /api/v1/synsets.
func (h *SynsetHandler) Create(c *gin.Context) {
	var req models.CreateSynsetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	synset, err := h.repo.CreateSynset(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "synset with this ID already exists")

			return
		}

		h.log.WithError(err).Error("creating synset")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "synset.create", "synset_id": synset.ID}).Info("audit")

	if h.events != nil {
		if data, err := json.Marshal(synset); err == nil {
			h.events.BroadcastEvent(ws.EventSynsetCreated, data)
		}
	}

	c.JSON(http.StatusCreated, synset)
}
