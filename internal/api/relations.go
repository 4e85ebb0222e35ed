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

// RelationHandler serves relation endpoints.
type RelationHandler struct {
	repo   RelationRepository
	events Broadcaster
	log    *logrus.Logger
}

// NewRelationHandler creates a RelationHandler with the given repository and logger.
// events may be nil when no WebSocket hub is attached.
func NewRelationHandler(repo RelationRepository, events Broadcaster, log *logrus.Logger) *RelationHandler {
	return &RelationHandler{repo: repo, events: events, log: log}
}

// List handles GET /api/v1/relations.
func (h *RelationHandler) List(c *gin.Context) {
	source := c.Query("source")
	target := c.Query("target")

	kind := models.RelationKind(c.Query("kind"))
	if kind != "" && !kind.Valid() {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid relation kind")

		return
	}

	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	relations, hasMore, err := h.repo.ListRelations(c.Request.Context(), source, target, kind, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing relations")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"relations": relations, "has_more": hasMore})
}

// Create handles POST /api/v1/relations.
func (h *RelationHandler) Create(c *gin.Context) {
	var req models.CreateRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	relation, err := h.repo.CreateRelation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateKey):
			respondError(c, http.StatusConflict, ErrCodeConflict, "relation already exists")
		case errors.Is(err, models.ErrSynsetNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "source or target synset not found")
		default:
			h.log.WithError(err).Error("creating relation")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "relation.create",
		"source": relation.Source,
		"target": relation.Target,
		"name":   relation.Name,
	}).Info("audit")

	if h.events != nil {
		if data, err := json.Marshal(relation); err == nil {
			h.events.BroadcastEvent(ws.EventRelationCreated, data)
		}
	}

	c.JSON(http.StatusCreated, relation)
}
