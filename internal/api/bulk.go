package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lexnetio/lexnet/internal/models"
	"github.com/lexnetio/lexnet/internal/ws"
)

// maxBulkItems caps the number of items accepted in a single bulk request.
const maxBulkItems = 1000

// BulkHandler serves batch upsert endpoints.
type BulkHandler struct {
	repo   BulkRepository
	events Broadcaster
	log    *logrus.Logger
}

// NewBulkHandler creates a BulkHandler with the given repository and logger.
// events may be nil when no WebSocket hub is attached.
func NewBulkHandler(repo BulkRepository, events Broadcaster, log *logrus.Logger) *BulkHandler {
	return &BulkHandler{repo: repo, events: events, log: log}
}

// notifyImport broadcasts an import.completed event with the entity and count.
func (h *BulkHandler) notifyImport(entity string, count int) {
	if h.events == nil {
		return
	}

	data, err := json.Marshal(gin.H{"entity": entity, "upserted": count})
	if err != nil {
		return
	}

	h.events.BroadcastEvent(ws.EventImportCompleted, data)
}

// BulkSynsets handles POST /api/v1/bulk/synsets.
func (h *BulkHandler) BulkSynsets(c *gin.Context) {
	var reqs []models.CreateSynsetRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if len(reqs) > maxBulkItems {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "bulk request exceeds maximum of 1000 items")

		return
	}

	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "item "+strconv.Itoa(i)+": "+err.Error())

			return
		}
	}

	count, err := h.repo.BulkUpsertSynsets(c.Request.Context(), reqs)
	if err != nil {
		h.log.WithError(err).Error("bulk upserting synsets")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "bulk.synsets", "upserted": count}).Info("audit")
	h.notifyImport("synsets", count)

	c.JSON(http.StatusOK, gin.H{"upserted": count})
}

// BulkRelations handles POST /api/v1/bulk/relations.
func (h *BulkHandler) BulkRelations(c *gin.Context) {
	var reqs []models.CreateRelationRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if len(reqs) > maxBulkItems {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "bulk request exceeds maximum of 1000 items")

		return
	}

	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "item "+strconv.Itoa(i)+": "+err.Error())

			return
		}
	}

	count, err := h.repo.BulkUpsertRelations(c.Request.Context(), reqs)
	if err != nil {
		h.log.WithError(err).Error("bulk upserting relations")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "bulk.relations", "upserted": count}).Info("audit")
	h.notifyImport("relations", count)

	c.JSON(http.StatusOK, gin.H{"upserted": count})
}

// BulkSenses handles POST /api/v1/bulk/senses.
func (h *BulkHandler) BulkSenses(c *gin.Context) {
	var reqs []models.CreateSenseRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if len(reqs) > maxBulkItems {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "bulk request exceeds maximum of 1000 items")

		return
	}

	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "item "+strconv.Itoa(i)+": "+err.Error())

			return
		}
	}

	count, err := h.repo.BulkUpsertSenses(c.Request.Context(), reqs)
	if err != nil {
		h.log.WithError(err).Error("bulk upserting senses")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "bulk.senses", "upserted": count}).Info("audit")
	h.notifyImport("senses", count)

	c.JSON(http.StatusOK, gin.H{"upserted": count})
}
