package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lexnetio/lexnet/internal/models"
)

// GraphHandler serves graph traversal endpoints.
type GraphHandler struct {
	repo     GraphRepository
	maxDepth int
	log      *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given repository and logger.
// maxDepth caps the depth accepted by the ego endpoint.
func NewGraphHandler(repo GraphRepository, maxDepth int, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{repo: repo, maxDepth: maxDepth, log: log}
}

// Ego handles GET /api/v1/graph/ego/:id.
func (h *GraphHandler) Ego(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	depth := parseInt(c.DefaultQuery("depth", "2"), 2)
	if depth > h.maxDepth {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "depth exceeds maximum")

		return
	}

	neighbours, err := h.repo.Ego(c.Request.Context(), id, depth)
	if err != nil {
		if errors.Is(err, models.ErrSynsetNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "synset not found")

			return
		}

		h.log.WithError(err).Error("walking ego network")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seed":       id,
		"depth":      depth,
		"neighbours": neighbours,
	})
}

// Edges handles GET /api/v1/graph/edges/:id.
// By default only taxonomic edges (broader/narrower) are returned, matching
// what the walker sees; a kinds query parameter overrides the filter.
func (h *GraphHandler) Edges(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	kinds := []models.RelationKind{models.KindBroader, models.KindNarrower}
	if raw := c.Query("kinds"); raw != "" {
		kinds = kinds[:0]
		for _, k := range strings.Split(raw, ",") {
			kind := models.RelationKind(strings.TrimSpace(k))
			if !kind.Valid() {
				respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid relation kind: "+string(kind))

				return
			}
			kinds = append(kinds, kind)
		}
	}

	edges, err := h.repo.Edges(c.Request.Context(), id, kinds...)
	if err != nil {
		h.log.WithError(err).Error("listing edges")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"edges": edges})
}
