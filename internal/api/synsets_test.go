package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lexnetio/lexnet/internal/api"
	"github.com/lexnetio/lexnet/internal/models"
)

func TestSynsetCreate_Valid(t *testing.T) {
	t.Parallel()

	repo := &mockSynsetRepo{
		createFn: func(_ context.Context, req models.CreateSynsetRequest) (*models.Synset, error) {
			return &models.Synset{
				ID:           req.ID,
				PartOfSpeech: req.PartOfSpeech,
				Gloss:        req.Gloss,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}, nil
		},
	}

	r := gin.New()
	h := api.NewSynsetHandler(repo, nil, testLogger())
	r.POST("/synsets", h.Create)

	w := doRequest(r, http.MethodPost, "/synsets", `{"id":"bn:00015267n","pos":"NOUN","gloss":"an aquatic bird"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var synset models.Synset
	if err := json.Unmarshal(w.Body.Bytes(), &synset); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if synset.ID != "bn:00015267n" {
		t.Errorf("expected id 'bn:00015267n', got %q", synset.ID)
	}
}

func TestSynsetCreate_MissingPOS(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewSynsetHandler(&mockSynsetRepo{}, nil, testLogger())
	r.POST("/synsets", h.Create)

	w := doRequest(r, http.MethodPost, "/synsets", `{"id":"bn:00015267n"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSynsetCreate_Duplicate(t *testing.T) {
	t.Parallel()

	repo := &mockSynsetRepo{
		createFn: func(_ context.Context, _ models.CreateSynsetRequest) (*models.Synset, error) {
			return nil, models.ErrDuplicateKey
		},
	}

	r := gin.New()
	h := api.NewSynsetHandler(repo, nil, testLogger())
	r.POST("/synsets", h.Create)

	w := doRequest(r, http.MethodPost, "/synsets", `{"id":"bn:00015267n","pos":"NOUN"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSynsetGet_Found(t *testing.T) {
	t.Parallel()

	repo := &mockSynsetRepo{
		getFn: func(_ context.Context, id string) (*models.Synset, error) {
			return &models.Synset{ID: id, PartOfSpeech: "NOUN"}, nil
		},
	}

	r := gin.New()
	h := api.NewSynsetHandler(repo, nil, testLogger())
	r.GET("/synsets/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/synsets/bn:00015267n", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var synset models.Synset
	if err := json.Unmarshal(w.Body.Bytes(), &synset); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if synset.ID != "bn:00015267n" {
		t.Errorf("expected id 'bn:00015267n', got %q", synset.ID)
	}
}

func TestSynsetGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockSynsetRepo{
		getFn: func(_ context.Context, _ string) (*models.Synset, error) {
			return nil, models.ErrSynsetNotFound
		},
	}

	r := gin.New()
	h := api.NewSynsetHandler(repo, nil, testLogger())
	r.GET("/synsets/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/synsets/missing", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSynsetList_OK(t *testing.T) {
	t.Parallel()

	repo := &mockSynsetRepo{
		listFn: func(_ context.Context, pos string, _, _ int) ([]models.Synset, bool, error) {
			if pos != "NOUN" {
				t.Errorf("expected pos filter 'NOUN', got %q", pos)
			}

			return []models.Synset{{ID: "bn:1", PartOfSpeech: "NOUN"}}, true, nil
		},
	}

	r := gin.New()
	h := api.NewSynsetHandler(repo, nil, testLogger())
	r.GET("/synsets", h.List)

	w := doRequest(r, http.MethodGet, "/synsets?pos=NOUN", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Synsets []models.Synset `json:"synsets"`
		HasMore bool            `json:"has_more"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(body.Synsets) != 1 || !body.HasMore {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
