package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"movie-review/api"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DocsHandler publishes the OpenAPI description bundled with the binary.
type DocsHandler struct {
	log *zap.Logger

	once    sync.Once
	jsonDoc []byte
	err     error
}

func NewDocsHandler(log *zap.Logger) *DocsHandler {
	return &DocsHandler{
		log: log.With(zap.String("handler", "docs")),
	}
}

// Index handles GET /api
func (h *DocsHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/openapi.json", http.StatusFound)
}

// YAML handles GET /api/openapi.yaml
func (h *DocsHandler) YAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(api.OpenAPI)
}

// JSON handles GET /api/openapi.json
func (h *DocsHandler) JSON(w http.ResponseWriter, r *http.Request) {
	doc, err := h.document()
	if err != nil {
		h.log.Error("Failed to render OpenAPI document", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

func (h *DocsHandler) document() ([]byte, error) {
	h.once.Do(func() {
		h.jsonDoc, h.err = OpenAPIJSON(api.OpenAPI)
	})
	return h.jsonDoc, h.err
}

// OpenAPIJSON converts a YAML OpenAPI document to JSON.
func OpenAPIJSON(doc []byte) ([]byte, error) {
	var parsed map[string]any
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("parse openapi yaml: %w", err)
	}

	out, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("encode openapi json: %w", err)
	}

	return out, nil
}
