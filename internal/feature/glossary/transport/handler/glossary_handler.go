// Package handler provides the HTTP handler for the glossary feature.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GlossaryUsecase resolves glossary terms.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type GlossaryUsecase interface {
	Lookup(term string) (string, error)
}

// GlossaryHandler handles the terminology lookup endpoint.
type GlossaryHandler struct {
	uc GlossaryUsecase
}

// NewGlossaryHandler creates a new GlossaryHandler with the given usecase.
func NewGlossaryHandler(uc GlossaryUsecase) *GlossaryHandler {
	return &GlossaryHandler{uc: uc}
}

// Explain handles GET /jargon?term=...
func (h *GlossaryHandler) Explain(c *gin.Context) {
	term := c.Query("term")
	if term == "" {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	definition, err := h.uc.Lookup(term)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown term"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"term": term, "definition": definition})
}
