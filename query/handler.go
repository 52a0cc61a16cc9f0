// Package query exposes the reasoning pipeline over HTTP.
package query

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leny-backend/engine"
	"leny-backend/history"
	"leny-backend/models"
)

type Handler struct {
	Engine  *engine.Engine
	History *history.Repository
}

func NewHandler(eng *engine.Engine, hist *history.Repository) *Handler {
	return &Handler{Engine: eng, History: hist}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.POST("/query", h.Query)
	r.POST("/classify", h.Classify)
	r.GET("/specialties", h.Specialties)
	r.GET("/context-types", h.ContextTypes)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "leny-backend"})
}

// Query runs the full pipeline on the submitted text.
func (h *Handler) Query(c *gin.Context) {
	var req struct {
		Query         string `json:"query"`
		UserType      string `json:"user_type"`
		ContextHint   string `json:"context_hint"`
		SpecialtyHint string `json:"specialty_hint"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	q := models.Query{Text: req.Query, UserType: parseUserType(req.UserType)}
	if ct, ok := parseContextType(req.ContextHint); ok {
		q.ContextHint = &ct
	}
	if sp, ok := parseSpecialty(req.SpecialtyHint); ok {
		q.SpecialtyHint = &sp
	}

	resp := h.Engine.Process(c.Request.Context(), q)

	if h.History != nil {
		if err := h.History.Record(c.Request.Context(), q, resp); err != nil {
			log.Printf("[query][history] record failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Classify returns classification only, without generating a response.
func (h *Handler) Classify(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	cls := h.Engine.Classifier()
	contextType, specialty := cls.Classify(req.Query)
	c.JSON(http.StatusOK, gin.H{
		"query":         req.Query,
		"context_type":  contextType,
		"specialty":     specialty,
		"has_red_flags": cls.HasRedFlags(req.Query),
	})
}

func (h *Handler) Specialties(c *gin.Context) {
	out := make([]gin.H, 0, len(models.Specialties))
	for _, s := range models.Specialties {
		out = append(out, gin.H{"key": s, "name": s.DisplayName()})
	}
	c.JSON(http.StatusOK, gin.H{"specialties": out})
}

func (h *Handler) ContextTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"context_types": models.ContextTypes})
}

func parseUserType(s string) models.UserType {
	if strings.EqualFold(strings.TrimSpace(s), string(models.UserProvider)) {
		return models.UserProvider
	}
	return models.UserPatient
}

func parseContextType(s string) (models.ContextType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, ct := range models.ContextTypes {
		if s == string(ct) {
			return ct, true
		}
	}
	return "", false
}

func parseSpecialty(s string) (models.Specialty, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sp := range models.Specialties {
		if s == string(sp) {
			return sp, true
		}
	}
	return "", false
}
