// Package history persists processed queries for the stats endpoint.
// Persistence is best-effort: a nil repository or a write error never
// affects the response returned to the caller.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"leny-backend/models"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertQueryLog = `
	INSERT INTO query_log (request_id, query_text, user_type, context_type, specialty, escalated, model, response_mode, citation_count)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// logEntry is one query_log row, built from a processed response.
type logEntry struct {
	RequestID     string
	QueryText     string
	UserType      string
	ContextType   string
	Specialty     string
	Escalated     bool
	Model         string
	ResponseMode  string
	CitationCount int
}

func newLogEntry(q models.Query, resp models.FormattedResponse) logEntry {
	requestID, _ := resp.Metadata["request_id"].(string)
	contextType, _ := resp.Metadata["context_type"].(string)
	model, _ := resp.Metadata["model"].(string)
	responseMode, _ := resp.Metadata["response_mode"].(string)
	citationCount, _ := resp.Metadata["citation_count"].(int)
	return logEntry{
		RequestID:     requestID,
		QueryText:     q.Text,
		UserType:      string(q.UserType),
		ContextType:   contextType,
		Specialty:     string(resp.Specialty),
		Escalated:     resp.EscalationTriggered,
		Model:         model,
		ResponseMode:  responseMode,
		CitationCount: citationCount,
	}
}

// Record stores one processed query with its classification outcome.
func (r *Repository) Record(ctx context.Context, q models.Query, resp models.FormattedResponse) error {
	e := newLogEntry(q, resp)
	_, err := r.db.ExecContext(ctx, insertQueryLog,
		e.RequestID, e.QueryText, e.UserType, e.ContextType, e.Specialty,
		e.Escalated, e.Model, e.ResponseMode, e.CitationCount)
	if err != nil {
		return fmt.Errorf("insert query_log: %w", err)
	}
	return nil
}

type SpecialtyCount struct {
	Specialty string `json:"specialty"`
	Count     int    `json:"count"`
}

type Stats struct {
	TotalQueries int              `json:"total_queries"`
	Escalated    int              `json:"escalated"`
	BySpecialty  []SpecialtyCount `json:"by_specialty"`
}

// Summary aggregates the query log for the dashboard.
func (r *Repository) Summary(ctx context.Context) (Stats, error) {
	var s Stats
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(escalated), 0) FROM query_log`)
	if err := row.Scan(&s.TotalQueries, &s.Escalated); err != nil {
		return s, fmt.Errorf("count query_log: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT specialty, COUNT(*) AS n FROM query_log
		GROUP BY specialty ORDER BY n DESC, specialty ASC`)
	if err != nil {
		return s, fmt.Errorf("group query_log: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sc SpecialtyCount
		if err := rows.Scan(&sc.Specialty, &sc.Count); err != nil {
			return s, err
		}
		s.BySpecialty = append(s.BySpecialty, sc)
	}
	return s, rows.Err()
}

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler { return &Handler{Repo: repo} }

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/stats", h.Stats)
}

func (h *Handler) Stats(c *gin.Context) {
	if h.Repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history storage is not configured"})
		return
	}
	stats, err := h.Repo.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
