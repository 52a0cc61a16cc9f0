// Package knowledgeapi serves read-only lookups against the built-in
// clinical reference tables.
package knowledgeapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leny-backend/knowledge"
	"leny-backend/models"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/search/medical-knowledge", h.SearchKnowledge)
	r.GET("/search/drug-interactions/:drug", h.DrugInteractions)
	r.GET("/search/lab-reference/:test", h.LabReference)
}

const searchSectionLimit = 10

// SearchKnowledge runs one term across every reference table and returns the
// matches grouped by category. Empty categories are omitted.
func (h *Handler) SearchKnowledge(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	term := strings.ToLower(strings.TrimSpace(req.Query))

	var results []gin.H

	var specialties []gin.H
	for _, s := range models.Specialties {
		if strings.Contains(string(s), term) {
			specialties = append(specialties, gin.H{"specialty": s, "name": s.DisplayName()})
		}
	}
	if len(specialties) > 0 {
		results = append(results, gin.H{"category": "Medical Specialties", "matches": capMatches(specialties)})
	}

	var tools []gin.H
	for _, tool := range knowledge.ToolsContaining(term) {
		tools = append(tools, gin.H{"tool": tool.Key, "description": tool.Description, "category": tool.Category})
	}
	if len(tools) > 0 {
		results = append(results, gin.H{"category": "Clinical Decision Tools", "matches": capMatches(tools)})
	}

	var drugs []gin.H
	for _, name := range knowledge.DrugsContaining(term) {
		rec, _ := knowledge.InteractionsByDrug(name)
		drugs = append(drugs, gin.H{"drug": name, "interactions": rec})
	}
	if len(drugs) > 0 {
		results = append(results, gin.H{"category": "Medications", "matches": capMatches(drugs)})
	}

	var labs []gin.H
	for _, test := range knowledge.LabTestsContaining(term) {
		labs = append(labs, gin.H{"test": test.Name, "reference_ranges": test.Ranges})
	}
	if len(labs) > 0 {
		results = append(results, gin.H{"category": "Laboratory Tests", "matches": capMatches(labs)})
	}

	c.JSON(http.StatusOK, gin.H{
		"query":                    req.Query,
		"results":                  results,
		"total_specialties":        len(models.Specialties),
		"total_literature_sources": knowledge.LiteratureSourceCount(),
	})
}

func capMatches(matches []gin.H) []gin.H {
	if len(matches) > searchSectionLimit {
		return matches[:searchSectionLimit]
	}
	return matches
}

func (h *Handler) DrugInteractions(c *gin.Context) {
	drug := c.Param("drug")
	rec, ok := knowledge.InteractionsByDrug(drug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no interaction data for drug", "drug": drug})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"drug":               drug,
		"major_interactions": rec.MajorInteractions,
		"contraindications":  rec.Contraindications,
		"monitoring":         rec.Monitoring,
	})
}

func (h *Handler) LabReference(c *gin.Context) {
	test := c.Param("test")
	ranges, ok := knowledge.ReferenceRangeByTest(test)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no reference range for test", "test": test})
		return
	}
	c.JSON(http.StatusOK, gin.H{"test": test, "reference_ranges": ranges})
}
