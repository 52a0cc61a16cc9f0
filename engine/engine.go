// Package engine wires classification, retrieval, assembly, tinting and
// formatting into the end-to-end reasoning pipeline. Stages run strictly in
// order within a request; the engine holds no mutable state after
// construction and is safe for concurrent requests.
package engine

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"leny-backend/classifier"
	"leny-backend/knowledge"
	"leny-backend/models"
	"leny-backend/prompts"
	"leny-backend/rag"
)

// Generator is the contract with the external text-generation service: one
// prompt in, one text out, single attempt per request. Implementations may
// take seconds and must honor ctx cancellation.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const maxContextSnippets = 5

// Options configures an Engine. Nil generators disable the generation path
// entirely; assembly then always takes the knowledge-base route.
type Options struct {
	Primary           Generator
	Fallback          Generator
	PrimaryModel      string
	FallbackModel     string
	AgentConfigs      map[models.Specialty]models.AgentConfig
	ConsumerLimit     int
	ProfessionalLimit int
}

// Engine is the clinical reasoning pipeline.
type Engine struct {
	classifier *classifier.Classifier
	retriever  *rag.Service
	opts       Options
}

func New(opts Options) *Engine {
	if opts.ConsumerLimit <= 0 {
		opts.ConsumerLimit = rag.ConsumerSearchLimit
	}
	if opts.ProfessionalLimit <= 0 {
		opts.ProfessionalLimit = rag.ProfessionalSearchLimit
	}
	if opts.AgentConfigs == nil {
		opts.AgentConfigs = map[models.Specialty]models.AgentConfig{}
	}
	return &Engine{
		classifier: classifier.New(),
		retriever:  rag.NewService(),
		opts:       opts,
	}
}

// Classifier exposes the engine's classifier for the classify-only endpoint.
func (e *Engine) Classifier() *classifier.Classifier { return e.classifier }

// Process runs one query through the full pipeline. It always returns a
// well-formed response: internal faults degrade to an apologetic error
// response with escalation forced on, never to a transport error.
func (e *Engine) Process(ctx context.Context, q models.Query) (resp models.FormattedResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[engine] pipeline panic: %v", r)
			resp = e.errorResponse(q, fmt.Errorf("pipeline failure: %v", r))
		}
	}()

	requestID := uuid.NewString()

	// Classify. Hints override scoring entirely.
	contextType, specialty := e.classifier.Classify(q.Text)
	if q.ContextHint != nil {
		contextType = *q.ContextHint
	}
	if q.SpecialtyHint != nil {
		specialty = *q.SpecialtyHint
	}

	redFlags := e.classifier.HasRedFlags(q.Text)
	escalate := redFlags || contextType == models.ContextTriage

	// Retrieve. Providers get the larger evidence cap.
	limit := e.opts.ConsumerLimit
	responseMode := "consumer"
	if q.UserType == models.UserProvider {
		limit = e.opts.ProfessionalLimit
		responseMode = "professional"
	}
	evidence := e.retriever.Retrieve(q.Text, specialty, limit)

	// Assemble. Escalated queries route to the fallback (higher-capability)
	// generator; generation failure of any kind degrades to the
	// knowledge-base path and forces escalation.
	gen, model := e.selectGenerator(escalate)
	data, generated, genErr := e.assemble(ctx, gen, q.Text, contextType, specialty, evidence)
	if genErr != nil {
		log.Printf("[engine] generation failed, using knowledge base: %v", genErr)
		escalate = true
	}
	if !generated {
		model = "knowledge_base"
	}

	data = applyTinting(data, specialty, e.opts.AgentConfigs)
	content := formatForAudience(data, q.UserType, specialty)

	return models.FormattedResponse{
		OriginalQuery:       q.Text,
		UserType:            q.UserType,
		Specialty:           specialty,
		Content:             content,
		EscalationTriggered: escalate,
		Sources:             rag.FormatCitations(evidence.Citations),
		Metadata: map[string]any{
			"request_id":         requestID,
			"context_type":       string(contextType),
			"escalated":          escalate,
			"red_flags":          redFlags,
			"evidence_level":     evidence.EvidenceLevel,
			"model":              model,
			"response_mode":      responseMode,
			"citation_count":     len(evidence.Citations),
			"citations_included": len(evidence.Citations) > 0,
		},
	}
}

// selectGenerator picks the generation pathway. Escalated queries prefer the
// fallback model; either slot may be absent.
func (e *Engine) selectGenerator(escalate bool) (Generator, string) {
	if escalate && e.opts.Fallback != nil {
		return e.opts.Fallback, e.opts.FallbackModel
	}
	if e.opts.Primary != nil {
		return e.opts.Primary, e.opts.PrimaryModel
	}
	return e.opts.Fallback, e.opts.FallbackModel
}

// assemble builds the clinical data object. With no generator configured it
// goes straight to the knowledge base. With one, it prompts the service and
// parses the structured output; any failure falls back to the knowledge base
// and is reported so the caller can escalate.
func (e *Engine) assemble(ctx context.Context, gen Generator, query string, contextType models.ContextType, specialty models.Specialty, evidence rag.Evidence) (models.ClinicalData, bool, error) {
	if gen == nil {
		return assembleFromKnowledge(contextType, specialty), false, nil
	}

	prompt := prompts.Format(contextType, query, e.retrievedContext(query, evidence))
	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		return assembleFromKnowledge(contextType, specialty), false, err
	}
	data, err := parseClinicalJSON(raw)
	if err != nil {
		return assembleFromKnowledge(contextType, specialty), false, err
	}
	return data, true, nil
}

// retrievedContext builds the prompt's evidence text: knowledge-base
// snippets matched to the query, then the retrieved guidance block.
func (e *Engine) retrievedContext(query string, evidence rag.Evidence) string {
	var parts []string
	lower := strings.ToLower(query)

	for _, tool := range knowledge.ToolsMatching(query) {
		parts = append(parts, fmt.Sprintf("Clinical Tool: %s - %s", tool.Key, tool.Description))
	}

	for _, drug := range knowledge.DrugNames() {
		if strings.Contains(lower, drug) {
			if rec, ok := knowledge.InteractionsByDrug(drug); ok {
				parts = append(parts, fmt.Sprintf("Drug Info: %s - interactions: %s", drug, strings.Join(rec.MajorInteractions, ", ")))
			}
		}
	}

	if containsAny(lower, []string{"lab", "blood", "test", "level", "result"}) {
		for _, test := range []string{"troponin", "d-dimer", "glucose", "tsh", "hba1c"} {
			if strings.Contains(lower, strings.ReplaceAll(test, "-", " ")) || strings.Contains(lower, test) {
				if ranges, ok := knowledge.ReferenceRangeByTest(test); ok {
					parts = append(parts, fmt.Sprintf("Lab Reference: %s - %v", test, ranges))
				}
			}
		}
	}

	if e.classifier.HasRedFlags(query) {
		for _, condition := range []string{"cardiac arrest", "stroke", "anaphylaxis"} {
			if strings.Contains(lower, strings.Fields(condition)[0]) {
				if p, ok := knowledge.ProtocolByCondition(condition); ok {
					parts = append(parts, fmt.Sprintf("Emergency Protocol: %s - %s", p.Name, strings.Join(p.Steps, "; ")))
				}
			}
		}
	}

	if len(parts) > maxContextSnippets {
		parts = parts[:maxContextSnippets]
	}
	parts = append(parts, evidence.Content)
	return strings.Join(parts, "\n")
}

// errorResponse is the fixed terminal for unexpected pipeline faults. The
// fault detail goes to metadata for observability, never into the medical
// content.
func (e *Engine) errorResponse(q models.Query, err error) models.FormattedResponse {
	return models.FormattedResponse{
		OriginalQuery: q.Text,
		UserType:      q.UserType,
		Specialty:     models.InternalMedicine,
		Content: "I apologize, but I encountered an error processing your query. " +
			"Please consult with a healthcare provider for medical advice.",
		EscalationTriggered: true,
		Sources:             []string{},
		Metadata: map[string]any{
			"error": err.Error(),
		},
	}
}
