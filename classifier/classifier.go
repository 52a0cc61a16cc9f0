// Package classifier scores free-text medical queries against keyword pattern
// tables to resolve a context type and a specialty, and detects emergency red
// flags. Classification is total: it always resolves to concrete values.
package classifier

import (
	"strings"

	"leny-backend/models"
)

// contextGroups routes query intent. Declaration order is the tie-break order.
var contextGroups = []PatternGroup[models.ContextType]{
	{models.ContextSymptom, compile(
		`\b(pain|hurt|ache|sore)\b`,
		`\b(feel|feeling)\s+(dizzy|nauseous|tired|weak)\b`,
		`\b(have|having)\s+(headache|fever|cough|rash)\b`,
		`\b(my|i)\s+\w+\s+(hurts?|aches?|pains?)\b`,
	)},
	{models.ContextDiagnosis, compile(
		`\b(diagnosed with|have|told i have)\b`,
		`\b(condition|disease|disorder)\b`,
		`\b(diabetes|hypertension|arthritis|asthma)\b`,
	)},
	{models.ContextMedication, compile(
		`\b(taking|prescribed|medication|drug|pill)\b`,
		`\b(side effects?|adverse)\b`,
		`\b(metformin|lisinopril|ibuprofen|aspirin)\b`,
	)},
	{models.ContextTestResult, compile(
		`\b(test|lab|blood work|mri|ct|x-ray|ultrasound)\b`,
		`\b(results?|showed|found)\b`,
		`\b(elevated|high|low|abnormal|normal)\b`,
	)},
	{models.ContextTriage, compile(
		`\b(should i|do i need to)\s+(go to|see|visit)\b`,
		`\b(emergency|urgent|er|hospital)\b`,
		`\b(serious|worried|concerned)\b`,
	)},
	{models.ContextTreatmentPlan, compile(
		`\b(how to treat|treatment|therapy)\b`,
		`\b(what should i do|next steps)\b`,
		`\b(manage|management)\b`,
	)},
}

// specialtyGroups routes queries to a discipline, independently of context.
var specialtyGroups = []PatternGroup[models.Specialty]{
	{models.Orthopedics, compile(
		`\b(knee|ankle|shoulder|hip|back|joint|bone|fracture)\b`,
		`\b(sprain|strain|torn|injury)\b`,
	)},
	{models.Cardiology, compile(
		`\b(chest pain|heart|palpitation|blood pressure)\b`,
		`\b(cardiac|cardiovascular)\b`,
	)},
	{models.Gastroenterology, compile(
		`\b(stomach|abdominal|nausea|vomit|diarrhea|constipation)\b`,
		`\b(digestive|bowel|gi)\b`,
	)},
	{models.Neurology, compile(
		`\b(headache|migraine|dizzy|seizure|numbness|weakness)\b`,
		`\b(neurologic|brain|nerve)\b`,
	)},
	{models.InfectiousDisease, compile(
		`\b(fever|infection|sore throat|pharyngitis|flu|anti?biotic)\b`,
		`\b(bacterial|viral|sepsis)\b`,
	)},
	{models.Pulmonology, compile(
		`\b(cough|breathing|lungs?|asthma|copd|pneumonia)\b`,
		`\b(respiratory|pulmonary)\b`,
	)},
	{models.Dermatology, compile(
		`\b(rash|skin|itch|eczema|acne|mole)\b`,
	)},
	{models.Psychiatry, compile(
		`\b(anxiety|depress|panic|mood|insomnia)\b`,
		`\b(psychiatric|mental health)\b`,
	)},
	{models.Endocrinology, compile(
		`\b(thyroid|glucose|insulin|hormone)\b`,
		`\b(diabetic|endocrine)\b`,
	)},
	{models.Pediatrics, compile(
		`\b(child|infant|baby|toddler|pediatric)\b`,
	)},
}

// Classifier resolves (context type, specialty) for a query and checks
// escalation keywords. It is stateless and safe for concurrent use.
type Classifier struct{}

func New() *Classifier { return &Classifier{} }

// ClassifyContext returns the highest-scoring context type, defaulting to
// symptom when nothing matches.
func (c *Classifier) ClassifyContext(text string) models.ContextType {
	return scoreGroups(strings.ToLower(text), contextGroups, models.ContextSymptom)
}

// ClassifySpecialty returns the highest-scoring specialty, defaulting to
// internal medicine when nothing matches.
func (c *Classifier) ClassifySpecialty(text string) models.Specialty {
	return scoreGroups(strings.ToLower(text), specialtyGroups, models.InternalMedicine)
}

// Classify scores context and specialty independently from the same text.
func (c *Classifier) Classify(text string) (models.ContextType, models.Specialty) {
	return c.ClassifyContext(text), c.ClassifySpecialty(text)
}

// HasRedFlags reports whether any escalation keyword appears in the text.
// Matching is plain substring containment over the lowercased input.
func (c *Classifier) HasRedFlags(text string) bool {
	lower := strings.ToLower(text)
	for _, flag := range allRedFlags {
		if strings.Contains(lower, flag) {
			return true
		}
	}
	return false
}
