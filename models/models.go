package models

import "strings"

// ContextType is the communicative intent of a medical query.
type ContextType string

const (
	ContextSymptom       ContextType = "symptom"
	ContextDiagnosis     ContextType = "diagnosis"
	ContextMedication    ContextType = "medication"
	ContextTestResult    ContextType = "test_result"
	ContextTreatmentPlan ContextType = "treatment_plan"
	ContextTriage        ContextType = "triage"
	ContextFollowUp      ContextType = "follow_up"
	ContextLogistics     ContextType = "logistics"
	ContextOther         ContextType = "other"
)

// ContextTypes lists every valid context type.
var ContextTypes = []ContextType{
	ContextSymptom, ContextDiagnosis, ContextMedication, ContextTestResult,
	ContextTreatmentPlan, ContextTriage, ContextFollowUp, ContextLogistics,
	ContextOther,
}

// UserType distinguishes the two response audiences.
type UserType string

const (
	UserPatient  UserType = "patient"
	UserProvider UserType = "provider"
)

// Specialty is the medical discipline a query is routed to.
type Specialty string

const (
	// Primary care
	FamilyMedicine   Specialty = "family_medicine"
	InternalMedicine Specialty = "internal_medicine"
	Pediatrics       Specialty = "pediatrics"
	Geriatrics       Specialty = "geriatrics"

	// Emergency and critical care
	EmergencyMedicine Specialty = "emergency_medicine"
	CriticalCare      Specialty = "critical_care"
	TraumaSurgery     Specialty = "trauma_surgery"

	// Surgical
	GeneralSurgery        Specialty = "general_surgery"
	Orthopedics           Specialty = "orthopedics"
	Neurosurgery          Specialty = "neurosurgery"
	CardiothoracicSurgery Specialty = "cardiothoracic_surgery"
	PlasticSurgery        Specialty = "plastic_surgery"
	Urology               Specialty = "urology"

	// Medical
	Cardiology         Specialty = "cardiology"
	Gastroenterology   Specialty = "gastroenterology"
	Neurology          Specialty = "neurology"
	Pulmonology        Specialty = "pulmonology"
	Nephrology         Specialty = "nephrology"
	Endocrinology      Specialty = "endocrinology"
	HematologyOncology Specialty = "hematology_oncology"
	Rheumatology       Specialty = "rheumatology"
	InfectiousDisease  Specialty = "infectious_disease"
	AllergyImmunology  Specialty = "allergy_immunology"

	// Women's health
	ObstetricsGynecology  Specialty = "obstetrics_gynecology"
	MaternalFetalMedicine Specialty = "maternal_fetal_medicine"

	// Mental health
	Psychiatry        Specialty = "psychiatry"
	Psychology        Specialty = "psychology"
	AddictionMedicine Specialty = "addiction_medicine"

	// Diagnostic and imaging
	Radiology       Specialty = "radiology"
	Pathology       Specialty = "pathology"
	NuclearMedicine Specialty = "nuclear_medicine"

	// Specialized care
	Dermatology          Specialty = "dermatology"
	Ophthalmology        Specialty = "ophthalmology"
	Otolaryngology       Specialty = "otolaryngology"
	Anesthesiology       Specialty = "anesthesiology"
	PainManagement       Specialty = "pain_management"
	PalliativeCare       Specialty = "palliative_care"
	SportsMedicine       Specialty = "sports_medicine"
	OccupationalMedicine Specialty = "occupational_medicine"
)

// Specialties lists every valid specialty.
var Specialties = []Specialty{
	FamilyMedicine, InternalMedicine, Pediatrics, Geriatrics,
	EmergencyMedicine, CriticalCare, TraumaSurgery,
	GeneralSurgery, Orthopedics, Neurosurgery, CardiothoracicSurgery,
	PlasticSurgery, Urology,
	Cardiology, Gastroenterology, Neurology, Pulmonology, Nephrology,
	Endocrinology, HematologyOncology, Rheumatology, InfectiousDisease,
	AllergyImmunology,
	ObstetricsGynecology, MaternalFetalMedicine,
	Psychiatry, Psychology, AddictionMedicine,
	Radiology, Pathology, NuclearMedicine,
	Dermatology, Ophthalmology, Otolaryngology, Anesthesiology,
	PainManagement, PalliativeCare, SportsMedicine, OccupationalMedicine,
}

// DisplayName returns a human-readable form of a specialty value,
// e.g. "internal_medicine" -> "Internal Medicine".
func (s Specialty) DisplayName() string {
	return titleWords(string(s))
}

func titleWords(v string) string {
	parts := strings.Split(v, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Query is one immutable pipeline input. Hints, when set, override
// classification entirely.
type Query struct {
	Text          string       `json:"text"`
	UserType      UserType     `json:"user_type"`
	ContextHint   *ContextType `json:"context_hint,omitempty"`
	SpecialtyHint *Specialty   `json:"specialty_hint,omitempty"`
}

// Diagnosis is one entry in a differential.
type Diagnosis struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rationale   string `json:"rationale"`
}

// TestRecommendation pairs a clinical scenario with the test indicated for it.
type TestRecommendation struct {
	Condition       string `json:"condition" yaml:"condition"`
	RecommendedTest string `json:"recommended_test" yaml:"recommended_test"`
}

// ClinicalData is the structured clinical object assembled once per request,
// tinted by specialty config and consumed by the audience formatter.
type ClinicalData struct {
	MostLikelyDiagnoses []Diagnosis          `json:"most_likely_diagnoses"`
	RedFlagDiagnoses    []Diagnosis          `json:"red_flag_diagnoses"`
	KeyHistoryQuestions []string             `json:"key_history_questions"`
	PhysicalExamFocus   []string             `json:"physical_exam_focus"`
	DiagnosticStrategy  []TestRecommendation `json:"diagnostic_strategy"`
	InitialManagement   []string             `json:"initial_management"`
}

// FormattedResponse is the terminal pipeline output. The caller always gets
// one of these, even when the pipeline failed internally.
type FormattedResponse struct {
	OriginalQuery       string         `json:"original_query"`
	UserType            UserType       `json:"user_type"`
	Specialty           Specialty      `json:"specialty"`
	Content             string         `json:"content"`
	Metadata            map[string]any `json:"metadata"`
	EscalationTriggered bool           `json:"escalation_triggered"`
	Sources             []string       `json:"sources"`
}

// AgentConfig carries per-specialty response tinting, loaded once at startup.
type AgentConfig struct {
	PrioritizeKeywords   []string             `yaml:"prioritize_keywords" json:"prioritize_keywords"`
	DeprioritizeKeywords []string             `yaml:"deprioritize_keywords" json:"deprioritize_keywords"`
	AddTests             []TestRecommendation `yaml:"add_tests" json:"add_tests"`
	EmphasisAreas        []string             `yaml:"emphasis_areas" json:"emphasis_areas"`
}
