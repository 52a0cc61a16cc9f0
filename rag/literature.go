// Package rag retrieves literature citations and clinical guidance blocks for
// a query from static topic-keyed tables. Lookups are deterministic: result
// order depends only on table order and query content.
package rag

import (
	"fmt"
	"strings"

	"leny-backend/models"
)

// Search limits for the two retrieval paths. The professional path returns
// more evidence than the consumer path.
const (
	ProfessionalSearchLimit = 5
	ConsumerSearchLimit     = 3
)

// Citation is one literature reference. Identity for de-duplication is the
// DOI, or the title when no DOI is present.
type Citation struct {
	Title         string `json:"title"`
	Source        string `json:"source"`
	Year          int    `json:"year"`
	DOI           string `json:"doi,omitempty"`
	URL           string `json:"url,omitempty"`
	EvidenceLevel string `json:"evidence_level"`
}

// Format renders the citation in medical journal style.
func (c Citation) Format() string {
	s := fmt.Sprintf("• %s (%s %d)", c.Title, c.Source, c.Year)
	if c.DOI != "" {
		s += " DOI: " + c.DOI
	}
	return s
}

func (c Citation) identity() string {
	if c.DOI != "" {
		return c.DOI
	}
	return c.Title
}

// literatureTopic groups the citations filed under one topic key. Topics are
// held in declaration order so candidate collection is stable.
type literatureTopic struct {
	key       string
	citations []Citation
}

var literatureTable = []literatureTopic{
	{"chest_pain", []Citation{
		{Title: "2021 AHA/ACC/ASE/CHEST/SAEM/SCCT/SCMR Guideline for Evaluation of Chest Pain", Source: "Circulation", Year: 2021, DOI: "10.1161/CIR.0000000000001029", EvidenceLevel: "high"},
		{Title: "High-Sensitivity Cardiac Troponin and the Universal Definition of Myocardial Infarction", Source: "NEJM", Year: 2023, DOI: "10.1056/NEJMra2211677", EvidenceLevel: "high"},
	}},
	{"heart_failure", []Citation{
		{Title: "2022 AHA/ACC/HFSA Guideline for the Management of Heart Failure", Source: "JACC", Year: 2022, DOI: "10.1016/j.jacc.2021.12.012", EvidenceLevel: "high"},
	}},
	{"pharyngitis", []Citation{
		{Title: "IDSA Clinical Practice Guideline for Acute Pharyngitis", Source: "Clinical Infectious Diseases", Year: 2012, DOI: "10.1093/cid/cis629", EvidenceLevel: "high"},
		{Title: "Antibiotics for sore throat", Source: "Cochrane Database", Year: 2021, DOI: "10.1002/14651858.CD000023.pub5", EvidenceLevel: "high"},
	}},
	{"sepsis", []Citation{
		{Title: "Surviving Sepsis Campaign Guidelines 2021", Source: "NEJM", Year: 2021, DOI: "10.1056/NEJMra2021436", EvidenceLevel: "high"},
	}},
	{"headache", []Citation{
		{Title: "AHS/AAN Guidelines for Migraine Prevention", Source: "Neurology", Year: 2023, DOI: "10.1212/WNL.0000000000207615", EvidenceLevel: "high"},
		{Title: "Migraine: diagnosis and treatment", Source: "Lancet", Year: 2022, DOI: "10.1016/S0140-6736(21)02505-3", EvidenceLevel: "high"},
	}},
	{"stroke", []Citation{
		{Title: "2019 AHA/ASA Guideline for the Management of Acute Ischemic Stroke", Source: "Stroke", Year: 2019, DOI: "10.1161/STR.0000000000000211", EvidenceLevel: "high"},
	}},
	{"pediatric_fever", []Citation{
		{Title: "AAP Clinical Practice Guideline: Fever in Infants and Children", Source: "Pediatrics", Year: 2021, DOI: "10.1542/peds.2021-052228", EvidenceLevel: "high"},
	}},
	{"ankle_injury", []Citation{
		{Title: "Ottawa Ankle Rules for Radiography in Acute Ankle Injuries", Source: "Emergency Medicine Journal", Year: 2020, DOI: "10.1136/emj.2020.209965", EvidenceLevel: "high"},
	}},
	{"abdominal_pain", []Citation{
		{Title: "ACG Clinical Guidelines: Chronic Abdominal Pain", Source: "American Journal of Gastroenterology", Year: 2023, DOI: "10.14309/ajg.0000000000002196", EvidenceLevel: "high"},
	}},
}

// specialtyMapping force-includes a topic's citations when a literal phrase
// appears in the query and the classified specialty is in the allowed list.
type specialtyMapping struct {
	phrase      string
	topic       string
	specialties []models.Specialty
}

var specialtyMappings = []specialtyMapping{
	{"chest pain", "chest_pain", []models.Specialty{models.Cardiology}},
	{"heart", "heart_failure", []models.Specialty{models.Cardiology}},
	{"cardiac", "chest_pain", []models.Specialty{models.Cardiology}},
	{"pharyngitis", "pharyngitis", []models.Specialty{models.InfectiousDisease, models.FamilyMedicine}},
	{"sore throat", "pharyngitis", []models.Specialty{models.InfectiousDisease, models.FamilyMedicine}},
	{"headache", "headache", []models.Specialty{models.Neurology}},
	{"migraine", "headache", []models.Specialty{models.Neurology}},
	{"fever", "pediatric_fever", []models.Specialty{models.InfectiousDisease, models.Pediatrics, models.FamilyMedicine}},
	{"ankle", "ankle_injury", []models.Specialty{models.Orthopedics}},
	{"joint", "ankle_injury", []models.Specialty{models.Orthopedics, models.Rheumatology}},
	{"abdominal", "abdominal_pain", []models.Specialty{models.Gastroenterology}},
}

// LiteratureIndex answers citation searches over the static literature table.
type LiteratureIndex struct{}

func NewLiteratureIndex() *LiteratureIndex { return &LiteratureIndex{} }

// Search returns citations relevant to the query, de-duplicated by DOI (or
// title when absent) in first-seen order, truncated to limit. A query that
// matches nothing yields an empty, non-nil slice.
func (idx *LiteratureIndex) Search(query string, specialty models.Specialty, limit int) []Citation {
	lower := strings.ToLower(query)

	var candidates []Citation
	for _, topic := range literatureTable {
		for _, word := range strings.Split(topic.key, "_") {
			if strings.Contains(lower, word) {
				candidates = append(candidates, topic.citations...)
				break
			}
		}
	}

	for _, m := range specialtyMappings {
		if !strings.Contains(lower, m.phrase) {
			continue
		}
		for _, s := range m.specialties {
			if s == specialty {
				candidates = append(candidates, topicCitations(m.topic)...)
				break
			}
		}
	}

	seen := make(map[string]bool, len(candidates))
	unique := make([]Citation, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.identity()] {
			continue
		}
		seen[c.identity()] = true
		unique = append(unique, c)
	}

	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

func topicCitations(key string) []Citation {
	for _, topic := range literatureTable {
		if topic.key == key {
			return topic.citations
		}
	}
	return nil
}
