// Package knowledge holds the static clinical reference tables: ICD-10
// diagnoses by specialty, drug interactions, laboratory reference ranges,
// emergency protocols, clinical decision tools and the literature source
// registry. Tables are loaded once and read-only; every lookup is a total
// function returning an explicit not-found value instead of an error.
package knowledge

import (
	"sort"
	"strings"

	"leny-backend/models"
)

// DiagnosisEntry is one ICD-10 coded diagnosis with a coarse severity.
type DiagnosisEntry struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
}

var icd10Diagnoses = map[models.Specialty][]DiagnosisEntry{
	models.Cardiology: {
		{"I21.9", "Acute myocardial infarction", "high"},
		{"I50.9", "Heart failure", "high"},
		{"I48.91", "Atrial fibrillation", "medium"},
		{"I25.10", "Coronary artery disease", "medium"},
		{"I10", "Essential hypertension", "low"},
		{"I20.9", "Angina pectoris", "medium"},
	},
	models.Neurology: {
		{"G43.909", "Migraine", "low"},
		{"G40.909", "Epilepsy", "high"},
		{"I63.9", "Cerebral infarction", "high"},
		{"G35", "Multiple sclerosis", "medium"},
		{"G20", "Parkinson's disease", "medium"},
	},
	models.Orthopedics: {
		{"M25.511", "Pain in right shoulder", "low"},
		{"S72.001A", "Fracture of femur", "high"},
		{"M17.9", "Osteoarthritis of knee", "medium"},
		{"M54.5", "Low back pain", "low"},
		{"M75.30", "Rotator cuff tear", "medium"},
	},
	models.Gastroenterology: {
		{"K21.9", "Gastroesophageal reflux disease", "low"},
		{"K57.90", "Diverticulosis", "medium"},
		{"K25.9", "Peptic ulcer", "medium"},
		{"K50.90", "Crohn's disease", "high"},
		{"K92.2", "Gastrointestinal hemorrhage", "high"},
		{"K35.9", "Acute appendicitis", "high"},
	},
	models.Pulmonology: {
		{"J44.1", "COPD with exacerbation", "high"},
		{"J45.9", "Asthma", "medium"},
		{"J18.9", "Pneumonia", "high"},
		{"J93.9", "Pneumothorax", "high"},
		{"J06.9", "Upper respiratory infection", "low"},
	},
	models.Endocrinology: {
		{"E11.9", "Type 2 diabetes mellitus", "medium"},
		{"E10.9", "Type 1 diabetes mellitus", "medium"},
		{"E03.9", "Hypothyroidism", "low"},
		{"E05.90", "Hyperthyroidism", "medium"},
		{"E10.10", "Diabetic ketoacidosis", "high"},
		{"E16.2", "Hypoglycemia", "high"},
	},
	models.Psychiatry: {
		{"F32.9", "Major depressive disorder", "medium"},
		{"F41.9", "Anxiety disorder", "low"},
		{"F20.9", "Schizophrenia", "high"},
		{"F31.9", "Bipolar disorder", "medium"},
		{"F43.10", "PTSD", "medium"},
	},
}

// DiagnosesBySpecialty returns the coded diagnoses for a specialty, or nil
// when the specialty has no table entry.
func DiagnosesBySpecialty(s models.Specialty) []DiagnosisEntry {
	return icd10Diagnoses[s]
}

// DrugRecord holds interaction and monitoring guidance for one medication.
type DrugRecord struct {
	MajorInteractions []string `json:"major_interactions,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
	Monitoring        string   `json:"monitoring,omitempty"`
}

var drugInteractions = map[string]DrugRecord{
	"warfarin": {
		MajorInteractions: []string{"aspirin", "clopidogrel", "heparin", "rivaroxaban", "amiodarone", "fluconazole", "metronidazole"},
		Monitoring:        "INR every 4-6 weeks when stable",
	},
	"metformin": {
		Contraindications: []string{"severe kidney disease (eGFR <30)", "acute heart failure", "severe liver disease"},
		Monitoring:        "Kidney function every 6-12 months",
	},
	"digoxin": {
		MajorInteractions: []string{"amiodarone", "verapamil", "quinidine", "clarithromycin"},
		Monitoring:        "Digoxin level, kidney function, electrolytes",
	},
	"lisinopril": {
		MajorInteractions: []string{"potassium supplements", "nsaids", "lithium"},
		Contraindications: []string{"pregnancy", "bilateral renal artery stenosis", "hyperkalemia"},
		Monitoring:        "Renal function and potassium, especially in elderly",
	},
}

// InteractionsByDrug looks up interaction data for a drug name. The second
// return reports whether the drug is known.
func InteractionsByDrug(name string) (DrugRecord, bool) {
	rec, ok := drugInteractions[strings.ToLower(strings.TrimSpace(name))]
	return rec, ok
}

// DrugsContaining returns the known drug names containing the search term,
// sorted alphabetically.
func DrugsContaining(term string) []string {
	lower := strings.ToLower(term)
	var out []string
	for name := range drugInteractions {
		if strings.Contains(name, lower) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

var labReferenceRanges = map[string]map[string]string{
	"hemoglobin":    {"male": "13.8-17.2 g/dL", "female": "12.1-15.1 g/dL"},
	"hematocrit":    {"male": "40.7-50.3%", "female": "36.1-44.3%"},
	"platelets":     {"all": "150-450 x10³/μL"},
	"sodium":        {"all": "136-145 mmol/L"},
	"potassium":     {"all": "3.5-5.1 mmol/L"},
	"creatinine":    {"male": "0.74-1.35 mg/dL", "female": "0.59-1.04 mg/dL"},
	"glucose":       {"all": "70-99 mg/dL (fasting)"},
	"troponin":      {"all": "<0.04 ng/mL"},
	"d-dimer":       {"all": "<0.5 mg/L"},
	"tsh":           {"all": "0.4-4.0 mIU/L"},
	"hba1c":         {"all": "<5.7% (normal), 5.7-6.4% (prediabetes), ≥6.5% (diabetes)"},
	"alt":           {"all": "7-56 U/L"},
	"ast":           {"all": "10-40 U/L"},
	"inr":           {"all": "0.8-1.1"},
	"bnp":           {"all": "<100 pg/mL"},
	"procalcitonin": {"all": "<0.25 ng/mL"},
}

// ReferenceRangeByTest looks up a lab test's reference ranges keyed by
// population. The second return reports whether the test is known.
func ReferenceRangeByTest(name string) (map[string]string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")
	ranges, ok := labReferenceRanges[key]
	return ranges, ok
}

// LabTest pairs a test name with its reference ranges, for search results.
type LabTest struct {
	Name   string            `json:"test"`
	Ranges map[string]string `json:"reference_ranges"`
}

// LabTestsContaining returns the lab tests whose name contains the search
// term, sorted alphabetically.
func LabTestsContaining(term string) []LabTest {
	lower := strings.ToLower(term)
	var out []LabTest
	for name, ranges := range labReferenceRanges {
		if strings.Contains(name, lower) {
			out = append(out, LabTest{Name: name, Ranges: ranges})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Protocol is one emergency response protocol.
type Protocol struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

var emergencyProtocols = map[string]Protocol{
	"cardiac arrest": {
		Name: "ACLS",
		Steps: []string{
			"Check responsiveness and pulse",
			"Call for help and AED",
			"Begin CPR (30:2 ratio)",
			"Analyze rhythm when AED arrives",
			"Follow ACLS algorithm",
		},
	},
	"anaphylaxis": {
		Name: "Anaphylaxis first response",
		Steps: []string{
			"Epinephrine 0.3-0.5mg IM",
			"IV fluids for hypotension",
			"Albuterol for bronchospasm",
			"H1 and H2 antihistamines",
			"Monitor for biphasic reaction 4-12 hours later",
		},
	},
	"stroke": {
		Name: "Acute stroke pathway",
		Steps: []string{
			"Confirm time of symptom onset",
			"IV tPA window: 4.5 hours from onset",
			"Mechanical thrombectomy window: 24 hours (selected patients)",
			"Screen tPA contraindications: recent surgery, active bleeding, BP >185/110",
		},
	},
}

// ProtocolByCondition looks up the emergency protocol for a condition. The
// second return reports whether one exists.
func ProtocolByCondition(name string) (Protocol, bool) {
	p, ok := emergencyProtocols[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}
