package knowledge

import "strings"

// ClinicalTool is one validated decision tool.
type ClinicalTool struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

var clinicalTools = []ClinicalTool{
	{"heart_score", "Chest pain risk stratification", "cardiovascular"},
	{"ascvd_risk", "Atherosclerotic cardiovascular disease risk", "cardiovascular"},
	{"cha2ds2_vasc", "Stroke risk in atrial fibrillation", "cardiovascular"},
	{"wells_pe", "Pulmonary embolism probability", "cardiovascular"},
	{"wells_dvt", "Deep vein thrombosis probability", "cardiovascular"},
	{"nihss", "National Institutes of Health Stroke Scale", "neurology"},
	{"glasgow_coma", "Glasgow Coma Scale", "neurology"},
	{"abcd2", "Stroke risk after TIA", "neurology"},
	{"qsofa", "Quick SOFA sepsis screen", "emergency_medicine"},
	{"curb65", "Pneumonia severity", "emergency_medicine"},
	{"ottawa_ankle", "Ankle fracture imaging rules", "emergency_medicine"},
	{"ottawa_knee", "Knee fracture imaging rules", "emergency_medicine"},
	{"canadian_c_spine", "Cervical spine imaging rules", "emergency_medicine"},
	{"child_pugh", "Liver disease severity", "gastroenterology"},
	{"meld", "Model for End-Stage Liver Disease", "gastroenterology"},
	{"glasgow_blatchford", "Upper GI bleeding risk", "gastroenterology"},
	{"gold_copd", "COPD severity classification", "pulmonology"},
	{"pesi", "Pulmonary Embolism Severity Index", "pulmonology"},
	{"ckd_epi", "Chronic kidney disease staging", "nephrology"},
}

// ToolsMatching returns the decision tools whose key words appear in the
// query, in table order. No match yields an empty slice.
func ToolsMatching(query string) []ClinicalTool {
	lower := strings.ToLower(query)
	var out []ClinicalTool
	for _, tool := range clinicalTools {
		for _, word := range strings.Split(tool.Key, "_") {
			if strings.Contains(lower, word) {
				out = append(out, tool)
				break
			}
		}
	}
	return out
}

// DrugNames returns the known medication names, for query scanning.
func DrugNames() []string {
	return []string{"warfarin", "metformin", "digoxin", "lisinopril"}
}

// ToolsContaining returns the decision tools whose key or description
// contains the search term, in table order.
func ToolsContaining(term string) []ClinicalTool {
	lower := strings.ToLower(term)
	var out []ClinicalTool
	for _, tool := range clinicalTools {
		if strings.Contains(tool.Key, lower) || strings.Contains(strings.ToLower(tool.Description), lower) {
			out = append(out, tool)
		}
	}
	return out
}

// LiteratureSources maps source registry categories to recognized guideline
// and journal bodies. The cross-table search reports its size.
var LiteratureSources = map[string]map[string]string{
	"clinical_guidelines": {
		"american_college_cardiology": "ACC/AHA Guidelines",
		"infectious_diseases_society": "IDSA Guidelines",
		"american_diabetes_association": "ADA Standards of Care",
		"uspstf":   "US Preventive Services Task Force",
		"cdc":      "CDC Clinical Guidelines",
		"who":      "World Health Organization Guidelines",
		"nice":     "NICE Clinical Guidelines (UK)",
		"cochrane": "Cochrane Systematic Reviews",
	},
	"medical_journals": {
		"nejm":        "New England Journal of Medicine",
		"jama":        "Journal of the American Medical Association",
		"lancet":      "The Lancet",
		"bmj":         "British Medical Journal",
		"circulation": "Circulation (Cardiology)",
	},
	"evidence_databases": {
		"pubmed":           "PubMed/MEDLINE",
		"cochrane_library": "Cochrane Library",
		"uptodate":         "UpToDate",
		"dynamed":          "DynaMed",
	},
}

// LiteratureSourceCount returns the number of registered sources across all
// categories.
func LiteratureSourceCount() int {
	n := 0
	for _, category := range LiteratureSources {
		n += len(category)
	}
	return n
}
