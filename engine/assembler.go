package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"leny-backend/knowledge"
	"leny-backend/models"
)

// Red flag conditions to surface per specialty on the knowledge-base path.
var redFlagConditions = map[models.Specialty][]string{
	models.Cardiology:        {"Acute myocardial infarction", "Unstable angina", "Aortic dissection"},
	models.Neurology:         {"Stroke", "Meningitis", "Increased intracranial pressure"},
	models.EmergencyMedicine: {"Sepsis", "Cardiac arrest", "Respiratory failure"},
	models.Gastroenterology:  {"GI bleeding", "Bowel obstruction", "Acute abdomen"},
	models.Orthopedics:       {"Compartment syndrome", "Open fracture", "Spinal cord injury"},
}

var historyQuestions = map[models.ContextType][]string{
	models.ContextSymptom: {
		"When did the symptoms start?",
		"What makes the symptoms better or worse?",
		"Have you experienced this before?",
		"Any associated symptoms?",
	},
	models.ContextMedication: {
		"What medications are you currently taking?",
		"Any new medications recently started?",
		"Any known drug allergies?",
		"Are you taking medications as prescribed?",
	},
	models.ContextTestResult: {
		"When was the test performed?",
		"What were the specific values?",
		"Any previous similar tests for comparison?",
		"Are you experiencing any symptoms?",
	},
}

var examFocus = map[models.Specialty][]string{
	models.Cardiology:       {"Cardiovascular examination", "Blood pressure", "Heart sounds", "Peripheral pulses"},
	models.Neurology:        {"Neurological examination", "Mental status", "Cranial nerves", "Motor/sensory function"},
	models.Orthopedics:      {"Musculoskeletal examination", "Range of motion", "Strength testing", "Joint stability"},
	models.Gastroenterology: {"Abdominal examination", "Bowel sounds", "Palpation", "Rectal examination"},
}

var genericManagement = []string{
	"Comprehensive history and physical examination",
	"Consider appropriate diagnostic testing",
	"Monitor for red flag symptoms",
	"Follow up as clinically indicated",
	"Seek immediate care if symptoms worsen",
}

// assembleFromKnowledge builds a ClinicalData deterministically from the
// static tables. It degrades gracefully: specialties or context types absent
// from a table yield generic defaults, never an error.
func assembleFromKnowledge(contextType models.ContextType, specialty models.Specialty) models.ClinicalData {
	data := models.ClinicalData{}

	specialtyName := strings.ReplaceAll(string(specialty), "_", " ")
	diagnoses := knowledge.DiagnosesBySpecialty(specialty)
	for i, dx := range diagnoses {
		if i == 3 {
			break
		}
		data.MostLikelyDiagnoses = append(data.MostLikelyDiagnoses, models.Diagnosis{
			Name:        dx.Name,
			Description: fmt.Sprintf("Common %s condition", specialtyName),
			Rationale:   fmt.Sprintf("Frequently seen in %s practice", specialtyName),
		})
	}

	for _, condition := range redFlagConditions[specialty] {
		data.RedFlagDiagnoses = append(data.RedFlagDiagnoses, models.Diagnosis{
			Name:        condition,
			Description: fmt.Sprintf("Serious %s emergency", specialtyName),
			Rationale:   "Requires immediate evaluation and treatment",
		})
	}

	if questions, ok := historyQuestions[contextType]; ok {
		data.KeyHistoryQuestions = append(data.KeyHistoryQuestions, questions...)
	} else {
		data.KeyHistoryQuestions = append(data.KeyHistoryQuestions, historyQuestions[models.ContextSymptom]...)
	}

	if focus, ok := examFocus[specialty]; ok {
		data.PhysicalExamFocus = append(data.PhysicalExamFocus, focus...)
	} else {
		data.PhysicalExamFocus = []string{"Focused physical examination", "Vital signs"}
	}

	switch contextType {
	case models.ContextSymptom:
		data.DiagnosticStrategy = append(data.DiagnosticStrategy, models.TestRecommendation{
			Condition:       "Initial evaluation",
			RecommendedTest: "History and physical examination",
		})
	case models.ContextTestResult:
		data.DiagnosticStrategy = append(data.DiagnosticStrategy, models.TestRecommendation{
			Condition:       "Abnormal test results",
			RecommendedTest: "Correlation with clinical presentation",
		})
	}

	data.InitialManagement = append(data.InitialManagement, genericManagement...)
	return data
}

// parseClinicalJSON decodes generation output into the ClinicalData shape.
// Models often wrap JSON in markdown fences, so those are stripped first.
// Any decode failure is returned to the caller, which must fall back to
// knowledge-base assembly.
func parseClinicalJSON(raw string) (models.ClinicalData, error) {
	cleaned := cleanJSON([]byte(raw))
	if len(cleaned) == 0 {
		return models.ClinicalData{}, fmt.Errorf("empty generation output")
	}
	var data models.ClinicalData
	if err := json.Unmarshal(cleaned, &data); err != nil {
		return models.ClinicalData{}, fmt.Errorf("parse generation output: %w", err)
	}
	return data, nil
}

// cleanJSON strips markdown code fences and surrounding whitespace from
// generation output. Handles ```json\n{...}\n```, ```\n{...}\n``` and bare
// JSON.
func cleanJSON(data []byte) []byte {
	s := bytes.TrimSpace(data)
	if len(s) == 0 {
		return s
	}
	if bytes.HasPrefix(s, []byte("```")) {
		if idx := bytes.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		}
		if bytes.HasSuffix(s, []byte("```")) {
			s = s[:len(s)-3]
		}
		s = bytes.TrimSpace(s)
	}
	return s
}
