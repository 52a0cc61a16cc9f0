package engine

import (
	"strings"
	"testing"

	"leny-backend/models"
)

func sampleData() models.ClinicalData {
	return models.ClinicalData{
		MostLikelyDiagnoses: []models.Diagnosis{
			{Name: "Ankle sprain", Description: "typically presents with swelling and pain on weight bearing"},
		},
		RedFlagDiagnoses: []models.Diagnosis{
			{Name: "Fracture", Description: "inability to bear weight"},
		},
		KeyHistoryQuestions: []string{"Q1", "Q2", "Q3", "Q4", "Q5"},
		PhysicalExamFocus:   []string{"Ottawa ankle assessment"},
		DiagnosticStrategy: []models.TestRecommendation{
			{Condition: "Ottawa criteria met", RecommendedTest: "X-ray"},
		},
		InitialManagement: []string{
			"Rest, ice, compression, elevation",
			"Refer to orthopedic specialist if not improving",
			"Consult physical therapy",
		},
	}
}

func TestFormatProvider(t *testing.T) {
	got := formatForAudience(sampleData(), models.UserProvider, models.Orthopedics)

	if !strings.Contains(got, "**Clinical Assessment - Orthopedics**") {
		t.Error("missing provider header")
	}
	for _, section := range []string{"Most Likely Diagnoses", "Must Not Miss", "Key History", "Physical Exam Focus", "Diagnostic Approach", "Initial Management"} {
		if !strings.Contains(got, section) {
			t.Errorf("missing section %q", section)
		}
	}
	if !strings.Contains(got, "If Ottawa criteria met → X-ray") {
		t.Error("diagnostic strategy not rendered")
	}
	if !strings.Contains(got, "Refer to orthopedic specialist") {
		t.Error("provider rendering must keep referral steps")
	}
	if !strings.Contains(got, "typically presents with") {
		t.Error("provider rendering must keep clinical phrasing")
	}
}

func TestFormatPatient(t *testing.T) {
	got := formatForAudience(sampleData(), models.UserPatient, models.Orthopedics)

	t.Run("relabels sections", func(t *testing.T) {
		for _, section := range []string{"Most Likely Causes", "When to Seek Immediate Care", "What to Expect", "What You Can Do"} {
			if !strings.Contains(got, section) {
				t.Errorf("missing section %q", section)
			}
		}
		if strings.Contains(got, "Diagnostic Approach") || strings.Contains(got, "Physical Exam Focus") {
			t.Error("provider sections leaked into patient rendering")
		}
	})

	t.Run("hides referral language", func(t *testing.T) {
		for _, word := range providerOnlyWords {
			if strings.Contains(strings.ToLower(got), word) {
				t.Errorf("patient rendering contains provider word %q", word)
			}
		}
		if !strings.Contains(got, "Rest, ice, compression, elevation") {
			t.Error("actionable management step missing")
		}
	})

	t.Run("caps history questions at three", func(t *testing.T) {
		if !strings.Contains(got, "Q3") {
			t.Error("third question missing")
		}
		if strings.Contains(got, "Q4") {
			t.Error("questions beyond three should be dropped")
		}
	})

	t.Run("simplifies clinical phrasing", func(t *testing.T) {
		if strings.Contains(got, "typically presents with") {
			t.Error("clinical phrasing not simplified")
		}
		if !strings.Contains(got, "usually causes") {
			t.Error("plain-language replacement missing")
		}
	})
}

func TestFormatDeterministic(t *testing.T) {
	data := sampleData()
	for _, ut := range []models.UserType{models.UserPatient, models.UserProvider} {
		a := formatForAudience(data, ut, models.Orthopedics)
		b := formatForAudience(data, ut, models.Orthopedics)
		if a != b {
			t.Errorf("rendering for %s not deterministic", ut)
		}
	}
}

func TestFormatEmptyData(t *testing.T) {
	empty := models.ClinicalData{}
	provider := formatForAudience(empty, models.UserProvider, models.InternalMedicine)
	if !strings.Contains(provider, "Clinical Assessment") {
		t.Error("provider header missing for empty data")
	}
	if strings.Contains(provider, "Most Likely Diagnoses") {
		t.Error("empty sections should not render")
	}
	patient := formatForAudience(empty, models.UserPatient, models.InternalMedicine)
	if strings.Contains(patient, "What You Can Do") {
		t.Error("empty management should not render a section")
	}
}

func TestAssembleFromKnowledge(t *testing.T) {
	t.Run("known specialty and context", func(t *testing.T) {
		data := assembleFromKnowledge(models.ContextSymptom, models.Cardiology)
		if len(data.MostLikelyDiagnoses) == 0 || len(data.MostLikelyDiagnoses) > 3 {
			t.Errorf("got %d likely diagnoses, want 1-3", len(data.MostLikelyDiagnoses))
		}
		if len(data.RedFlagDiagnoses) == 0 {
			t.Error("expected cardiology red flag diagnoses")
		}
		if len(data.DiagnosticStrategy) == 0 {
			t.Error("expected a diagnostic strategy for symptom context")
		}
	})

	t.Run("unknown specialty degrades, never empty", func(t *testing.T) {
		for _, ct := range models.ContextTypes {
			data := assembleFromKnowledge(ct, models.Specialty("underwater_basket_medicine"))
			if len(data.KeyHistoryQuestions) == 0 {
				t.Errorf("context %q: no history questions", ct)
			}
			if len(data.PhysicalExamFocus) == 0 {
				t.Errorf("context %q: no exam focus", ct)
			}
			if len(data.InitialManagement) == 0 {
				t.Errorf("context %q: no management", ct)
			}
		}
	})
}

func TestParseClinicalJSON(t *testing.T) {
	t.Run("bare json", func(t *testing.T) {
		data, err := parseClinicalJSON(`{"key_history_questions": ["q"]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data.KeyHistoryQuestions) != 1 {
			t.Errorf("got %d questions", len(data.KeyHistoryQuestions))
		}
	})

	t.Run("fenced json", func(t *testing.T) {
		if _, err := parseClinicalJSON("```json\n{\"initial_management\": [\"rest\"]}\n```"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("prose fails", func(t *testing.T) {
		if _, err := parseClinicalJSON("I am not JSON"); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("empty fails", func(t *testing.T) {
		if _, err := parseClinicalJSON("   "); err == nil {
			t.Fatal("expected error for empty output")
		}
	})
}
