package rag

import (
	"strings"
	"testing"

	"leny-backend/models"
)

func TestLiteratureSearch(t *testing.T) {
	idx := NewLiteratureIndex()

	t.Run("matches topic keywords", func(t *testing.T) {
		got := idx.Search("chest pain for two hours", models.Cardiology, ProfessionalSearchLimit)
		if len(got) == 0 {
			t.Fatal("expected citations for chest pain query")
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		got := idx.Search("chest pain with headache and fever in a child with sore throat", models.InternalMedicine, ConsumerSearchLimit)
		if len(got) > ConsumerSearchLimit {
			t.Errorf("got %d citations, limit is %d", len(got), ConsumerSearchLimit)
		}
	})

	t.Run("no duplicate identities", func(t *testing.T) {
		got := idx.Search("sore throat and pharyngitis with fever", models.InfectiousDisease, 0)
		seen := map[string]bool{}
		for _, c := range got {
			if seen[c.identity()] {
				t.Errorf("duplicate citation %q", c.Title)
			}
			seen[c.identity()] = true
		}
	})

	t.Run("unmatched query returns empty non-nil slice", func(t *testing.T) {
		got := idx.Search("completely unrelated text", models.InternalMedicine, ProfessionalSearchLimit)
		if got == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(got) != 0 {
			t.Errorf("expected no citations, got %d", len(got))
		}
	})

	t.Run("specialty mapping requires matching specialty", func(t *testing.T) {
		withSpecialty := idx.Search("joint swelling", models.Orthopedics, ProfessionalSearchLimit)
		withoutSpecialty := idx.Search("joint swelling", models.Dermatology, ProfessionalSearchLimit)
		if len(withSpecialty) == 0 {
			t.Error("expected orthopedics joint query to pull ankle literature")
		}
		if len(withoutSpecialty) != 0 {
			t.Errorf("dermatology joint query pulled %d citations", len(withoutSpecialty))
		}
	})
}

func TestCitationFormat(t *testing.T) {
	c := Citation{Title: "Diagnosis of Acute Coronary Syndrome", Source: "JAMA", Year: 2022, DOI: "10.1001/jama.2022.0001"}
	got := c.Format()
	if !strings.HasPrefix(got, "• Diagnosis of Acute Coronary Syndrome (JAMA 2022)") {
		t.Errorf("unexpected format: %q", got)
	}
	if !strings.Contains(got, "DOI: 10.1001/jama.2022.0001") {
		t.Errorf("missing DOI in %q", got)
	}

	noDOI := Citation{Title: "Ottawa Ankle Rules", Source: "BMJ", Year: 2003}
	if strings.Contains(noDOI.Format(), "DOI") {
		t.Errorf("unexpected DOI suffix: %q", noDOI.Format())
	}
}

func TestContentIndex(t *testing.T) {
	idx := NewContentIndex()

	t.Run("first matching topic wins", func(t *testing.T) {
		got := idx.Content("chest pain and headache")
		if !strings.Contains(strings.ToLower(got), "chest pain") {
			t.Errorf("expected chest pain content, got %q", got[:min(len(got), 80)])
		}
	})

	t.Run("falls back to generic content", func(t *testing.T) {
		if got := idx.Content("nothing recognizable"); got != genericContent {
			t.Errorf("expected generic content, got %q", got[:min(len(got), 80)])
		}
	})
}

func TestRetrieve(t *testing.T) {
	svc := NewService()

	t.Run("evidence level high with citations", func(t *testing.T) {
		ev := svc.Retrieve("chest pain", models.Cardiology, ProfessionalSearchLimit)
		if ev.EvidenceLevel != "high" {
			t.Errorf("evidence level = %q, want high", ev.EvidenceLevel)
		}
		if ev.Content == "" {
			t.Error("expected non-empty content")
		}
	})

	t.Run("evidence level moderate without citations", func(t *testing.T) {
		ev := svc.Retrieve("unrelated question", models.InternalMedicine, ProfessionalSearchLimit)
		if ev.EvidenceLevel != "moderate" {
			t.Errorf("evidence level = %q, want moderate", ev.EvidenceLevel)
		}
		if len(ev.Citations) != 0 {
			t.Errorf("expected no citations, got %d", len(ev.Citations))
		}
	})
}
