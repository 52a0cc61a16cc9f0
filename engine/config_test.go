package engine

import (
	"os"
	"path/filepath"
	"testing"

	"leny-backend/models"
)

const testConfigYAML = `cardiology:
  prioritize_keywords:
    - chest pain
  add_tests:
    - condition: suspected acute coronary syndrome
      recommended_test: ECG within 10 minutes
    - condition: new heart failure symptoms
      recommended_test: BNP and echocardiogram
orthopedics:
  add_tests:
    - condition: ankle injury meeting Ottawa criteria
      recommended_test: ankle X-ray series
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent_configs.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAgentConfigs(t *testing.T) {
	t.Run("parses per-specialty config", func(t *testing.T) {
		configs, err := LoadAgentConfigs(writeTestConfig(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg, ok := configs[models.Cardiology]
		if !ok {
			t.Fatal("cardiology config missing")
		}
		if len(cfg.AddTests) != 2 {
			t.Fatalf("got %d add_tests, want 2", len(cfg.AddTests))
		}
		if cfg.AddTests[0].RecommendedTest != "ECG within 10 minutes" {
			t.Errorf("unexpected first test: %q", cfg.AddTests[0].RecommendedTest)
		}
	})

	t.Run("missing file disables tinting", func(t *testing.T) {
		configs, err := LoadAgentConfigs(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("missing file should not error: %v", err)
		}
		if len(configs) != 0 {
			t.Errorf("expected empty configs, got %d", len(configs))
		}
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("cardiology: [not: a, map"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadAgentConfigs(path); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestApplyTinting(t *testing.T) {
	configs, err := LoadAgentConfigs(writeTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("appends tests in config order", func(t *testing.T) {
		data := models.ClinicalData{
			DiagnosticStrategy: []models.TestRecommendation{
				{Condition: "baseline", RecommendedTest: "history and physical"},
			},
		}
		got := applyTinting(data, models.Cardiology, configs)
		if len(got.DiagnosticStrategy) != 3 {
			t.Fatalf("got %d strategy entries, want 3", len(got.DiagnosticStrategy))
		}
		if got.DiagnosticStrategy[0].Condition != "baseline" {
			t.Error("existing entries must stay first")
		}
		if got.DiagnosticStrategy[1].RecommendedTest != "ECG within 10 minutes" {
			t.Error("tinted tests must append in config order")
		}
	})

	t.Run("unconfigured specialty passes through", func(t *testing.T) {
		data := models.ClinicalData{}
		got := applyTinting(data, models.Dermatology, configs)
		if len(got.DiagnosticStrategy) != 0 {
			t.Errorf("expected untouched data, got %d entries", len(got.DiagnosticStrategy))
		}
	})
}
