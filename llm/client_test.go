package llm

import (
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Run("nil without api key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		if c := NewClient("gpt-4o-mini"); c != nil {
			t.Error("expected nil client without key")
		}
	})

	t.Run("nil without model", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		if c := NewClient(""); c != nil {
			t.Error("expected nil client without model")
		}
	})

	t.Run("timeout override", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("GENERATION_TIMEOUT", "5s")
		c := NewClient("gpt-4o-mini")
		if c == nil {
			t.Fatal("expected client")
		}
		if c.Timeout != 5*time.Second {
			t.Errorf("timeout = %v, want 5s", c.Timeout)
		}
	})

	t.Run("invalid timeout keeps default", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("GENERATION_TIMEOUT", "soon")
		c := NewClient("gpt-4o-mini")
		if c == nil {
			t.Fatal("expected client")
		}
		if c.Timeout != defaultTimeout {
			t.Errorf("timeout = %v, want default", c.Timeout)
		}
	})
}
