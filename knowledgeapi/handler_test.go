package knowledgeapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func postSearch(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/search/medical-knowledge", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type searchResponse struct {
	Query   string `json:"query"`
	Results []struct {
		Category string           `json:"category"`
		Matches  []map[string]any `json:"matches"`
	} `json:"results"`
	TotalSpecialties       int `json:"total_specialties"`
	TotalLiteratureSources int `json:"total_literature_sources"`
}

func categories(resp searchResponse) map[string]int {
	out := map[string]int{}
	for _, section := range resp.Results {
		out[section.Category] = len(section.Matches)
	}
	return out
}

func TestSearchKnowledge(t *testing.T) {
	r := newTestRouter()

	t.Run("lab test search", func(t *testing.T) {
		rr := postSearch(t, r, gin.H{"query": "troponin"})
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
		var resp searchResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if categories(resp)["Laboratory Tests"] == 0 {
			t.Error("expected a Laboratory Tests section")
		}
		if resp.TotalSpecialties == 0 || resp.TotalLiteratureSources == 0 {
			t.Errorf("totals missing: %d specialties, %d sources", resp.TotalSpecialties, resp.TotalLiteratureSources)
		}
	})

	t.Run("drug search includes interactions", func(t *testing.T) {
		rr := postSearch(t, r, gin.H{"query": "warfarin"})
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
		var resp searchResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		cats := categories(resp)
		if cats["Medications"] == 0 {
			t.Fatal("expected a Medications section")
		}
		for _, section := range resp.Results {
			if section.Category != "Medications" {
				continue
			}
			if section.Matches[0]["interactions"] == nil {
				t.Error("drug match missing interactions")
			}
		}
	})

	t.Run("specialty and tool search", func(t *testing.T) {
		rr := postSearch(t, r, gin.H{"query": "cardio"})
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
		var resp searchResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		cats := categories(resp)
		if cats["Medical Specialties"] == 0 {
			t.Error("expected specialty matches for cardio")
		}
		if cats["Clinical Decision Tools"] == 0 {
			t.Error("expected tool matches for cardio")
		}
	})

	t.Run("no matches yields empty results with totals", func(t *testing.T) {
		rr := postSearch(t, r, gin.H{"query": "unobtanium"})
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
		var resp searchResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if len(resp.Results) != 0 {
			t.Errorf("expected no sections, got %d", len(resp.Results))
		}
		if resp.TotalSpecialties == 0 {
			t.Error("totals should be present regardless of matches")
		}
	})

	t.Run("empty query rejected", func(t *testing.T) {
		if rr := postSearch(t, r, gin.H{"query": "  "}); rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rr.Code)
		}
	})
}

func TestDrugInteractions(t *testing.T) {
	r := newTestRouter()

	t.Run("known drug", func(t *testing.T) {
		rr := get(r, "/search/drug-interactions/warfarin")
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
		var resp struct {
			Drug              string   `json:"drug"`
			MajorInteractions []string `json:"major_interactions"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if len(resp.MajorInteractions) == 0 {
			t.Error("expected interactions")
		}
	})

	t.Run("unknown drug", func(t *testing.T) {
		if rr := get(r, "/search/drug-interactions/unobtanium"); rr.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rr.Code)
		}
	})
}

func TestLabReference(t *testing.T) {
	r := newTestRouter()

	t.Run("known test with separator normalization", func(t *testing.T) {
		for _, path := range []string{"/search/lab-reference/troponin", "/search/lab-reference/d_dimer"} {
			if rr := get(r, path); rr.Code != http.StatusOK {
				t.Errorf("%s: status = %d", path, rr.Code)
			}
		}
	})

	t.Run("unknown test", func(t *testing.T) {
		if rr := get(r, "/search/lab-reference/midichlorians"); rr.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rr.Code)
		}
	})
}
