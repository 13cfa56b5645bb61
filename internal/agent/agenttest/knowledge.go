package agenttest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Summary is the negative data a fake knowledge server holds for one brand.
type Summary struct {
	Reviews []string `json:"negative_reviews,omitempty"`
	Reddit  []string `json:"negative_reddit,omitempty"`
	Social  []string `json:"negative_social,omitempty"`
}

// KnowledgeServer fakes the remote knowledge graph HTTP API. Brands missing
// from the summaries get an empty summary.
type KnowledgeServer struct {
	*httptest.Server

	mu        sync.Mutex
	summaries map[string]Summary
	brands    []string
	fail      bool
	hits      map[string]int
}

// NewKnowledgeServer starts a fake closed at test cleanup.
func NewKnowledgeServer(t *testing.T, summaries map[string]Summary, brands []string) *KnowledgeServer {
	t.Helper()
	ks := &KnowledgeServer{summaries: summaries, brands: brands, hits: map[string]int{}}
	ks.Server = httptest.NewServer(http.HandlerFunc(ks.serve))
	t.Cleanup(ks.Close)
	return ks
}

// Hits counts requests received on path.
func (ks *KnowledgeServer) Hits(path string) int {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	return ks.hits[path]
}

// SetFail makes every endpoint answer 500 while on.
func (ks *KnowledgeServer) SetFail(on bool) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.fail = on
}

// SetBrands replaces the catalog.
func (ks *KnowledgeServer) SetBrands(brands []string) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.brands = brands
}

func (ks *KnowledgeServer) serve(w http.ResponseWriter, r *http.Request) {
	ks.mu.Lock()
	ks.hits[r.URL.Path]++
	fail, brands, summary := ks.fail, ks.brands, ks.summaries[r.URL.Query().Get("brand_name")]
	ks.mu.Unlock()

	if fail {
		http.Error(w, "unavailable", http.StatusInternalServerError)
		return
	}

	var body any
	switch r.URL.Path {
	case "/kg/get_brand_summary":
		body = map[string]any{"summary": summary}
	case "/kg/get_all_brands":
		if brands == nil {
			brands = []string{}
		}
		body = map[string]any{"brands": brands}
	case "/kg/query_brand_data":
		var results []string
		switch r.URL.Query().Get("data_type") {
		case "reviews":
			results = summary.Reviews
		case "reddit_threads":
			results = summary.Reddit
		case "social_comments":
			results = summary.Social
		}
		if results == nil {
			results = []string{}
		}
		body = map[string]any{"results": results}
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
