package pagination_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/tutela/pkg/pagination"
	"github.com/JaimeStill/tutela/pkg/query"
)

func testConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := pagination.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfigFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TUTELA_TEST_PAGE_SIZE", "25")
	t.Setenv("TUTELA_TEST_MAX_PAGE", "250")

	env := &pagination.ConfigEnv{
		DefaultPageSize: "TUTELA_TEST_PAGE_SIZE",
		MaxPageSize:     "TUTELA_TEST_MAX_PAGE",
	}

	cfg := pagination.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultPageSize != 25 {
		t.Errorf("DefaultPageSize = %d, want 25", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 250 {
		t.Errorf("MaxPageSize = %d, want 250", cfg.MaxPageSize)
	}
}

func TestConfigFinalizeValidation(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 500, MaxPageSize: 100}
	err := cfg.Finalize(nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "default_page_size cannot exceed max_page_size") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigMerge(t *testing.T) {
	base := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	overlay := pagination.Config{MaxPageSize: 500}
	base.Merge(&overlay)

	if base.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20 (unchanged)", base.DefaultPageSize)
	}
	if base.MaxPageSize != 500 {
		t.Errorf("MaxPageSize = %d, want 500", base.MaxPageSize)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name         string
		req          pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero values get defaults", pagination.PageRequest{}, 1, 20},
		{"negative page corrected", pagination.PageRequest{Page: -3, PageSize: 10}, 1, 10},
		{"page size clamped to max", pagination.PageRequest{Page: 2, PageSize: 1000}, 2, 100},
		{"valid values preserved", pagination.PageRequest{Page: 4, PageSize: 50}, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(cfg)
			if tt.req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
	}{
		{"first page", 1, 20, 0},
		{"second page", 2, 20, 20},
		{"fifth page size 10", 5, 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			if got := req.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	cfg := testConfig()

	t.Run("all params present", func(t *testing.T) {
		values := url.Values{
			"page":      {"3"},
			"page_size": {"10"},
			"search":    {"credit"},
			"sort":      {"name,-updated_at"},
		}

		req := pagination.PageRequestFromQuery(values, cfg)

		if req.Page != 3 {
			t.Errorf("Page = %d, want 3", req.Page)
		}
		if req.PageSize != 10 {
			t.Errorf("PageSize = %d, want 10", req.PageSize)
		}
		if req.Search == nil || *req.Search != "credit" {
			t.Errorf("Search = %v, want 'credit'", req.Search)
		}
		if len(req.Sort) != 2 {
			t.Fatalf("Sort length = %d, want 2", len(req.Sort))
		}
		if req.Sort[0].Field != "name" || req.Sort[0].Descending {
			t.Errorf("Sort[0] = %v, want {name false}", req.Sort[0])
		}
		if req.Sort[1].Field != "updated_at" || !req.Sort[1].Descending {
			t.Errorf("Sort[1] = %v, want {updated_at true}", req.Sort[1])
		}
	})

	t.Run("empty params get defaults", func(t *testing.T) {
		req := pagination.PageRequestFromQuery(url.Values{}, cfg)

		if req.Page != 1 {
			t.Errorf("Page = %d, want 1", req.Page)
		}
		if req.PageSize != 20 {
			t.Errorf("PageSize = %d, want 20", req.PageSize)
		}
		if req.Search != nil {
			t.Errorf("Search = %v, want nil", req.Search)
		}
	})
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page           int
		pageSize       int
		wantTotalPages int
	}{
		{"exact division", 60, 1, 20, 3},
		{"remainder", 61, 1, 20, 4},
		{"single page", 7, 1, 20, 1},
		{"empty result", 0, 1, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{"x"}, tt.total, tt.page, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.Total != tt.total {
				t.Errorf("Total = %d, want %d", result.Total, tt.total)
			}
		})
	}
}

func TestNewPageResultNilDataBecomesEmpty(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 20)
	if result.Data == nil {
		t.Error("Data should be empty slice, not nil")
	}
}

func TestSortFieldsUnmarshalString(t *testing.T) {
	var sf pagination.SortFields
	if err := json.Unmarshal([]byte(`"deadline,-created_at"`), &sf); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(sf) != 2 {
		t.Fatalf("length = %d, want 2", len(sf))
	}
	if sf[0] != (query.SortField{Field: "deadline", Descending: false}) {
		t.Errorf("sf[0] = %v, want {deadline false}", sf[0])
	}
	if sf[1] != (query.SortField{Field: "created_at", Descending: true}) {
		t.Errorf("sf[1] = %v, want {created_at true}", sf[1])
	}
}

func TestSortFieldsUnmarshalArray(t *testing.T) {
	input := `[{"Field":"deadline","Descending":false},{"Field":"created_at","Descending":true}]`
	var sf pagination.SortFields
	if err := json.Unmarshal([]byte(input), &sf); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(sf) != 2 {
		t.Fatalf("length = %d, want 2", len(sf))
	}
	if sf[0].Field != "deadline" || sf[0].Descending {
		t.Errorf("sf[0] = %v, want {deadline false}", sf[0])
	}
	if sf[1].Field != "created_at" || !sf[1].Descending {
		t.Errorf("sf[1] = %v, want {created_at true}", sf[1])
	}
}
