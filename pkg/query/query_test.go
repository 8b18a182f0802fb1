package query_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/tutela/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "remediation_tasks", "t").
		Project("id", "ID").
		Project("system_id", "SystemID").
		Project("article", "Article").
		Project("deadline", "Deadline").
		Project("status", "Status")
}

func TestProjectionFrom(t *testing.T) {
	p := testProjection()
	if got := p.From(); got != "public.remediation_tasks t" {
		t.Errorf("From() = %q, want %q", got, "public.remediation_tasks t")
	}
}

func TestProjectionColumn(t *testing.T) {
	p := testProjection()

	tests := []struct {
		name string
		view string
		want string
	}{
		{"mapped field", "SystemID", "t.system_id"},
		{"another mapped field", "Deadline", "t.deadline"},
		{"unmapped field passes through", "Unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.view); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.view, got, tt.want)
			}
		})
	}
}

func TestProjectionColumns(t *testing.T) {
	p := testProjection()
	want := "t.id, t.system_id, t.article, t.deadline, t.status"
	if got := p.Columns(); got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty", "", nil},
		{"single ascending", "deadline", []query.SortField{{Field: "deadline"}}},
		{"single descending", "-deadline", []query.SortField{{Field: "deadline", Descending: true}}},
		{
			"mixed with whitespace",
			"status, -deadline",
			[]query.SortField{{Field: "status"}, {Field: "deadline", Descending: true}},
		},
		{"blank segments skipped", "status,,", []query.SortField{{Field: "status"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildNoConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT t.id, t.system_id, t.article, t.deadline, t.status FROM public.remediation_tasks t"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuildDefaultSort(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "Deadline"}).Build()

	if !strings.HasSuffix(sql, " ORDER BY t.deadline ASC") {
		t.Errorf("sql = %q, want ORDER BY t.deadline ASC suffix", sql)
	}
}

func TestBuildOrderByOverridesDefault(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "Deadline"})
	b.OrderByFields([]query.SortField{{Field: "Status", Descending: true}})
	sql, _ := b.Build()

	if !strings.HasSuffix(sql, " ORDER BY t.status DESC") {
		t.Errorf("sql = %q, want ORDER BY t.status DESC suffix", sql)
	}
	if strings.Contains(sql, "deadline ASC") {
		t.Errorf("sql = %q, default sort should be overridden", sql)
	}
}

func TestWhereEquals(t *testing.T) {
	status := "open"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Status", status).
		Build()

	if !strings.Contains(sql, "WHERE t.status = $1") {
		t.Errorf("sql = %q, want WHERE t.status = $1", sql)
	}
	if len(args) != 1 || args[0] != "open" {
		t.Errorf("args = %v, want [open]", args)
	}
}

func TestWhereEqualsNilPointerSkipped(t *testing.T) {
	var status *string
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Status", status).
		Build()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("sql = %q, nil pointer should not add a condition", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestWhereBefore(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereBefore("Deadline", "2026-01-01").
		Build()

	if !strings.Contains(sql, "WHERE t.deadline < $1") {
		t.Errorf("sql = %q, want WHERE t.deadline < $1", sql)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want one arg", args)
	}
}

func TestWhereContains(t *testing.T) {
	fragment := "anexo"
	sql, args := query.NewBuilder(testProjection()).
		WhereContains("Article", &fragment).
		Build()

	if !strings.Contains(sql, "WHERE t.article ILIKE $1") {
		t.Errorf("sql = %q, want WHERE t.article ILIKE $1", sql)
	}
	if len(args) != 1 || args[0] != "%anexo%" {
		t.Errorf("args = %v, want [%%anexo%%]", args)
	}
}

func TestWhereContainsNilSkipped(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection()).
		WhereContains("Article", nil).
		Build()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("sql = %q, nil value should not add a condition", sql)
	}
}

func TestWhereSearch(t *testing.T) {
	search := "biometric"
	sql, args := query.NewBuilder(testProjection()).
		WhereSearch(&search, "Article", "Status").
		Build()

	if !strings.Contains(sql, "(t.article ILIKE $1 OR t.status ILIKE $2)") {
		t.Errorf("sql = %q, want grouped OR search clause", sql)
	}
	if len(args) != 2 {
		t.Fatalf("args = %v, want two args", args)
	}
	for i, arg := range args {
		if arg != "%biometric%" {
			t.Errorf("args[%d] = %v, want %%biometric%%", i, arg)
		}
	}
}

func TestConditionsCombineWithSequentialParams(t *testing.T) {
	status := "open"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Status", status).
		WhereBefore("Deadline", "2026-01-01").
		Build()

	if !strings.Contains(sql, "t.status = $1 AND t.deadline < $2") {
		t.Errorf("sql = %q, want sequential parameter numbering", sql)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want two args", args)
	}
}

func TestBuildCount(t *testing.T) {
	status := "open"
	sql, args := query.NewBuilder(testProjection(), query.SortField{Field: "Deadline"}).
		WhereEquals("Status", status).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.remediation_tasks t WHERE t.status = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want one arg", args)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "Deadline"}).
		BuildPage(3, 20)

	if !strings.HasSuffix(sql, "LIMIT 20 OFFSET 40") {
		t.Errorf("sql = %q, want LIMIT 20 OFFSET 40 suffix", sql)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		BuildSingle("ID", "7f4d")

	if !strings.Contains(sql, "WHERE t.id = $1") {
		t.Errorf("sql = %q, want WHERE t.id = $1", sql)
	}
	if len(args) != 1 || args[0] != "7f4d" {
		t.Errorf("args = %v, want [7f4d]", args)
	}
}
