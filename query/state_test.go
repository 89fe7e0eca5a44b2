package query

import (
	"testing"

	"github.com/eringen/pubindex/article"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Query != "" || s.Type != article.TypeAll || s.Sort != SortDateDesc || s.Visible != PageSize || !s.FiltersVisible {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestSettersResetVisible(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"query", SetQuery{Query: "go"}},
		{"type", SetType{Type: "Opinion"}},
		{"sort", SetSort{Mode: SortTitleAsc}},
		{"same query again", SetQuery{Query: ""}},
	}
	for _, tt := range tests {
		s := NewState()
		s.Dispatch(LoadMore{}, LoadMore{})
		if s.Visible != 15 {
			t.Fatalf("%s: Visible after two LoadMore = %d, want 15", tt.name, s.Visible)
		}
		s.Dispatch(tt.cmd)
		if s.Visible != PageSize {
			t.Errorf("%s: Visible = %d, want %d", tt.name, s.Visible, PageSize)
		}
	}
}

func TestToggleFiltersKeepsVisible(t *testing.T) {
	s := NewState()
	s.Dispatch(LoadMore{}, ToggleFilters{})
	if s.FiltersVisible {
		t.Error("expected filters hidden after toggle")
	}
	if s.Visible != 10 {
		t.Errorf("Visible = %d, want 10", s.Visible)
	}
	s.Dispatch(ToggleFilters{})
	if !s.FiltersVisible {
		t.Error("expected filters visible after second toggle")
	}
}

func TestSetQueryTrims(t *testing.T) {
	s := NewState()
	s.SetQuery("  Channels \n")
	if s.Query != "Channels" {
		t.Errorf("Query = %q, want %q", s.Query, "Channels")
	}
}

func TestSetTypeUnknownSelectsAll(t *testing.T) {
	s := NewState()
	s.SetType("Explainer")
	if s.Type != "Explainer" {
		t.Fatalf("Type = %q, want Explainer", s.Type)
	}
	s.SetType("Tutorial")
	if s.Type != article.TypeAll {
		t.Errorf("Type = %q, want %q", s.Type, article.TypeAll)
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in   string
		want SortMode
	}{
		{"date-desc", SortDateDesc},
		{"date-asc", SortDateAsc},
		{"title-asc", SortTitleAsc},
		{"title-desc", SortTitleDesc},
		{"", SortDateDesc},
		{"random", SortDateDesc},
	}
	for _, tt := range tests {
		if got := ParseSortMode(tt.in); got != tt.want {
			t.Errorf("ParseSortMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDispatchIgnoresNil(t *testing.T) {
	s := NewState()
	s.Dispatch(nil, LoadMore{})
	if s.Visible != 10 {
		t.Errorf("Visible = %d, want 10", s.Visible)
	}
}
