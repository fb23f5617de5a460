package domain

import (
	"errors"
	"testing"
)

func TestMovieQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*MovieQuery)
		wantErr bool
	}{
		{name: "defaults are valid", modify: func(q *MovieQuery) {}},
		{name: "zero page", modify: func(q *MovieQuery) { q.Page = 0 }, wantErr: true},
		{name: "negative page", modify: func(q *MovieQuery) { q.Page = -3 }, wantErr: true},
		{name: "zero limit", modify: func(q *MovieQuery) { q.Limit = 0 }, wantErr: true},
		{name: "unknown sort field", modify: func(q *MovieQuery) { q.SortField = "budget" }, wantErr: true},
		{name: "empty sort field", modify: func(q *MovieQuery) { q.SortField = "" }, wantErr: true},
		{name: "unknown sort direction", modify: func(q *MovieQuery) { q.SortDirection = "up" }, wantErr: true},
		{name: "sort by title ascending", modify: func(q *MovieQuery) {
			q.SortField = SortByTitle
			q.SortDirection = SortAsc
		}},
		{name: "unknown genre is not an error", modify: func(q *MovieQuery) { q.Genres = []Genre{"Noir"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewMovieQuery()
			tt.modify(&q)

			err := q.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Validate() error = %v, want ErrInvalidArgument", err)
				}
				return
			}

			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestMovieCriteriaSearchTerm(t *testing.T) {
	tests := []struct {
		search string
		want   string
	}{
		{search: "", want: ""},
		{search: "   ", want: ""},
		{search: " Love ", want: "love"},
		{search: "SCI-FI", want: "sci-fi"},
	}

	for _, tt := range tests {
		got := MovieCriteria{Search: tt.search}.SearchTerm()
		if got != tt.want {
			t.Errorf("SearchTerm(%q) = %q, want %q", tt.search, got, tt.want)
		}
	}
}
