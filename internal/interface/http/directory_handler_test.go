package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestDirectoryListings(t *testing.T) {
	env := newTestEnv(t, nil)

	paths := []string{
		"/api/academic/tutoring",
		"/api/academic/resources",
		"/api/financial/scholarships",
		"/api/financial/jobs",
		"/api/community/volunteer",
	}
	for _, path := range paths {
		rec, body := env.do(t, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, rec.Code)
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(body.Data, &items); err != nil {
			t.Errorf("%s: decode: %v", path, err)
			continue
		}
		if len(items) == 0 {
			t.Errorf("%s: empty listing", path)
		}
	}
}

func TestScholarshipEntriesHaveDeadlines(t *testing.T) {
	env := newTestEnv(t, nil)

	rec, body := env.do(t, http.MethodGet, "/api/financial/scholarships", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list []struct {
		Title    string `json:"title"`
		Deadline string `json:"deadline"`
	}
	if err := json.Unmarshal(body.Data, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, s := range list {
		if s.Title == "" || s.Deadline == "" {
			t.Fatalf("incomplete entry: %+v", s)
		}
	}
}
