package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
)

func TestListResourcesIsPublic(t *testing.T) {
	env := newTestEnv(t, nil)
	env.resources.seed("Campus Crisis Hotline", entity.ResourceHotline)
	env.resources.seed("Counseling Center", entity.ResourceCounseling)

	rec, body := env.do(t, http.MethodGet, "/api/mental-health/resources", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list []struct {
		Title string `json:"title"`
		Type  string `json:"type"`
	}
	if err := json.Unmarshal(body.Data, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}

func TestCreateResourceValidatesType(t *testing.T) {
	env := newTestEnv(t, nil)
	_, token := env.signup(t, "Alice", "alice@campus.edu", "S-1001")

	rec, _ := env.do(t, http.MethodPost, "/api/mental-health/resources", token, gin.H{
		"title":       "Yoga Club",
		"description": "weekly sessions",
		"contact":     "yoga@campus.edu",
		"type":        "yoga", // not a known type
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec, body := env.do(t, http.MethodPost, "/api/mental-health/resources", token, gin.H{
		"title":       "Yoga Club",
		"description": "weekly sessions",
		"contact":     "yoga@campus.edu",
		"type":        "wellness",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var data struct {
		Type      string `json:"type"`
		CreatedBy string `json:"createdBy"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Type != "wellness" {
		t.Fatalf("type = %q", data.Type)
	}
	if data.CreatedBy == "" {
		t.Fatal("createdBy not set from token")
	}
}

func TestSeededResourceIsAdminOnly(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.resources.seed("Campus Crisis Hotline", entity.ResourceHotline)
	_, student := env.signup(t, "Alice", "alice@campus.edu", "S-1001")
	admin := env.adminToken(t, "admin-1")

	rec, _ := env.do(t, http.MethodPut, "/api/mental-health/resources/"+id, student, gin.H{"contact": "555-0000"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("student update of seeded entry: status = %d, want 403", rec.Code)
	}

	rec, _ = env.do(t, http.MethodDelete, "/api/mental-health/resources/"+id, student, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("student delete of seeded entry: status = %d, want 403", rec.Code)
	}

	rec, body := env.do(t, http.MethodPut, "/api/mental-health/resources/"+id, admin, gin.H{"contact": "555-0000"})
	if rec.Code != http.StatusOK {
		t.Fatalf("admin update of seeded entry: status = %d body %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Contact string `json:"contact"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Contact != "555-0000" {
		t.Fatalf("contact = %q", data.Contact)
	}

	rec, _ = env.do(t, http.MethodDelete, "/api/mental-health/resources/"+id, admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin delete of seeded entry: status = %d", rec.Code)
	}
}

func TestStudentOwnsOwnResource(t *testing.T) {
	env := newTestEnv(t, nil)
	_, owner := env.signup(t, "Owner", "owner@campus.edu", "S-1001")
	_, other := env.signup(t, "Other", "other@campus.edu", "S-1002")

	rec, body := env.do(t, http.MethodPost, "/api/mental-health/resources", owner, gin.H{
		"title":       "Peer Circle",
		"description": "student led group",
		"contact":     "peers@campus.edu",
		"type":        "peer-support",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", rec.Code)
	}
	var data struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec, _ = env.do(t, http.MethodPut, "/api/mental-health/resources/"+data.ID, other, gin.H{"title": "taken over"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner update: status = %d, want 403", rec.Code)
	}

	rec, _ = env.do(t, http.MethodPut, "/api/mental-health/resources/"+data.ID, owner, gin.H{"title": "Peer Circle v2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("owner update: status = %d", rec.Code)
	}
}

func TestMissingResourceIs404(t *testing.T) {
	env := newTestEnv(t, nil)
	_, token := env.signup(t, "Alice", "alice@campus.edu", "S-1001")

	rec, body := env.do(t, http.MethodPut, "/api/mental-health/resources/no-such-id", token, gin.H{"title": "x"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body.Message != "resource not found" {
		t.Fatalf("message = %q", body.Message)
	}
}
