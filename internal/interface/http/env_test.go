package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/application"
	"github.com/campusbridge/student-support-api/internal/domain/entity"
	"github.com/campusbridge/student-support-api/internal/interface/middleware"
	"github.com/campusbridge/student-support-api/pkg/helpers"
	"github.com/campusbridge/student-support-api/pkg/openai"
	"github.com/campusbridge/student-support-api/pkg/validation"
)

var initOnce sync.Once

type testEnv struct {
	router    *gin.Engine
	jwt       *helpers.JWTManager
	users     *fakeUserRepo
	posts     *fakePostRepo
	events    *fakeEventRepo
	resources *fakeResourceRepo
}

// newTestEnv wires the handlers against in-memory repositories with the
// same route layout the modules register, minus the rate limiters.
func newTestEnv(t *testing.T, ai *openai.Client) *testEnv {
	t.Helper()
	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	env := &testEnv{
		jwt:       helpers.NewJWTManager("test-secret", time.Hour),
		users:     newFakeUserRepo(),
		posts:     newFakePostRepo(),
		events:    newFakeEventRepo(),
		resources: newFakeResourceRepo(),
	}

	authSvc := application.NewAuthService(env.users, env.jwt, logger, nil, "test", false)
	communitySvc := application.NewCommunityService(env.posts, env.events, logger, nil, "")
	resourceSvc := application.NewResourceService(env.resources, nil, logger)
	if ai == nil {
		ai = openai.NewClient("", "http://unused", "test-model")
	}
	chatSvc := application.NewChatService(ai, logger)

	authH := NewAuthHandler(authSvc, logger)
	communityH := NewCommunityHandler(communitySvc, logger)
	resourceH := NewResourceHandler(resourceSvc, logger)
	chatH := NewChatHandler(chatSvc, logger)
	dirH := NewDirectoryHandler()

	r := gin.New()
	api := r.Group("/api")

	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	community := api.Group("/community")
	community.GET("/posts", communityH.ListPosts)
	community.GET("/events", communityH.ListEvents)
	community.GET("/volunteer", dirH.Volunteer)
	communityAuth := community.Group("/")
	communityAuth.Use(middleware.Auth(env.jwt))
	communityAuth.POST("/posts", communityH.CreatePost)
	communityAuth.PUT("/posts/:id", communityH.UpdatePost)
	communityAuth.DELETE("/posts/:id", communityH.DeletePost)
	communityAuth.POST("/events", communityH.CreateEvent)
	communityAuth.PUT("/events/:id", communityH.UpdateEvent)
	communityAuth.DELETE("/events/:id", communityH.DeleteEvent)

	mh := api.Group("/mental-health")
	mh.GET("/resources", resourceH.List)
	mh.POST("/chat", chatH.Chat)
	mhAuth := mh.Group("/")
	mhAuth.Use(middleware.Auth(env.jwt))
	mhAuth.POST("/resources", resourceH.Create)
	mhAuth.PUT("/resources/:id", resourceH.Update)
	mhAuth.DELETE("/resources/:id", resourceH.Delete)

	api.GET("/academic/tutoring", dirH.Tutoring)
	api.GET("/academic/resources", dirH.AcademicResources)
	api.GET("/financial/scholarships", dirH.Scholarships)
	api.GET("/financial/jobs", dirH.Jobs)

	env.router = r
	return env
}

// signup creates a user through the register endpoint and returns its id
// and bearer token.
func (e *testEnv) signup(t *testing.T, name, email, studentID string) (string, string) {
	t.Helper()
	rec, env := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":      name,
		"email":     email,
		"password":  "password123",
		"studentId": studentID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	var data struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode signup data: %v", err)
	}
	return data.User.ID, data.Token
}

// adminToken mints a token with the admin role for an arbitrary user id.
func (e *testEnv) adminToken(t *testing.T, id string) string {
	t.Helper()
	tok, err := e.jwt.Generate(id, entity.RoleAdmin)
	if err != nil {
		t.Fatalf("generate admin token: %v", err)
	}
	return tok
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %s %s: %v (body %s)", method, path, err, rec.Body.String())
		}
	}
	return rec, env
}
