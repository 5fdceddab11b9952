package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/talenthub/internal/infrastructure/memory"
	"github.com/oksasatya/talenthub/internal/infrastructure/sample"
	handlers "github.com/oksasatya/talenthub/internal/interface/http"
	"github.com/oksasatya/talenthub/internal/interface/middleware"
	"github.com/oksasatya/talenthub/internal/router/modules"
	"github.com/oksasatya/talenthub/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newEngine serves the full /api surface over st, optionally with metrics.
func newEngine(t *testing.T, st *memory.Store, metrics *middleware.Metrics) *gin.Engine {
	t.Helper()
	logger := quietLogger()
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	if metrics != nil {
		r.Use(metrics.Middleware())
	}
	reg := NewRegistry(r)
	svcs := buildServices(st.Stores(), nil, nil, logger)
	addModules(reg, svcs, nil, logger)
	if metrics != nil {
		reg.AddRoot(modules.NewMetricsModule(handlers.NewMetricsHandler(metrics, svcs.Projects, logger)))
	}
	reg.RegisterAll()
	return r
}

func sampleEngine(t *testing.T) *gin.Engine {
	t.Helper()
	st, err := sample.NewMemoryStore(context.Background())
	require.NoError(t, err)
	return newEngine(t, st, nil)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status    int               `json:"status"`
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	RequestID string            `json:"request_id"`
	Error     map[string]string `json:"error"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestUsers(t *testing.T) {
	r := newEngine(t, memory.NewStore(), nil)

	w := do(r, http.MethodPost, "/api/users", `{"name":"Ada","email":"Ada@Example.com","role":"Designer","password":"longenough"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "ada@example.com", created["email"])
	assert.NotContains(t, created, "passwordHash")
	assert.NotContains(t, created, "password")

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/users", `{"name":"Ada 2","email":"ada@example.com","role":"Designer"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, decode[envelope](t, w).Success)
	})

	t.Run("missing fields are itemized", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/users", `{"email":"not-an-email"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		env := decode[envelope](t, w)
		assert.Equal(t, "Validation error", env.Message)
		assert.Equal(t, "is required", env.Error["name"])
		assert.Equal(t, "must be a valid email", env.Error["email"])
		assert.Equal(t, "is required", env.Error["role"])
	})

	t.Run("get", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/users/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "passwordHash")

		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/users/99", "").Code)
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/users/abc", "").Code)
	})

	t.Run("list with search", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/users?search=ADA", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]map[string]any](t, w), 1)

		w = do(r, http.MethodGet, "/api/users?search=nobody", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestTalents(t *testing.T) {
	r := sampleEngine(t)

	t.Run("server-owned fields are rejected", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/talents", `{"name":"X","role":"Illustrator","bio":"b","availability":"Available Now","rating":5}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "unknown field", decode[envelope](t, w).Error["rating"])
	})

	t.Run("create starts with zero counters", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/talents", `{"name":"Zoe","role":"Illustrator","bio":"Ink and paper","location":"Lisbon","email":"zoe@example.com","availability":"Available Now","skills":["Procreate"]}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		got := decode[map[string]any](t, w)
		assert.Equal(t, float64(7), got["id"])
		assert.Equal(t, float64(0), got["rating"])
		assert.Equal(t, float64(0), got["completedProjects"])
	})

	t.Run("filters and the all sentinel", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/talents?availability=Available+Now&skill=Adobe+Illustrator", "")
		require.Equal(t, http.StatusOK, w.Code)
		names := []string{}
		for _, tl := range decode[[]map[string]any](t, w) {
			names = append(names, tl["name"].(string))
		}
		assert.Equal(t, []string{"Sarah Johnson", "David Kim"}, names)

		all := do(r, http.MethodGet, "/api/talents?role=All+Roles&availability=all", "")
		assert.Len(t, decode[[]map[string]any](t, all), 7)
	})

	t.Run("not found", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/talents/404", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Talent not found", decode[envelope](t, w).Message)
	})
}

func TestWorks(t *testing.T) {
	r := sampleEngine(t)

	t.Run("nested creator errors use dotted keys", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/works", `{"title":"T","description":"D","imageUrl":"https://x/y.png","category":"Poster","creator":{"name":"Nina"}}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "is required", decode[envelope](t, w).Error["creator.id"])
	})

	t.Run("create", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/works", `{"title":"Aurora","description":"Night sky print","imageUrl":"https://img.example.com/a.jpg","category":"Graphic Design","tags":["Poster"],"creator":{"id":1,"name":"Sarah Johnson"}}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, float64(7), decode[map[string]any](t, w)["id"])
	})

	t.Run("alphabetical sort", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/works?category=Graphic+Design&sort=alphabetical", "")
		require.Equal(t, http.StatusOK, w.Code)
		titles := []string{}
		for _, wk := range decode[[]map[string]any](t, w) {
			titles = append(titles, wk["title"].(string))
		}
		assert.Equal(t, []string{"Aurora", "City Birds", "Jazz Night Poster Series"}, titles)
	})

	t.Run("bad creator id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/works?creator=abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProjects(t *testing.T) {
	r := sampleEngine(t)

	t.Run("get includes progress", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/projects/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[map[string]any](t, w)
		assert.Equal(t, float64(33), got["progress"])
		assert.Equal(t, "Website Redesign", got["title"])
	})

	t.Run("stats", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/projects/stats", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"teamSize":6,"activeProjects":3,"completedProjects":1}`, w.Body.String())
	})

	t.Run("status update", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/api/projects/1/status", `{"status":"On Hold"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "On Hold", decode[map[string]any](t, w)["status"])

		w = do(r, http.MethodPatch, "/api/projects/1/status", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Status is required", decode[envelope](t, w).Message)

		w = do(r, http.MethodPatch, "/api/projects/99/status", `{"status":"Completed"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("task update", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/api/projects/1/tasks/3", `{"completed":true}`)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[map[string]any](t, w)
		tasks := got["tasks"].([]any)
		third := tasks[2].(map[string]any)
		assert.Equal(t, true, third["completed"])
		assert.Equal(t, "Completed", third["status"])
		assert.Equal(t, float64(67), got["progress"])

		w = do(r, http.MethodPatch, "/api/projects/1/tasks/3", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Completed status is required", decode[envelope](t, w).Message)

		w = do(r, http.MethodPatch, "/api/projects/1/tasks/42", `{"completed":true}`)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Project or task not found", decode[envelope](t, w).Message)
	})

	t.Run("create assigns task ids", func(t *testing.T) {
		body := `{"title":"Brand Refresh","description":"New palette","client":"Globex","status":"In Progress","dueDate":"2025-03-01",
			"tasks":[{"name":"Audit"},{"name":"Palette","completed":true}],
			"team":[{"id":6,"name":"Nina Patel"}]}`
		w := do(r, http.MethodPost, "/api/projects", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		got := decode[map[string]any](t, w)
		tasks := got["tasks"].([]any)
		require.Len(t, tasks, 2)
		assert.Equal(t, float64(1), tasks[0].(map[string]any)["id"])
		assert.Equal(t, "Not Started", tasks[0].(map[string]any)["status"])
		assert.Equal(t, float64(2), tasks[1].(map[string]any)["id"])
		assert.Equal(t, float64(0), got["fileCount"])
		assert.Equal(t, float64(50), got["progress"])
	})

	t.Run("list by assignee", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/projects?assignee=6", "")
		require.Equal(t, http.StatusOK, w.Code)
		projects := decode[[]map[string]any](t, w)
		require.NotEmpty(t, projects)
		for _, p := range projects {
			ids := []float64{}
			for _, m := range p["team"].([]any) {
				ids = append(ids, m.(map[string]any)["id"].(float64))
			}
			assert.Contains(t, ids, float64(6), p["title"])
		}
	})
}

func TestSearch(t *testing.T) {
	r := sampleEngine(t)
	w := do(r, http.MethodGet, "/api/search?q=poster", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[struct {
		Talents []map[string]any `json:"talents"`
		Works   []map[string]any `json:"works"`
	}](t, w)
	titles := []string{}
	for _, wk := range res.Works {
		titles = append(titles, wk["title"].(string))
	}
	assert.Contains(t, titles, "Jazz Night Poster Series")
	assert.NotContains(t, titles, "Robot Courier")
}

func TestErrorEnvelopeCarriesRequestID(t *testing.T) {
	r := sampleEngine(t)
	req := httptest.NewRequest(http.MethodGet, "/api/works/999", nil)
	req.Header.Set("X-Request-ID", "6f1c9a0e-5b7d-4a63-9a2e-2f4b7f0a8c11")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decode[envelope](t, w)
	assert.Equal(t, "6f1c9a0e-5b7d-4a63-9a2e-2f4b7f0a8c11", env.RequestID)
	assert.Equal(t, http.StatusNotFound, env.Status)
	assert.Equal(t, "Work not found", env.Message)
}

func TestMetricsEndpoint(t *testing.T) {
	st, err := sample.NewMemoryStore(context.Background())
	require.NoError(t, err)
	r := newEngine(t, st, middleware.NewMetrics())

	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/projects", "").Code)
	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `talenthub_projects{status="Completed"} 1`)
	assert.True(t, strings.Contains(body, `talenthub_http_requests_total{code="200",method="GET",route="/api/projects"} 1`), body)
}
