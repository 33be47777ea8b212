package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"recruit-console/internal/bootstrap"
	"recruit-console/internal/config"
	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/server"

	"github.com/stretchr/testify/assert"
)

// fakeBackend stands in for the recruitment API so the whole console
// stack can be exercised end to end.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if r.PostFormValue("username") != "hr" || r.PostFormValue("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "test-token", "token_type": "bearer"})
	})

	requireBearer := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
			return false
		}
		return true
	}

	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		json.NewEncoder(w).Encode(dto.Identity{ID: 1, Username: "hr", Email: "hr@corp.test", Role: dto.RoleCompany, IsActive: true})
	})

	mux.HandleFunc("/jobs/", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		jobs := []dto.Job{
			{ID: 1, Title: "Backend Engineer", Skills: []string{"go"}, CompanyID: 1},
			{ID: 2, Title: "Data Analyst", Skills: []string{"sql"}, CompanyID: 1},
		}
		if r.URL.Path == "/jobs/1" {
			json.NewEncoder(w).Encode(jobs[0])
			return
		}
		json.NewEncoder(w).Encode(jobs)
	})

	mux.HandleFunc("/applicants/", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		json.NewEncoder(w).Encode([]dto.Applicant{{ID: 10, UserID: 5, Name: "Ana", Email: "ana@test"}})
	})

	mux.HandleFunc("/interviews/", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		json.NewEncoder(w).Encode([]dto.Interview{})
	})

	mux.HandleFunc("/offers/", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		json.NewEncoder(w).Encode([]dto.Offer{})
	})

	mux.HandleFunc("/matching/jobs/1/candidates", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		json.NewEncoder(w).Encode(dto.JobCandidatesResponse{
			JobID: 1, JobTitle: "Backend Engineer", TotalCandidates: 1,
			Candidates: []dto.CandidateMatch{{ApplicantID: 10, Name: "Ana", MatchPercentage: 85, MatchedSkills: []string{"go"}}},
		})
	})
	mux.HandleFunc("/matching/jobs/2/candidates", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		// One arm of the fan-out failing must not sink the aggregation.
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newConsole(t *testing.T) *server.Server {
	t.Helper()
	backend := fakeBackend(t)

	t.Setenv("BACKEND_BASE_URL", backend.URL)
	t.Setenv("SESSION_FILE_PATH", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("LOG_FILE_PATH", filepath.Join(t.TempDir(), "console.log"))

	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container)
}

func postJSON(t *testing.T, app *server.Server, path string, payload interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.GetApp().Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func TestLoginThenNavigate(t *testing.T) {
	srv := newConsole(t)

	// Sections are gated until a session exists.
	req := httptest.NewRequest(http.MethodGet, "/api/view/jobs", nil)
	resp, err := srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong credentials stay on the auth view with the backend's message.
	resp = postJSON(t, srv, "/api/auth/login", dto.LoginRequest{Username: "hr", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errRes serverutils.BaseResponse[any]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errRes))
	assert.False(t, errRes.Success)
	assert.Contains(t, errRes.Message, "Incorrect username or password")

	// Correct credentials land on the dashboard.
	resp = postJSON(t, srv, "/api/auth/login", dto.LoginRequest{Username: "hr", Password: "secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginRes serverutils.BaseResponse[dto.SessionView]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&loginRes))
	assert.True(t, loginRes.Success)
	assert.Equal(t, "hr", loginRes.Data.Identity.Username)
	assert.Equal(t, "dashboard", loginRes.Data.ActiveSection)

	// Navigation now loads fresh section data.
	req = httptest.NewRequest(http.MethodGet, "/api/view/jobs", nil)
	resp, err = srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var jobsRes serverutils.BaseResponse[dto.JobsView]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&jobsRes))
	assert.Len(t, jobsRes.Data.Jobs, 2)
	assert.True(t, jobsRes.Data.Jobs[0].CanEdit)
}

func TestJobDetailBacksEditForm(t *testing.T) {
	srv := newConsole(t)
	resp := postJSON(t, srv, "/api/auth/login", dto.LoginRequest{Username: "hr", Password: "secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/1", nil)
	resp, err := srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res serverutils.BaseResponse[dto.Job]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 1, res.Data.ID)
	assert.Equal(t, "Backend Engineer", res.Data.Title)
}

func TestUnknownSectionIsSilentNoOp(t *testing.T) {
	srv := newConsole(t)
	resp := postJSON(t, srv, "/api/auth/login", dto.LoginRequest{Username: "hr", Password: "secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/view/reports", nil)
	resp, err := srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res serverutils.BaseResponse[any]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Nil(t, res.Data)

	// The active view did not move.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	resp, err = srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	var sessionRes serverutils.BaseResponse[dto.SessionView]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&sessionRes))
	assert.Equal(t, "dashboard", sessionRes.Data.ActiveSection)
}

func TestMatchingAggregationSurvivesPartialFailure(t *testing.T) {
	srv := newConsole(t)
	resp := postJSON(t, srv, "/api/auth/login", dto.LoginRequest{Username: "hr", Password: "secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/matching/candidates?min_match_percentage=50", nil)
	resp, err := srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res serverutils.BaseResponse[dto.JobCandidateMatchesView]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 1, res.Data.Total)
	assert.Equal(t, "Ana", res.Data.Matches[0].ApplicantName)
	assert.Equal(t, "Backend Engineer", res.Data.Matches[0].JobTitle)
}

func TestLogoutDropsToAuthView(t *testing.T) {
	srv := newConsole(t)
	resp := postJSON(t, srv, "/api/auth/login", dto.LoginRequest{Username: "hr", Password: "secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp, err := srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Repeated logout stays a no-op.
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp, err = srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Sections are gated again.
	req = httptest.NewRequest(http.MethodGet, "/api/view/dashboard", nil)
	resp, err = srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBackendUnauthorizedDropsSession(t *testing.T) {
	// Backend that grants a session but answers 401 on every job call,
	// as it would once the token stops being honored.
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "short-lived", "token_type": "bearer"})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.Identity{ID: 1, Username: "hr", Role: dto.RoleCompany, IsActive: true})
	})
	mux.HandleFunc("/jobs/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	t.Setenv("BACKEND_BASE_URL", backend.URL)
	t.Setenv("SESSION_FILE_PATH", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("LOG_FILE_PATH", filepath.Join(t.TempDir(), "console.log"))

	cfg := config.Load()
	srv := server.New(cfg, bootstrap.NewContainer(cfg))

	resp := postJSON(t, srv, "/api/auth/login", dto.LoginRequest{Username: "hr", Password: "secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The section load hits the 401 and surfaces it as a session failure.
	req := httptest.NewRequest(http.MethodGet, "/api/view/jobs", nil)
	resp, err := srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The session was torn down centrally: no identity remains.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	resp, err = srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	var sessionRes serverutils.BaseResponse[any]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&sessionRes))
	assert.True(t, sessionRes.Success)
	assert.Nil(t, sessionRes.Data)

	// Every section is gated again, including ones that never errored.
	req = httptest.NewRequest(http.MethodGet, "/api/view/dashboard", nil)
	resp, err = srv.GetApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegistrationValidation(t *testing.T) {
	srv := newConsole(t)

	// Company accounts must carry an employee id.
	resp := postJSON(t, srv, "/api/auth/register", dto.RegisterRequest{
		Username: "corp", Password: "pw", Email: "corp@test.dev", Role: dto.RoleCompany,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var res serverutils.BaseResponse[any]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.Success)
	assert.True(t, strings.Contains(res.Message, "EmployeeID"), fmt.Sprintf("message = %q", res.Message))
}

func TestInvalidJobPayloadRejectedWith400(t *testing.T) {
	srv := newConsole(t)
	resp := postJSON(t, srv, "/api/auth/login", dto.LoginRequest{Username: "hr", Password: "secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A job with every required field missing is the console's own
	// rejection, not a backend fault.
	resp = postJSON(t, srv, "/api/jobs", dto.SaveJobRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var res serverutils.BaseResponse[any]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Title")
}
