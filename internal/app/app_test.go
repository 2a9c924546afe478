package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/database"
	"jobboard_backend/internal/models"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: is a distinct database, so pin
	// the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Upload.MaxSize = 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"application/pdf"}

	router, err := SetupRouter(cfg, db)
	require.NoError(t, err)

	return &testServer{router: router, db: db}
}

// send drives the router directly, optionally with a bearer token and a
// JSON body.
func (ts *testServer) send(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w, w.Body.String()
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
}

func (ts *testServer) registerUser(t *testing.T, username, email string) authPayload {
	t.Helper()

	w, body := ts.send(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": username,
		"email":    email,
		"password": "super_password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, "registration response: %s", body)

	var payload authPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.NotEmpty(t, payload.Token)
	return payload
}

func (ts *testServer) makeAdmin(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, ts.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", models.UserRoleAdmin).Error)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	w, body := ts.send(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "ok")
}

func TestRegisterLoginAndMe(t *testing.T) {
	ts := newTestServer(t)
	payload := ts.registerUser(t, "alice", "alice@test.com")

	// Login works with either identifier.
	for _, identifier := range []string{"alice", "alice@test.com"} {
		w, body := ts.send(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
			"identifier": identifier,
			"password":   "super_password123",
		})
		assert.Equal(t, http.StatusOK, w.Code, "login response: %s", body)
	}

	// Wrong password is a 401.
	w, _ := ts.send(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"identifier": "alice",
		"password":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// /auth/me reflects the account.
	w, body := ts.send(t, http.MethodGet, "/api/v1/auth/me", payload.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "alice@test.com")
}

func TestRegister_ValidationAndConflicts(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice", "alice@test.com")

	// Malformed email never reaches the store.
	w, _ := ts.send(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "bob",
		"email":    "not-an-email",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Username and email collisions are both 409.
	w, _ = ts.send(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "fresh@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = ts.send(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "bob",
		"email":    "alice@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProfileFullReplace(t *testing.T) {
	ts := newTestServer(t)
	payload := ts.registerUser(t, "alice", "alice@test.com")

	// The registration profile exists already.
	w, body := ts.send(t, http.MethodGet, "/api/v1/profile/me", payload.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, `"name":"alice"`)

	// Fill it out.
	w, _ = ts.send(t, http.MethodPut, "/api/v1/profile/me", payload.Token, map[string]interface{}{
		"name":      "Alice",
		"headline":  "Go developer",
		"skills":    []string{"go", "sql"},
		"website":   "https://alice.dev",
		"is_public": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A later PUT that omits the headline clears it.
	w, body = ts.send(t, http.MethodPut, "/api/v1/profile/me", payload.Token, map[string]interface{}{
		"name":      "Alice",
		"is_public": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, `"headline":""`)
	assert.Contains(t, body, `"website":""`)
}

func TestJobsPublicListAndAuthenticatedCreate(t *testing.T) {
	ts := newTestServer(t)
	payload := ts.registerUser(t, "poster", "poster@test.com")

	// Creating requires a token.
	w, _ := ts.send(t, http.MethodPost, "/api/v1/jobs", "", map[string]interface{}{
		"title": "Go Engineer", "company": "Acme",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := ts.send(t, http.MethodPost, "/api/v1/jobs", payload.Token, map[string]interface{}{
		"title":      "Go Engineer",
		"company":    "Acme",
		"category":   "backend",
		"apply_link": "jobs@acme.dev",
	})
	require.Equal(t, http.StatusCreated, w.Code, "create response: %s", body)
	assert.Contains(t, body, `"link_type":"email"`)

	// Browsing is anonymous.
	w, body = ts.send(t, http.MethodGet, "/api/v1/jobs?category=backend", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "Go Engineer")

	w, body = ts.send(t, http.MethodGet, "/api/v1/jobs?category=frontend", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, `"total":0`)
}

func TestSuspensionLocksOutIssuedTokens(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.registerUser(t, "root", "root@test.com")
	ts.makeAdmin(t, admin.User.ID)
	victim := ts.registerUser(t, "mallory", "mallory@test.com")

	// The victim's token works before moderation steps in.
	w, _ := ts.send(t, http.MethodGet, "/api/v1/profile/me", victim.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body := ts.send(t, http.MethodPut, "/api/v1/admin/users/"+victim.User.ID+"/suspend", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, "suspend response: %s", body)
	assert.Contains(t, body, `"suspended":true`)

	// Same token, next request: locked out, and login refuses too.
	w, _ = ts.send(t, http.MethodGet, "/api/v1/profile/me", victim.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = ts.send(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"identifier": "mallory",
		"password":   "super_password123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Toggle again and the original token is live again.
	w, body = ts.send(t, http.MethodPut, "/api/v1/admin/users/"+victim.User.ID+"/suspend", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, `"suspended":false`)

	w, _ = ts.send(t, http.MethodGet, "/api/v1/profile/me", victim.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	ts := newTestServer(t)
	user := ts.registerUser(t, "alice", "alice@test.com")

	w, _ := ts.send(t, http.MethodGet, "/api/v1/admin/users", user.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = ts.send(t, http.MethodGet, "/api/v1/admin/stats", user.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = ts.send(t, http.MethodGet, "/api/v1/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func (ts *testServer) uploadFile(t *testing.T, token, filename, contentType, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestUploadAndServeFile(t *testing.T) {
	ts := newTestServer(t)
	user := ts.registerUser(t, "alice", "alice@test.com")

	w := ts.uploadFile(t, user.Token, "resume.pdf", "application/pdf", "pdf bytes")
	require.Equal(t, http.StatusCreated, w.Code, "upload response: %s", w.Body.String())

	var payload struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.URL)

	// The returned URL serves the file without a token.
	get, body := ts.send(t, http.MethodGet, payload.URL, "", nil)
	assert.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "pdf bytes", body)
}

func TestUpload_RejectsDisallowedType(t *testing.T) {
	ts := newTestServer(t)
	user := ts.registerUser(t, "alice", "alice@test.com")

	w := ts.uploadFile(t, user.Token, "malware.exe", "application/x-msdownload", "bytes")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	w := ts.uploadFile(t, "", "resume.pdf", "application/pdf", "pdf bytes")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminModerationFlow(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.registerUser(t, "root", "root@test.com")
	ts.makeAdmin(t, admin.User.ID)
	user := ts.registerUser(t, "alice", "alice@test.com")

	// The user posts a job and fills a profile.
	w, body := ts.send(t, http.MethodPost, "/api/v1/jobs", user.Token, map[string]interface{}{
		"title": "Spam Job", "company": "Spam Inc",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))

	// Admin removes the posting.
	w, _ = ts.send(t, http.MethodDelete, "/api/v1/admin/jobs/"+job.ID, admin.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = ts.send(t, http.MethodGet, "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, body, "Spam Job")

	// Admin forces a password reset.
	w, _ = ts.send(t, http.MethodPut, "/api/v1/admin/users/"+user.User.ID+"/reset-password", admin.Token,
		map[string]interface{}{"new_password": "forced_reset789"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = ts.send(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"identifier": "alice",
		"password":   "forced_reset789",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Stats see both users.
	w, body = ts.send(t, http.MethodGet, "/api/v1/admin/stats", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, `"total_users":2`)
	assert.Contains(t, body, `"admin_users":1`)

	// Deleting the account kills its profile and invalidates its token.
	w, _ = ts.send(t, http.MethodDelete, "/api/v1/admin/users/"+user.User.ID, admin.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = ts.send(t, http.MethodGet, "/api/v1/profile/me", user.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var profiles int64
	ts.db.Model(&models.Profile{}).Where("user_id = ?", user.User.ID).Count(&profiles)
	assert.Zero(t, profiles)
}
