package controllers_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"ser-backend/config"
	"ser-backend/controllers"
	"ser-backend/routes"
	"ser-backend/services"
)

// newTestServer merakit engine lengkap dengan sqlite in-memory,
// cookie session store dan seluruh rute aplikasi.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", t.TempDir()+"/test.db")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, config.RunMigrations(db, "sqlite3"))
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	uploadDir := t.TempDir()

	authService := services.NewAuthService(db, logger)
	uploadService := services.NewUploadService(&services.LocalAvatarStorage{Dir: uploadDir}, logger)
	chatService := services.NewChatService()

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	store.Options(sessions.Options{Path: "/", MaxAge: 86400, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("session", store))

	routes.SetupRoutes(r,
		controllers.NewAuthController(authService),
		controllers.NewUploadController(authService, uploadService),
		controllers.NewChatController(authService, chatService),
		uploadDir)

	return r
}

// client mensimulasikan satu browser: cookie session dibawa antar request.
type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, r *gin.Engine) *client {
	return &client{t: t, r: r}
}

func (cl *client) do(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	cl.t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	cl.r.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		cl.cookies = cookies
	}
	return w
}

func (cl *client) postJSON(path, body string) *httptest.ResponseRecorder {
	return cl.do(http.MethodPost, path, "application/json", strings.NewReader(body))
}

func (cl *client) putJSON(path, body string) *httptest.ResponseRecorder {
	return cl.do(http.MethodPut, path, "application/json", strings.NewReader(body))
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(http.MethodGet, path, "", nil)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, cl *client, username, password string) map[string]interface{} {
	t.Helper()
	w := cl.postJSON("/auth/register", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)
}
