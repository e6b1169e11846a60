package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEstablishesSession(t *testing.T) {
	r := newTestServer(t)
	cl := newClient(t, r)

	body := registerUser(t, cl, "alice", "s3cret")

	assert.Equal(t, "/complete-profile", body["redirect"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, false, user["profile_completed"])

	// Session cookie dari register langsung berlaku
	w := cl.get("/auth/me")
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, user["id"], me["id"])
}

func TestRegisterValidation(t *testing.T) {
	r := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"username":"x"}`},
		{"missing username", `{"password":"x"}`},
		{"empty fields", `{"username":"","password":""}`},
		{"malformed json", `{"username":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newClient(t, r).postJSON("/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	r := newTestServer(t)

	registerUser(t, newClient(t, r), "bob", "pw1")

	w := newClient(t, r).postJSON("/auth/register", `{"username":"bob","password":"pw2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, w)["error"])
}

func TestLoginWrongCredentials(t *testing.T) {
	r := newTestServer(t)
	registerUser(t, newClient(t, r), "carol", "rightpw")

	// Password salah dan username tak dikenal: status dan pesan sama
	for _, body := range []string{
		`{"username":"carol","password":"wrongpw"}`,
		`{"username":"ghost","password":"rightpw"}`,
	} {
		w := newClient(t, r).postJSON("/auth/login", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid username or password", decodeBody(t, w)["error"])
	}
}

func TestLoginRedirectDependsOnProfileCompletion(t *testing.T) {
	r := newTestServer(t)
	registerUser(t, newClient(t, r), "dave", "pw")

	cl := newClient(t, r)
	w := cl.postJSON("/auth/login", `{"username":"dave","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/complete-profile", decodeBody(t, w)["redirect"])

	w = cl.postJSON("/auth/complete-profile", `{"fullName":"Dave D.","gender":"male"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = newClient(t, r).postJSON("/auth/login", `{"username":"dave","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/dashboard", decodeBody(t, w)["redirect"])
}

func TestCompleteProfileEmptyBodyStillSetsFlag(t *testing.T) {
	r := newTestServer(t)
	cl := newClient(t, r)
	registerUser(t, cl, "erin", "pw")

	w := cl.postJSON("/auth/complete-profile", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "/dashboard", body["redirect"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, true, user["profile_completed"])
	assert.Nil(t, user["gender"], "field yang tidak dikirim tetap kosong")
}

func TestUpdateProfileKeepsCompletionFlag(t *testing.T) {
	r := newTestServer(t)
	cl := newClient(t, r)
	registerUser(t, cl, "frank", "pw")

	w := cl.putJSON("/auth/update-profile", `{"gender":"male"}`)
	require.Equal(t, http.StatusOK, w.Code)

	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "male", user["gender"])
	assert.Equal(t, false, user["profile_completed"])
}

func TestProfileEndpointsRequireSession(t *testing.T) {
	r := newTestServer(t)
	cl := newClient(t, r)

	w := cl.postJSON("/auth/complete-profile", `{"gender":"male"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = cl.putJSON("/auth/update-profile", `{"gender":"male"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = cl.get("/auth/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	r := newTestServer(t)
	cl := newClient(t, r)
	registerUser(t, cl, "grace", "pw")

	w := cl.postJSON("/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = cl.get("/auth/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logout kedua tetap sukses
	w = cl.postJSON("/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPasswordNeverLeaks(t *testing.T) {
	r := newTestServer(t)
	cl := newClient(t, r)

	body := cl.postJSON("/auth/register", `{"username":"heidi","password":"topsecret"}`)
	require.Equal(t, http.StatusCreated, body.Code)
	assert.NotContains(t, body.Body.String(), "topsecret")
	assert.NotContains(t, body.Body.String(), "password")

	w := cl.postJSON("/auth/login", `{"username":"heidi","password":"topsecret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "topsecret")
	assert.NotContains(t, w.Body.String(), "password")

	w = cl.get("/auth/me")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "topsecret")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestPlaceholderRelationEndpoints(t *testing.T) {
	r := newTestServer(t)
	cl := newClient(t, r)
	registerUser(t, cl, "ivan", "pw")

	w := cl.get("/auth/met-users")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["met_users"])

	w = cl.get("/auth/reconnect-requests")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["reconnect_requests"])
}

func TestHealthAndHome(t *testing.T) {
	r := newTestServer(t)
	cl := newClient(t, r)

	w := cl.get("/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])

	w = cl.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
}
