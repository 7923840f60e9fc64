package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistroworks/bistro-server/models"
	"github.com/bistroworks/bistro-server/reporting"
	"github.com/bistroworks/bistro-server/settlement"
	"github.com/bistroworks/bistro-server/web/auth"
	"github.com/bistroworks/bistro-server/web/memory"
)

// testServer wires the full route table with in-memory stores, the real
// token service, and the real guards.
type testServer struct {
	router *mux.Router
	tokens *auth.TokenService
	users  *memory.UserRepo
	menu   *memory.MenuRepo
	carts  *memory.CartRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens := auth.NewTokenService([]byte("test-secret"))
	users := memory.NewUserRepo()
	menu := memory.NewMenuRepo()
	reviews := memory.NewReviewRepo()
	carts := memory.NewCartRepo()
	payments := memory.NewPaymentRepo()

	group := NewHandlerGroup(Dependencies{
		Tokens:     tokens,
		Users:      users,
		Menu:       menu,
		Reviews:    reviews,
		Carts:      carts,
		Settlement: settlement.New(payments, carts),
		Reporting:  reporting.New(users, menu, payments),
	})

	router := mux.NewRouter()
	group.RegisterRoutes(router, auth.NewAuthMiddleware(tokens, users))

	return &testServer{
		router: router,
		tokens: tokens,
		users:  users,
		menu:   menu,
		carts:  carts,
	}
}

func (s *testServer) tokenFor(t *testing.T, email string) string {
	t.Helper()

	token, err := s.tokens.Issue(auth.Claims{Email: email})
	require.NoError(t, err)

	return token
}

func (s *testServer) do(method, target, token string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	if token != "" {
		req.Header.Set(auth.AuthHeaderName, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_Guards(t *testing.T) {
	srv := newTestServer(t)

	require.NoError(t, srv.users.Create(context.Background(), &models.User{
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}))
	require.NoError(t, srv.users.Create(context.Background(), &models.User{
		Email: "user@example.com",
	}))

	adminToken := srv.tokenFor(t, "admin@example.com")
	userToken := srv.tokenFor(t, "user@example.com")

	tests := []struct {
		name           string
		method         string
		target         string
		token          string
		expectedStatus int
	}{
		{name: "Liveness", method: http.MethodGet, target: "/", token: "", expectedStatus: http.StatusOK},
		{name: "Public Menu", method: http.MethodGet, target: "/menu", token: "", expectedStatus: http.StatusOK},
		{name: "Public Reviews", method: http.MethodGet, target: "/reviews", token: "", expectedStatus: http.StatusOK},

		{name: "Users No Token", method: http.MethodGet, target: "/users", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "Users Bad Token", method: http.MethodGet, target: "/users", token: "garbage", expectedStatus: http.StatusForbidden},
		{name: "Users Non Admin", method: http.MethodGet, target: "/users", token: userToken, expectedStatus: http.StatusForbidden},
		{name: "Users Admin", method: http.MethodGet, target: "/users", token: adminToken, expectedStatus: http.StatusOK},

		{name: "Admin Stats Non Admin", method: http.MethodGet, target: "/admin-stats", token: userToken, expectedStatus: http.StatusForbidden},
		{name: "Admin Stats Admin", method: http.MethodGet, target: "/admin-stats", token: adminToken, expectedStatus: http.StatusOK},
		{name: "Order Stats Admin", method: http.MethodGet, target: "/order-stats", token: adminToken, expectedStatus: http.StatusOK},

		{name: "Carts No Token", method: http.MethodGet, target: "/carts?email=user@example.com", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "Carts Own", method: http.MethodGet, target: "/carts?email=user@example.com", token: userToken, expectedStatus: http.StatusOK},
		{name: "Carts Other", method: http.MethodGet, target: "/carts?email=admin@example.com", token: userToken, expectedStatus: http.StatusForbidden},
		// Admin role does not override cart ownership.
		{name: "Carts Other As Admin", method: http.MethodGet, target: "/carts?email=user@example.com", token: adminToken, expectedStatus: http.StatusForbidden},

		{name: "Menu Create Non Admin", method: http.MethodPost, target: "/menu", token: userToken, expectedStatus: http.StatusForbidden},
		{name: "Promote No Token", method: http.MethodPatch, target: "/users/admin/0123456789abcdef01234567", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "Promote Non Admin", method: http.MethodPatch, target: "/users/admin/0123456789abcdef01234567", token: userToken, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(tt.method, tt.target, tt.token, nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRoutes_IssueTokenThenUseIt(t *testing.T) {
	srv := newTestServer(t)

	body, err := json.Marshal(map[string]string{"email": "alice@example.com"})
	require.NoError(t, err)

	rec := srv.do(http.MethodPost, "/jwt", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	// The issued token passes the authentication gate.
	rec = srv.do(http.MethodGet, "/carts?email=alice@example.com", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_ForeignSecretTokenIsForbidden(t *testing.T) {
	srv := newTestServer(t)

	foreign, err := auth.NewTokenService([]byte("other-secret")).Issue(auth.Claims{Email: "alice@example.com"})
	require.NoError(t, err)

	rec := srv.do(http.MethodGet, "/carts?email=alice@example.com", foreign, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoutes_Liveness(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bistro server is running", rec.Body.String())
}
