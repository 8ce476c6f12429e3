package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"facility-booking/config"
	"facility-booking/internal/delivery/http/handler"
	"facility-booking/internal/delivery/http/middleware"
	"facility-booking/internal/domain/entity"
	"facility-booking/internal/repository"
	"facility-booking/internal/service"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/jwt"
	"facility-booking/pkg/response"
	"facility-booking/pkg/validator"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionStore struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func (s *memorySessionStore) Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID+":"+tokenID] = true
	return nil
}

func (s *memorySessionStore) Exists(ctx context.Context, userID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[userID+":"+tokenID], nil
}

func (s *memorySessionStore) Revoke(ctx context.Context, userID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID+":"+tokenID)
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log, _ := test.NewNullLogger()
	now := func() time.Time { return time.Date(2025, 6, 1, 10, 30, 0, 0, time.Local) }

	catalog := entity.NewCatalog(nil, nil)
	v := validator.NewValidator()
	require.NoError(t, v.RegisterOneOf("facility", catalog.Facilities))
	require.NoError(t, v.RegisterOneOf("slot", catalog.Slots))

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "router-test", SessionExpiry: time.Hour})
	store := &memorySessionStore{tokens: map[string]bool{}}
	bookingRepo := repository.NewBookingRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(nil, log, auditLogRepo)

	bookingUsecase := usecase.NewBookingUsecase(log, bookingRepo, catalog, auditService, nil, usecase.BookingOptions{
		AdminEmail: "admin@example.com",
		Now:        now,
	})
	sessionUsecase := usecase.NewSessionUsecase(log, jwtService, store)
	auditLogUsecase := usecase.NewAuditLogUsecase(nil, log, auditLogRepo, bookingRepo, "admin@example.com")

	router := NewRouter(
		handler.NewBookingHandler(bookingUsecase, v),
		handler.NewSessionHandler(sessionUsecase, v),
		handler.NewAuditLogHandler(auditLogUsecase),
		middleware.NewSessionMiddleware(jwtService, store, log),
		middleware.NewCORSMiddleware(""),
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (int, response.Response) {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+"/api/v1"+path, &payload)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var out response.Response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func signIn(t *testing.T, srv *httptest.Server, id, email, role string) string {
	t.Helper()
	code, out := call(t, srv, http.MethodPost, "/session", "", map[string]string{
		"id": id, "name": id, "email": email, "role": role,
	})
	require.Equal(t, http.StatusCreated, code)
	data := out.Data.(map[string]interface{})
	return data["access_token"].(string)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	res, err := srv.Client().Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_BookingLifecycle(t *testing.T) {
	srv := newTestServer(t)
	userToken := signIn(t, srv, "2", "user@example.com", "User")
	adminToken := signIn(t, srv, "1", "admin@example.com", "Admin")

	booking := map[string]string{"facility": "Auditorium", "date": "2025-06-02", "slot": "09:00–10:00"}

	// Anonymous visitors cannot book
	code, _ := call(t, srv, http.MethodPost, "/bookings", "", booking)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, out := call(t, srv, http.MethodPost, "/bookings", userToken, booking)
	require.Equal(t, http.StatusCreated, code)
	id := out.Data.(map[string]interface{})["id"].(string)

	code, _ = call(t, srv, http.MethodPost, "/bookings", adminToken, booking)
	assert.Equal(t, http.StatusConflict, code)

	// Same slot on today's date has already started
	code, _ = call(t, srv, http.MethodPost, "/bookings", userToken,
		map[string]string{"facility": "Auditorium", "date": "2025-06-01", "slot": "09:00–10:00"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	// Owner and admin see it, anonymous does not
	code, out = call(t, srv, http.MethodGet, "/bookings", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, out.Meta.Total)

	_, out = call(t, srv, http.MethodGet, "/bookings", userToken, nil)
	assert.Equal(t, 1, out.Meta.Total)

	code, _ = call(t, srv, http.MethodGet, "/bookings/"+id, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, out = call(t, srv, http.MethodPatch, "/bookings/"+id+"/status", adminToken, map[string]string{"status": "Approved"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Approved", out.Data.(map[string]interface{})["status"])

	code, _ = call(t, srv, http.MethodPost, "/bookings/"+id+"/cancel", userToken, nil)
	assert.Equal(t, http.StatusOK, code)

	// Cancelled frees the slot
	code, _ = call(t, srv, http.MethodPost, "/bookings", adminToken, booking)
	assert.Equal(t, http.StatusCreated, code)

	code, _ = call(t, srv, http.MethodGet, "/bookings/"+id+"/history", userToken, nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestRouter_SessionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	code, out := call(t, srv, http.MethodGet, "/session", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Nil(t, out.Data)

	code, _ = call(t, srv, http.MethodDelete, "/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	token := signIn(t, srv, "2", "user@example.com", "User")

	_, out = call(t, srv, http.MethodGet, "/session", token, nil)
	assert.Equal(t, "user@example.com", out.Data.(map[string]interface{})["email"])

	code, _ = call(t, srv, http.MethodDelete, "/session", token, nil)
	assert.Equal(t, http.StatusOK, code)

	// A revoked token falls back to anonymous
	_, out = call(t, srv, http.MethodGet, "/session", token, nil)
	assert.Nil(t, out.Data)
}
