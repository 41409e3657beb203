package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/middleware"
	"github.com/mechhub/portal/internal/session"
)

// upstreamStub fakes the remote marketplace API behind the wizard.
func upstreamStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/mechanic/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "mech-1", "name": "Ravi Auto Works"})
	})
	mux.HandleFunc("GET /user/cars", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{"id": "car-1", "name": "Honda", "model": "City"}})
	})
	mux.HandleFunc("POST /user/booking-create", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "mech-1", payload["mechanicId"])
		assert.Equal(t, "car-1", payload["carId"])
		assert.Equal(t, float64(1498), payload["totalPrice"])
		json.NewEncoder(w).Encode(map[string]any{"id": "bk-1", "status": "pending"})
	})
	return httptest.NewServer(mux)
}

func wizardRouter(cfg *config.Config, store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewWizardHandler(cfg, store)
	secured := r.Group("/api", middleware.SessionMiddleware())
	secured.POST("/wizard", h.Start)
	secured.GET("/wizard/:id", h.State)
	secured.POST("/wizard/:id/car", h.SelectCar)
	secured.POST("/wizard/:id/services", h.ToggleService)
	secured.POST("/wizard/:id/details", h.Details)
	secured.POST("/wizard/:id/schedule", h.Schedule)
	secured.POST("/wizard/:id/next", h.Next)
	secured.POST("/wizard/:id/back", h.Back)
	secured.POST("/wizard/:id/submit", h.Submit)
	return r
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   "u1",
		"userType": "user",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, token, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestWizard_FullFlow(t *testing.T) {
	srv := upstreamStub(t)
	defer srv.Close()

	cfg := &config.Config{APIBaseURL: srv.URL, Timezone: "Asia/Kolkata"}
	store := session.NewMemoryStore(time.Minute)
	r := wizardRouter(cfg, store)
	token := userToken(t)

	// start: mechanic + cars + fresh state
	rec, body := doJSON(t, r, token, "POST", "/api/wizard", `{"mechanicId":"mech-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	state := body["state"].(map[string]any)
	sid := state["sessionId"].(string)
	require.NotEmpty(t, sid)
	assert.Equal(t, float64(1), state["step"])

	base := "/api/wizard/" + sid

	// step 1: next is gated until a car is chosen
	rec, body = doJSON(t, r, token, "POST", base+"/next", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "step_incomplete", body["error_code"])

	rec, _ = doJSON(t, r, token, "POST", base+"/car", `{"carId":"car-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, body = doJSON(t, r, token, "POST", base+"/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["step"])

	// step 2: two services, running total
	rec, _ = doJSON(t, r, token, "POST", base+"/services", `{"id":"s1","name":"Full Service","price":999}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, body = doJSON(t, r, token, "POST", base+"/services", `{"id":"s2","name":"Wheel Alignment","price":499}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1498), body["total"])

	rec, _ = doJSON(t, r, token, "POST", base+"/next", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// step 3: odometer
	rec, _ = doJSON(t, r, token, "POST", base+"/details", `{"instructions":"","odometer":"45000"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, r, token, "POST", base+"/next", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// step 4: slot must come from the grid
	rec, body = doJSON(t, r, token, "POST", base+"/schedule", `{"date":"2025-03-10","time":"07:45 PM"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_time_slot", body["error_code"])

	rec, body = doJSON(t, r, token, "POST", base+"/schedule", `{"date":"2025-03-10","time":"02:30 PM"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, body["timeSlots"])

	rec, body = doJSON(t, r, token, "POST", base+"/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), body["step"])

	// confirm: no further next
	rec, body = doJSON(t, r, token, "POST", base+"/next", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_step", body["error_code"])

	// submit creates the booking and discards the session
	rec, body = doJSON(t, r, token, "POST", base+"/submit", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1500), body["redirectAfterMs"])
	assert.Equal(t, "bk-1", body["booking"].(map[string]any)["id"])

	rec, body = doJSON(t, r, token, "GET", base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "wizard_not_found", body["error_code"])
}

func TestWizard_BackFromFirstStep(t *testing.T) {
	srv := upstreamStub(t)
	defer srv.Close()

	cfg := &config.Config{APIBaseURL: srv.URL, Timezone: "Asia/Kolkata"}
	store := session.NewMemoryStore(time.Minute)
	r := wizardRouter(cfg, store)
	token := userToken(t)

	rec, body := doJSON(t, r, token, "POST", "/api/wizard", `{"mechanicId":"mech-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sid := body["state"].(map[string]any)["sessionId"].(string)

	rec, body = doJSON(t, r, token, "POST", "/api/wizard/"+sid+"/back", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["step"])
}

func TestWizard_ExpiredSession(t *testing.T) {
	cfg := &config.Config{APIBaseURL: "http://127.0.0.1:1", Timezone: "Asia/Kolkata"}
	store := session.NewMemoryStore(time.Minute)
	r := wizardRouter(cfg, store)

	rec, body := doJSON(t, r, userToken(t), "GET", "/api/wizard/unknown-session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "wizard_not_found", body["error_code"])
}
