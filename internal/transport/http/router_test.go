package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/testutil/apptest"
	"github.com/light-bringer/karting-service/internal/testutil/memstore"
)

func buildTestRouter(t *testing.T) (*gin.Engine, *memstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, store, _ := apptest.New()
	return NewRouter(app), store
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func registerClient(t *testing.T, r *gin.Engine, rut string, cash int64) string {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/v1/clients/", map[string]any{
		"rut":  rut,
		"name": "Ana Rojas",
		"cash": cash,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}

func booking(rut string, option, persons int) map[string]any {
	return map[string]any{
		"client_rut":  rut,
		"fee_option":  option,
		"persons":     persons,
		"start_time":  "2026-03-14T18:00:00Z",
		"main_person": "Ana Rojas",
	}
}

func TestBookingRoutes(t *testing.T) {
	r, _ := buildTestRouter(t)
	clientID := registerClient(t, r, "12.345.678-9", 50000)

	w := doRequest(r, http.MethodPost, "/api/v1/booking/", booking("12.345.678-9", 1, 4))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	id := created["id"].(string)
	assert.Equal(t, "2026-03-14T18:30:00Z", created["end_time"])

	w = doRequest(r, http.MethodGet, "/api/v1/booking/"+id+"/voucher", nil)
	require.Equal(t, http.StatusOK, w.Code)
	voucher := decode(t, w)
	assert.Equal(t, float64(13500), voucher["total_before_tax"])
	assert.Equal(t, float64(2565), voucher["tax"])
	assert.Equal(t, float64(16065), voucher["total"])
	assert.Equal(t, "Ana Rojas", voucher["name"])

	w = doRequest(r, http.MethodGet, "/api/v1/clients/"+clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(50000-16065), decode(t, w)["cash"])

	w = doRequest(r, http.MethodGet, "/api/v1/booking/?client_rut=12.345.678-9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total_count"])

	w = doRequest(r, http.MethodDelete, "/api/v1/booking/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":true}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/v1/booking/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
}

func TestBookingRoutes_Errors(t *testing.T) {
	r, store := buildTestRouter(t)
	registerClient(t, r, "12.345.678-9", 10000)

	noStart := booking("12.345.678-9", 1, 1)
	delete(noStart, "start_time")

	tests := []struct {
		name string
		body any
		want int
	}{
		{"unknown client", booking("99.999.999-9", 1, 1), http.StatusNotFound},
		{"invalid fee option", booking("12.345.678-9", 0, 1), http.StatusBadRequest},
		{"no persons", booking("12.345.678-9", 1, 0), http.StatusBadRequest},
		{"no start time", noStart, http.StatusBadRequest},
		{"insufficient funds", booking("12.345.678-9", 1, 1), http.StatusPaymentRequired},
		{"no rut", map[string]any{"fee_option": 1}, http.StatusBadRequest},
		{"malformed", "not an object", http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/v1/booking/", tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
			assert.Contains(t, decode(t, w), "error")
		})
	}
	assert.Equal(t, 0, store.BookingCount())

	t.Run("store failure message is passed through", func(t *testing.T) {
		store.ReadErr = errors.New("spanner: database not found")
		defer func() { store.ReadErr = nil }()

		w := doRequest(r, http.MethodGet, "/api/v1/booking/", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"spanner: database not found"}`, w.Body.String())
	})

	t.Run("duplicate client", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/v1/clients/", map[string]any{"rut": "12.345.678-9", "name": "X"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestClientRoutes(t *testing.T) {
	r, _ := buildTestRouter(t)
	id := registerClient(t, r, "12.345.678-9", 1000)

	w := doRequest(r, http.MethodPut, "/api/v1/clients/"+id, map[string]any{
		"name":          "Ana María Rojas",
		"cash":          25000,
		"date_of_birth": "1990-05-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.Equal(t, "Ana María Rojas", updated["name"])
	assert.Equal(t, "1990-05-01T00:00:00Z", updated["date_of_birth"])

	w = doRequest(r, http.MethodGet, "/api/v1/clients/?rut=12.345.678-9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total_count"])

	w = doRequest(r, http.MethodGet, "/api/v1/clients/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total_count"])

	w = doRequest(r, http.MethodPut, "/api/v1/clients/"+id, map[string]any{"name": "", "cash": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/clients/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKartAndRateRoutes(t *testing.T) {
	r, _ := buildTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/karts/", map[string]any{"code": "K001"})
	require.Equal(t, http.StatusCreated, w.Code)
	kart := decode(t, w)
	assert.Equal(t, true, kart["available"])
	id := kart["id"].(string)

	w = doRequest(r, http.MethodPut, "/api/v1/karts/"+id+"/availability", map[string]any{"available": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["available"])

	w = doRequest(r, http.MethodPut, "/api/v1/karts/"+id+"/availability", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/karts/?available=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["total_count"])

	w = doRequest(r, http.MethodGet, "/api/v1/karts/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/v1/karts/", map[string]any{"code": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/rates/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rates := decode(t, w)["rates"].([]interface{})
	require.Len(t, rates, 3)
	assert.Equal(t, "Premium", rates[2].(map[string]interface{})["label"])

	w = doRequest(r, http.MethodGet, "/api/v1/events?event_type=kart.registered", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total_count"])

	w = doRequest(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusFor(domain.ErrConcurrentModification))
	assert.Equal(t, http.StatusConflict, statusFor(domain.ErrLockNotAcquired))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}
