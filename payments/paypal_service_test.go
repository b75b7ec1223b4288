package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(baseURL string) *PayPalService {
	return &PayPalService{
		baseURL:      baseURL,
		clientID:     "test-client",
		clientSecret: "test-secret",
		client:       &http.Client{Timeout: 5 * time.Second},
	}
}

func fakePayPal(t *testing.T, orderStatus int, orderBody string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "test-client", user)
			assert.Equal(t, "test-secret", pass)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"test-token"}`))
		case "/v2/checkout/orders":
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "CAPTURE", payload["intent"])

			w.WriteHeader(orderStatus)
			w.Write([]byte(orderBody))
		case "/v2/checkout/orders/ORDER-1/capture":
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"ORDER-1","status":"COMPLETED"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestCreateOrderReturnsLinks(t *testing.T) {
	ts := fakePayPal(t, http.StatusCreated, `{
		"id": "ORDER-1",
		"status": "CREATED",
		"links": [
			{"href": "https://paypal.test/approve/ORDER-1", "rel": "approve", "method": "GET"},
			{"href": "https://paypal.test/orders/ORDER-1", "rel": "self", "method": "GET"}
		]
	}`)
	defer ts.Close()

	svc := newTestService(ts.URL)
	order, err := svc.CreateOrder(49.99, "USD")
	require.NoError(t, err)

	assert.Equal(t, "ORDER-1", order.ID)
	assert.Equal(t, "CREATED", order.Status)
	require.Len(t, order.Links, 2)
	assert.Equal(t, "approve", order.Links[0].Rel)
}

func TestCreateOrderProviderFailure(t *testing.T) {
	ts := fakePayPal(t, http.StatusUnprocessableEntity, `{"name":"UNPROCESSABLE_ENTITY"}`)
	defer ts.Close()

	svc := newTestService(ts.URL)
	order, err := svc.CreateOrder(10, "USD")
	assert.Nil(t, order)
	assert.ErrorContains(t, err, "failed to create order")
}

func TestCreateOrderTokenFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	svc := newTestService(ts.URL)
	_, err := svc.CreateOrder(10, "USD")
	assert.ErrorContains(t, err, "failed to get access token")
}

func TestCaptureOrder(t *testing.T) {
	ts := fakePayPal(t, http.StatusCreated, `{}`)
	defer ts.Close()

	svc := newTestService(ts.URL)
	order, err := svc.CaptureOrder("ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", order.Status)
}
