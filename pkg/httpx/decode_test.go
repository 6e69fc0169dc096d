package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akshat7606/QuickC/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type pickupRequest struct {
	Phone string  `json:"phone" validate:"required,min=5"`
	Fare  float64 `json:"fare" validate:"gt=0"`
}

func decode(body string) (pickupRequest, error) {
	var dst pickupRequest
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return dst, httpx.DecodeJSON(req, &dst)
}

func TestDecodeJSON(t *testing.T) {
	got, err := decode(`{"phone":"+919876543210","fare":45}`)
	require.NoError(t, err)
	require.Equal(t, pickupRequest{Phone: "+919876543210", Fare: 45}, got)

	_, err = decode(``)
	require.ErrorContains(t, err, "empty")

	_, err = decode(`{"phone":`)
	require.ErrorContains(t, err, "malformed json")

	_, err = decode(`{"phone":"+919876543210","fare":45,"tip":5}`)
	require.ErrorContains(t, err, "malformed json")
}

func TestDecodeJSONValidation(t *testing.T) {
	_, err := decode(`{"phone":"","fare":0}`)

	var verr *httpx.ValidationError
	require.ErrorAs(t, err, &verr)
	require.ElementsMatch(t, []httpx.FieldError{
		{Field: "phone", Rule: "required"},
		{Field: "fare", Rule: "gt"},
	}, verr.Fields)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.ChainFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}, mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}
