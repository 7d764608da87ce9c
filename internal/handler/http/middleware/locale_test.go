package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clockport/clockport-backend-go/internal/pkg/i18n"
	"github.com/stretchr/testify/assert"
)

func localeCapture(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var got string
	h := Locale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.LocaleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &got
}

func TestLocale_QueryParamWins(t *testing.T) {
	h, got := localeCapture(t)

	req := httptest.NewRequest(http.MethodGet, "/?lang=IT", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "it", *got)
}

func TestLocale_AcceptLanguagePrimarySubtag(t *testing.T) {
	h, got := localeCapture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-CH,de;q=0.9,en;q=0.8")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "de", *got)
}
