package middleware

import (
	"net/http"
	"strings"

	"github.com/clockport/clockport-backend-go/internal/pkg/i18n"
)

// Locale puts the requested locale on the context. The lang query
// parameter wins over Accept-Language; only the primary subtag is used.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := r.URL.Query().Get("lang")
		if locale == "" {
			header := r.Header.Get("Accept-Language")
			if header != "" {
				locale = strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
				if i := strings.IndexAny(locale, "-_;"); i > 0 {
					locale = locale[:i]
				}
			}
		}
		if locale != "" {
			r = r.WithContext(i18n.WithLocale(r.Context(), strings.ToLower(locale)))
		}
		next.ServeHTTP(w, r)
	})
}
