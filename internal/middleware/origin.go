package middleware

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/arko-chat/webshare/internal/webshare"
)

// SameOrigin refuses browser requests coming from pages other than the
// server itself or one of the extra origins. Requests without an Origin
// header are let through; they do not come from a page.
func SameOrigin(extra ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(extra))
	for _, o := range extra {
		if origin := OriginOf(o); origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || strings.EqualFold(origin, "http://"+r.Host) {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := allowed[strings.ToLower(origin)]; ok {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(webshare.WireError{
				Name:    string(webshare.KindNotAllowed),
				Message: "sharing is not allowed from this origin",
			})
		})
	}
}

// OriginOf returns the scheme://host part of raw, lower-cased, or "" if raw
// is not an absolute URL.
func OriginOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Scheme + "://" + u.Host)
}
