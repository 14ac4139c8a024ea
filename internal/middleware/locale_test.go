package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name           string
		xLocale        string
		acceptLanguage string
		fallback       string
		want           string
	}{
		{"x-locale wins", "fr", "en", "en", "fr"},
		{"accept-language region", "", "fr-FR,fr;q=0.9,en;q=0.5", "en", "fr"},
		{"accept-language english", "", "en-US,en;q=0.9", "fr", "en"},
		{"unsupported falls to matcher default", "", "de-DE", "en", "en"},
		{"no headers use fallback", "", "", "fr", "fr"},
		{"garbage header uses fallback", ";;;", "", "fr", "fr"},
		{"garbage fallback", "", "", "not-a-locale", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.xLocale != "" {
				r.Header.Set("X-Locale", tt.xLocale)
			}
			if tt.acceptLanguage != "" {
				r.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			if got := detectLocale(r, tt.fallback); got != tt.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocaleMiddlewareStoresLocale(t *testing.T) {
	var got string
	handler := Locale("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Locale", "fr")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if got != "fr" {
		t.Fatalf("locale in context = %q, want fr", got)
	}
}

func TestLocaleFromContextFallback(t *testing.T) {
	if got := LocaleFromContext(context.Background()); got != "en" {
		t.Fatalf("LocaleFromContext() = %q, want en", got)
	}
}
