package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantError  bool
	}{
		{
			name:       "success",
			statusCode: http.StatusOK,
			body:       `<html><body><p>Midday 417</p></body></html>`,
			wantError:  false,
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			wantError:  true,
		},
		{
			name:       "redirect-range status",
			statusCode: http.StatusNotModified,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "drawfetch") {
					t.Errorf("User-Agent = %q, should contain drawfetch", ua)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			doc, err := NewClient().Fetch(context.Background(), server.URL)

			if tt.wantError {
				if err == nil {
					t.Error("Fetch() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if doc.URL != server.URL {
				t.Errorf("doc.URL = %q, want %q", doc.URL, server.URL)
			}
			if !strings.Contains(doc.Doc.Text(), "417") {
				t.Error("parsed document should contain page text")
			}
		})
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	if _, err := NewClient().Fetch(context.Background(), url); err == nil {
		t.Error("Fetch() against closed server expected error")
	}
}

func TestFetchHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	if _, err := NewClient().Fetch(ctx, server.URL); err == nil {
		t.Error("Fetch() with cancelled context expected error")
	}
}
