package footprint

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveIntensity(t *testing.T, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	old := gridIntensityURL
	gridIntensityURL = srv.URL
	t.Cleanup(func() { gridIntensityURL = old })
}

func TestGridIntensity(t *testing.T) {
	serveIntensity(t, `{"data":[{"from":"2025-01-01T12:00Z","to":"2025-01-01T12:30Z","intensity":{"forecast":160,"actual":154,"index":"moderate"}}]}`)

	got, err := GridIntensity()
	if err != nil {
		t.Fatalf("GridIntensity() error: %v", err)
	}
	// 154 g/kWh on the wire is 0.154 kg/kWh.
	if !got.Equal(Kg(0.154)) {
		t.Errorf("GridIntensity() = %v, want 0.154", got)
	}
}

func TestGridIntensityForecastFallback(t *testing.T) {
	// Before publication the actual reading is null.
	serveIntensity(t, `{"data":[{"intensity":{"forecast":160,"actual":null,"index":"moderate"}}]}`)

	got, err := GridIntensity()
	if err != nil {
		t.Fatalf("GridIntensity() error: %v", err)
	}
	if !got.Equal(Kg(0.16)) {
		t.Errorf("GridIntensity() = %v, want the 0.16 forecast", got)
	}
}

func TestGridIntensityBadResponse(t *testing.T) {
	serveIntensity(t, `{"data":[]}`)

	if _, err := GridIntensity(); err == nil {
		t.Error("GridIntensity() on an empty response succeeded, want error")
	}
}
