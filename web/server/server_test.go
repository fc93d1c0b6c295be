package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/config"
)

func newTestServer() *Server {
	return NewServer(config.Default().Server)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header")
	}
}

func TestScenes(t *testing.T) {
	rec := get(t, newTestServer(), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var scenes []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) != 3 || scenes[0].Name != "default" {
		t.Errorf("Unexpected scene list %+v", scenes)
	}
}

func TestRender_ReturnsDecodablePNG(t *testing.T) {
	rec := get(t, newTestServer(), "/api/render?scene=default&width=8&height=4&samples=2&seed=11")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if rec.Header().Get("X-Render-Seed") != "11" {
		t.Errorf("Expected seed header 11, got %q", rec.Header().Get("X-Render-Seed"))
	}
	if rec.Header().Get("X-Render-Samples") != "64" {
		t.Errorf("Expected 64 samples, got %q", rec.Header().Get("X-Render-Samples"))
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("Expected 8x4 image, got %v", b)
	}
}

func TestRender_SameSeedSameImage(t *testing.T) {
	s := newTestServer()
	target := "/api/render?scene=materials&width=6&height=3&samples=2&seed=5&format=ppm"
	first := get(t, s, target)
	second := get(t, s, target)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("Expected 200s, got %d and %d", first.Code, second.Code)
	}
	if !strings.HasPrefix(first.Body.String(), "P3\n6 3\n255\n") {
		t.Errorf("Expected PPM header, got %q", first.Body.String()[:12])
	}
	if first.Body.String() != second.Body.String() {
		t.Error("Expected identical images for the same seed")
	}
}

func TestRender_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown scene", "/api/render?scene=nope"},
		{"width too large", "/api/render?width=100000"},
		{"zero samples", "/api/render?samples=0"},
		{"non numeric height", "/api/render?height=tall"},
		{"bad seed", "/api/render?seed=x"},
		{"bad format", "/api/render?format=gif"},
		{"negative aperture", "/api/render?aperture=-1"},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRender_Busy(t *testing.T) {
	s := newTestServer()
	for i := 0; i < cap(s.sem); i++ {
		s.sem <- struct{}{}
	}

	rec := get(t, s, "/api/render?width=2&height=2&samples=1")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 with every slot taken, got %d", rec.Code)
	}
}

func TestInspect(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, "/api/inspect?scene=default&width=200&height=100&x=100&y=50")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var hit InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &hit); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !hit.Hit || hit.MaterialType != "lambertian" || hit.GeometryType != "sphere" {
		t.Errorf("Expected the center sphere, got %+v", hit)
	}
	if hit.Distance <= 0 || hit.Normal[2] <= 0 {
		t.Errorf("Expected a front facing hit, got distance %f normal %v", hit.Distance, hit.Normal)
	}

	rec = get(t, s, "/api/inspect?scene=default&width=200&height=100&x=0&y=0")
	var miss InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &miss); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if miss.Hit {
		t.Errorf("Expected the top left corner to see only sky, got %+v", miss)
	}

	rec = get(t, s, "/api/inspect?scene=default&width=200&height=100&x=200&y=0")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for out of bounds pixel, got %d", rec.Code)
	}
}
