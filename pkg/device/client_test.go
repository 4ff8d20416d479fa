package device

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/measures/current" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"pm02": 8.0, "pm02Compensated": 6.5, "rco2": 615, "atmp": 22.1, "model": "I-9PSL"}`))
	}))
	defer server.Close()

	client := NewClient(2 * time.Second)
	reading, err := client.Fetch(context.Background(), server.URL+"/measures/current")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}

	if v := reading.PM25(); v == nil || *v != 6.5 {
		t.Errorf("PM25() = %v, want compensated 6.5", v)
	}
	if v := reading.CO2(); v == nil || *v != 615 {
		t.Errorf("CO2() = %v, want 615", v)
	}
	if v := reading.Temperature(); v == nil || *v != 22.1 {
		t.Errorf("Temperature() = %v, want raw fallback 22.1", v)
	}
	if got := reading.Text("model"); got != "I-9PSL" {
		t.Errorf("Text(model) = %q, want I-9PSL", got)
	}
	if reading.Humidity() != nil {
		t.Error("Humidity() should be nil when unreported")
	}
}

func TestClient_FetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(2 * time.Second)
	_, err := client.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Fetch() should fail on HTTP 500")
	}
	if !strings.Contains(err.Error(), "network error") {
		t.Errorf("error = %v, want network error", err)
	}
}

func TestClient_FetchBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(2 * time.Second)
	_, err := client.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Fetch() should fail on a non-JSON body")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("error = %v, want decode error", err)
	}
}

func TestClient_FetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(20 * time.Millisecond)
	_, err := client.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Fetch() should fail when the device is slower than the timeout")
	}
}

func TestReading_Metrics(t *testing.T) {
	reading := Reading{"pm02": 8.0, "rco2": 615.0, "rhumCompensated": 47.0}
	m := reading.Metrics()
	if m.PM25 == nil || *m.PM25 != 8.0 {
		t.Errorf("Metrics().PM25 = %v, want raw fallback 8.0", m.PM25)
	}
	if m.Humidity == nil || *m.Humidity != 47.0 {
		t.Errorf("Metrics().Humidity = %v, want 47.0", m.Humidity)
	}
	if m.TempC != nil {
		t.Error("Metrics().TempC should be nil when unreported")
	}
}
