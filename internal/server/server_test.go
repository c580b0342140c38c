package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/chrissnell/oceandiags/pkg/config"
	"go.uber.org/zap"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8090\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	ctrl, err := NewController(context.Background(), &wg, config.NewYAMLProvider(path), nil, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return ctrl
}

func computeBody(t *testing.T, fields map[string]fieldPayload) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(computeRequest{Fields: fields})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewBuffer(body)
}

func singleColumnFields() map[string]fieldPayload {
	return map[string]fieldPayload{
		"latitude":          {Data: []float64{10}, Shape: []int{1, 1}, Units: "degree"},
		"longitude":         {Data: []float64{150}, Shape: []int{1, 1}, Units: "degree"},
		"salinity":          {Data: []float64{35, 35, 35}, Shape: []int{3}, Units: "psu"},
		"seawater_pressure": {Data: []float64{0, 500, 1000}, Shape: []int{3}, Units: "dbar"},
		"pottemp":           {Data: []float64{20, 10, 4}, Shape: []int{3}, Units: "degc"},
	}
}

func TestGetHealth(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestListDiagnostics(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/diagnostics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list.Diagnostics) != 12 {
		t.Errorf("diagnostics = %v", list.Diagnostics)
	}
}

func TestComputeDiagnostic(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/ocean/absolute_from_practical",
		"application/json", computeBody(t, singleColumnFields()))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out computeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Name != "absolute_salinity" {
		t.Errorf("derived field name = %q", out.Name)
	}
	if out.RequestID == "" {
		t.Error("request_id missing from response")
	}
	if len(out.Field.Data) != 3 {
		t.Fatalf("field data = %v", out.Field.Data)
	}
	if math.Abs(out.Field.Data[0]-35.16504) > 1e-9 {
		t.Errorf("surface absolute salinity = %g, want 35.16504", out.Field.Data[0])
	}
}

func TestComputeUnknownDiagnostic(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/ocean/does_not_exist",
		"application/json", computeBody(t, singleColumnFields()))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestComputeMissingField(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	fields := singleColumnFields()
	delete(fields, "salinity")

	resp, err := http.Post(srv.URL+"/api/v1/ocean/total_heat_content",
		"application/json", computeBody(t, fields))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] == "" {
		t.Error("error message missing from body")
	}
}

func TestComputeBadBody(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/ocean/total_heat_content",
		"application/json", bytes.NewBufferString("not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestComputeDomainError(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	fields := singleColumnFields()
	fields["salinity"] = fieldPayload{Data: []float64{35, -1, 35}, Shape: []int{3}, Units: "psu"}

	resp, err := http.Post(srv.URL+"/api/v1/ocean/absolute_from_practical",
		"application/json", computeBody(t, fields))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestResultsEndpointDisabledWithoutDB(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/results")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Error("results endpoint must not be served without a database")
	}
}

func TestComputeMsgPackNegotiation(t *testing.T) {
	ctrl := newTestController(t)
	srv := httptest.NewServer(ctrl.Server.Handler)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/atmos/mixing_ratio_from_specific_humidity?format=msgpack",
		"application/json", computeBody(t, map[string]fieldPayload{
			"specific_humidity": {Data: []float64{0.01}, Shape: []int{1}, Units: "kg/kg"},
		}))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/x-msgpack" {
		t.Errorf("Content-Type = %q", ct)
	}
}
