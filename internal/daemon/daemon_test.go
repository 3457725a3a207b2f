package daemon

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func newTestRouter() *mux.Router {
	r := mux.NewRouter()
	NewHandler(nil).RegisterRoutes(r)
	return r
}

func TestIndexReturnsPlainTextBanner(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected a text/plain banner, got content-type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "transit-feed-auditor") {
		t.Fatalf("expected the banner to mention the tool, got %q", rec.Body.String())
	}
}

func TestValidateURLRequiresURLParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/validate", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without url param, got %d", rec.Code)
	}
}

func TestValidateBodyAcceptsZipBytes(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"agency.txt":     "agency_id,agency_name,agency_url,agency_timezone\na1,Agency,https://example.com,UTC\n",
		"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon\ns1,Stop One,1.0,2.0\n",
		"routes.txt":     "route_id,agency_id,route_short_name,route_type\nr1,a1,1,3\n",
		"trips.txt":      "route_id,service_id,trip_id\nr1,sv1,t1\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nt1,08:00:00,08:00:00,s1,1\n",
		"calendar.txt":   "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\nsv1,1,1,1,1,1,0,0,20260101,20261231\n",
	}
	for name, content := range files {
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/validate?max_size=10", bytes.NewReader(buf.Bytes()))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"validations"`) {
		t.Fatalf("expected a validations key in the response, got %s", rec.Body.String())
	}
}

func TestParseMaxSizeFallsBackOnBadInput(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/validate?max_size=not-a-number", nil)
	if got := parseMaxSize(req, defaultMaxSize); got != defaultMaxSize {
		t.Fatalf("expected fallback %d, got %d", defaultMaxSize, got)
	}
}
