package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

var minimalValidFeed = map[string]string{
	"agency.txt":     "agency_id,agency_name,agency_url,agency_timezone\na1,Agency,https://example.com,America/New_York\n",
	"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon\ns1,First,40.75,-73.98\ns2,Second,40.76,-73.97\n",
	"routes.txt":     "route_id,agency_id,route_short_name,route_type\nr1,a1,1,3\n",
	"trips.txt":      "route_id,service_id,trip_id\nr1,sv1,t1\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nt1,08:00:00,08:00:00,s1,1\nt1,08:15:00,08:15:00,s2,2\n",
	"calendar.txt":   "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\nsv1,1,1,1,1,1,0,0,20260101,20261231\n",
}

func TestValidateMinimalFeedHasNoFatalIssues(t *testing.T) {
	dir := writeFixture(t, minimalValidFeed)
	resp := Validate(dir, 1000, nil)

	for _, t2 := range resp.Validations.Types() {
		for _, i := range resp.Validations.Bucket(t2) {
			if i.Severity == issue.Fatal {
				t.Fatalf("unexpected fatal issue: %+v", i)
			}
		}
	}
	if resp.Metadata == nil {
		t.Fatalf("expected metadata to be populated")
	}
}

func TestValidateMissingMandatoryFileIsFatal(t *testing.T) {
	files := map[string]string{}
	for k, v := range minimalValidFeed {
		if k != "stops.txt" {
			files[k] = v
		}
	}
	dir := writeFixture(t, files)
	resp := Validate(dir, 1000, nil)

	bucket := resp.Validations.Bucket(issue.MissingMandatoryFile)
	if len(bucket) != 1 || bucket[0].Severity != issue.Fatal {
		t.Fatalf("expected a single fatal MissingMandatoryFile issue, got %+v", bucket)
	}
}

func TestValidateUnusableTripFixture(t *testing.T) {
	files := map[string]string{
		"agency.txt":     minimalValidFeed["agency.txt"],
		"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon\ns1,First,40.75,-73.98\n",
		"routes.txt":     minimalValidFeed["routes.txt"],
		"trips.txt":      "route_id,service_id,trip_id\nr1,sv1,t1\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nt1,08:00:00,08:00:00,s1,1\n",
		"calendar.txt":   minimalValidFeed["calendar.txt"],
	}
	dir := writeFixture(t, files)
	resp := Validate(dir, 1000, nil)

	bucket := resp.Validations.Bucket(issue.UnusableTrip)
	if len(bucket) != 1 {
		t.Fatalf("expected a single UnusableTrip issue, got %+v", bucket)
	}
}

func TestValidateInvalidArchiveForMissingPath(t *testing.T) {
	resp := Validate(filepath.Join(t.TempDir(), "does-not-exist"), 1000, nil)

	bucket := resp.Validations.Bucket(issue.InvalidArchive)
	if len(bucket) != 1 || bucket[0].Severity != issue.Fatal {
		t.Fatalf("expected a single fatal InvalidArchive issue, got %+v", bucket)
	}
}

func TestValidateTruncatesPerType(t *testing.T) {
	dir := writeFixture(t, minimalValidFeed)
	resp := Validate(dir, 0, nil)

	for _, typ := range resp.Validations.Types() {
		if len(resp.Validations.Bucket(typ)) > 1 {
			t.Fatalf("expected maxIssues=0 to clamp to 1 per type, got %d for %v", len(resp.Validations.Bucket(typ)), typ)
		}
	}
}
