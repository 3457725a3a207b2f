package engine

import (
	"encoding/json"
	"testing"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/customrules"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// speedFeed holds two stops ~111km apart traversed in one minute, far past
// any default bus speed limit.
var speedFeed = map[string]string{
	"agency.txt":     "agency_id,agency_name,agency_url,agency_timezone\na1,Agency,https://example.com,Europe/Paris\n",
	"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon\ns1,First,0.0,0.0\ns2,Second,1.0,0.0\n",
	"routes.txt":     "route_id,agency_id,route_short_name,route_type\nr1,a1,1,3\n",
	"trips.txt":      "route_id,service_id,trip_id\nr1,sv1,t1\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nt1,08:00:00,08:00:00,s1,1\nt1,08:01:00,08:01:00,s2,2\n",
	"calendar.txt":   "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\nsv1,1,1,1,1,1,0,0,20260101,20261231\n",
}

func TestValidateExcessiveSpeedWithDefaultRules(t *testing.T) {
	dir := writeFixture(t, speedFeed)
	resp := Validate(dir, 1000, nil)

	bucket := resp.Validations.Bucket(issue.ExcessiveSpeed)
	if len(bucket) != 1 {
		t.Fatalf("expected one ExcessiveSpeed issue, got %+v", bucket)
	}
	if bucket[0].ObjectID != "s1" {
		t.Fatalf("expected the departure stop as subject, got %+v", bucket[0])
	}
}

func TestValidateCustomRulesSuppressExcessiveSpeed(t *testing.T) {
	dir := writeFixture(t, speedFeed)
	limit := float64(1000000)
	rules := &customrules.Rules{MaxBusSpeed: &limit}
	resp := Validate(dir, 1000, rules)

	if bucket := resp.Validations.Bucket(issue.ExcessiveSpeed); len(bucket) != 0 {
		t.Fatalf("expected the raised limit to suppress ExcessiveSpeed, got %+v", bucket)
	}
}

func TestValidateUnloadableModelKeepsRawLevelIssues(t *testing.T) {
	files := map[string]string{
		"agency.txt": minimalValidFeed["agency.txt"],
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"s1,First,40.75,-73.98\n" +
			"s2,Second,oops,-73.97\n",
		"routes.txt":     minimalValidFeed["routes.txt"],
		"trips.txt":      "route_id,service_id,trip_id\nAAMV,sv1,t1\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nt1,08:00:00,08:00:00,s1,1\n",
		"calendar.txt":   minimalValidFeed["calendar.txt"],
	}
	dir := writeFixture(t, files)
	resp := Validate(dir, 1000, nil)

	unloadable := resp.Validations.Bucket(issue.UnloadableModel)
	if len(unloadable) != 1 || unloadable[0].Severity != issue.Fatal {
		t.Fatalf("expected a single fatal UnloadableModel issue, got %+v", unloadable)
	}
	rf := unloadable[0].RelatedFile
	if rf == nil || rf.FileName != "stops.txt" {
		t.Fatalf("expected stops.txt named in related_file, got %+v", rf)
	}
	if rf.Line == nil || rf.Line.LineNumber != 3 {
		t.Fatalf("expected the offending row's line number, got %+v", rf.Line)
	}
	if len(rf.Line.Headers) == 0 || len(rf.Line.Values) == 0 {
		t.Fatalf("expected the offending row's headers and values, got %+v", rf.Line)
	}

	refs := resp.Validations.Bucket(issue.InvalidReference)
	var found bool
	for _, i := range refs {
		if i.ObjectID == "AAMV" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the raw-level pass to still flag route AAMV, got %+v", refs)
	}
}

func TestValidateIssueCountsRecordedBeforeTruncation(t *testing.T) {
	files := map[string]string{
		"agency.txt": minimalValidFeed["agency.txt"],
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"s1,First,40.75,-73.98\ns2,Second,40.76,-73.97\ns3,Third,40.77,-73.96\n",
		"routes.txt":     minimalValidFeed["routes.txt"],
		"trips.txt":      minimalValidFeed["trips.txt"],
		"stop_times.txt": minimalValidFeed["stop_times.txt"],
		"calendar.txt":   minimalValidFeed["calendar.txt"],
	}
	dir := writeFixture(t, files)
	resp := Validate(dir, 1, nil)

	for _, typ := range resp.Validations.Types() {
		bucket := resp.Validations.Bucket(typ)
		if len(bucket) > 1 {
			t.Fatalf("expected buckets truncated to one entry, got %d for %v", len(bucket), typ)
		}
		if resp.Metadata.IssuesCount[typ] < len(bucket) {
			t.Fatalf("expected issues_count[%v] >= bucket size", typ)
		}
	}
	// s3 is never referenced by a stop time, and neither rule that fires on
	// it depends on truncation: UnusedStop count must stay accurate.
	if resp.Metadata.IssuesCount[issue.UnusedStop] != 1 {
		t.Fatalf("expected one unused stop counted, got %d", resp.Metadata.IssuesCount[issue.UnusedStop])
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	dir := writeFixture(t, minimalValidFeed)

	first, err := json.Marshal(Validate(dir, 1000, nil))
	if err != nil {
		t.Fatalf("marshaling first run: %v", err)
	}
	second, err := json.Marshal(Validate(dir, 1000, nil))
	if err != nil {
		t.Fatalf("marshaling second run: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected identical reports across runs:\n%s\n%s", first, second)
	}
}

func TestValidateInvalidArchiveHasNoMetadata(t *testing.T) {
	resp := Validate("/nonexistent/path/feed.zip", 1000, nil)
	if resp.Metadata != nil {
		t.Fatalf("expected no metadata on an unreadable archive, got %+v", resp.Metadata)
	}
}

func TestValidateStopIssuesCarryGeoJSON(t *testing.T) {
	dir := writeFixture(t, speedFeed)
	resp := Validate(dir, 1000, nil)

	bucket := resp.Validations.Bucket(issue.ExcessiveSpeed)
	if len(bucket) != 1 {
		t.Fatalf("expected one ExcessiveSpeed issue, got %+v", bucket)
	}
	fc := bucket[0].GeoJSON
	if fc == nil || len(fc.Features) != 3 {
		t.Fatalf("expected two points and a line, got %+v", fc)
	}
}
