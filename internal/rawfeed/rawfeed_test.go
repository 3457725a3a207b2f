package rawfeed

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeDirFeed(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func zipFeed(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestLoadFromDirectory(t *testing.T) {
	dir := writeDirFeed(t, map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\ns1,First,48.1,-1.6\n",
	})

	l, err := FromDirectory(dir)
	if err != nil {
		t.Fatalf("opening directory: %v", err)
	}
	rf := Load(l)

	if !rf.Stops.Present || rf.Stops.Err != nil {
		t.Fatalf("expected stops.txt parsed, got %+v", rf.Stops)
	}
	if len(rf.StopRows) != 1 || rf.StopRows[0].ID != "s1" || !rf.StopRows[0].HasCoordinates {
		t.Fatalf("unexpected stop rows: %+v", rf.StopRows)
	}
	if rf.Agency.Present {
		t.Fatalf("expected agency.txt to be absent, got %+v", rf.Agency)
	}
}

func TestLoadFromZipBytes(t *testing.T) {
	data := zipFeed(t, map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\na1,Agency,https://example.com,Europe/Paris\n",
		"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\nsh1,48.1,-1.6,1\n",
	})

	l, err := FromZipBytes(data)
	if err != nil {
		t.Fatalf("opening zip: %v", err)
	}
	rf := Load(l)

	if len(rf.AgencyRows) != 1 || rf.AgencyRows[0].Name != "Agency" {
		t.Fatalf("unexpected agency rows: %+v", rf.AgencyRows)
	}
	if len(rf.ShapeRows) != 1 || rf.ShapeRows[0].Sequence != 1 {
		t.Fatalf("unexpected shape rows: %+v", rf.ShapeRows)
	}
}

func TestLoadRecordsBadLineOnRowParseFailure(t *testing.T) {
	dir := writeDirFeed(t, map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"s1,First,48.1,-1.6\n" +
			"s2,Second,not_a_number,-1.6\n",
	})

	l, err := FromDirectory(dir)
	if err != nil {
		t.Fatalf("opening directory: %v", err)
	}
	rf := Load(l)

	if !rf.Stops.Present || rf.Stops.Err == nil {
		t.Fatalf("expected stops.txt to fail, got %+v", rf.Stops)
	}
	if rf.Stops.BadLine == nil || rf.Stops.BadLine.LineNumber != 3 {
		t.Fatalf("expected the bad row to be line 3, got %+v", rf.Stops.BadLine)
	}
	if len(rf.StopRows) != 1 {
		t.Fatalf("expected rows before the failure to be kept, got %+v", rf.StopRows)
	}
}

func TestFileNamesKeepArchivePaths(t *testing.T) {
	data := zipFeed(t, map[string]string{
		"nested/stops.txt": "stop_id\ns1\n",
	})

	l, err := FromZipBytes(data)
	if err != nil {
		t.Fatalf("opening zip: %v", err)
	}
	names := l.FileNames()
	if len(names) != 1 || names[0] != "nested/stops.txt" {
		t.Fatalf("expected the nested path preserved, got %+v", names)
	}

	rf := Load(l)
	if !rf.Stops.Present {
		t.Fatalf("expected nested stops.txt to still load by base name, got %+v", rf.Stops)
	}
}

func TestLoadEmptyFileIsAnError(t *testing.T) {
	dir := writeDirFeed(t, map[string]string{"routes.txt": ""})

	l, err := FromDirectory(dir)
	if err != nil {
		t.Fatalf("opening directory: %v", err)
	}
	rf := Load(l)
	if !rf.Routes.Present || rf.Routes.Err == nil {
		t.Fatalf("expected an empty routes.txt to be a file error, got %+v", rf.Routes)
	}
}
