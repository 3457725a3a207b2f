// Package structural implements the archive-shape rules described in
// spec.md §4.2: file_presence, sub_folder, raw_gtfs (duplicate ids) and
// invalid_reference. All of them operate on the RawFeed alone, before any
// linked-model construction is attempted.
package structural

import (
	"strings"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rawfeed"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

var mandatoryFiles = []string{"agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}

var optionalFiles = []string{
	"calendar.txt", "calendar_dates.txt", "shapes.txt", "fare_attributes.txt",
	"fare_rules.txt", "transfers.txt", "pathways.txt", "feed_info.txt",
	"frequencies.txt", "levels.txt",
}

// FilePresence emits MissingMandatoryFile for every mandatory file the
// archive lacks, and ExtraFile for every archive member not on the
// recognized mandatory-or-optional list. Matching is by filename suffix,
// so a mandatory/optional file found under a subfolder still counts as
// present (spec §4.2).
func FilePresence(rf *rawfeed.RawFeed) []issue.Issue {
	var issues []issue.Issue

	for _, mandatory := range mandatoryFiles {
		if !anyHasSuffix(rf.FileNames, mandatory) {
			issues = append(issues, *issue.New(issue.Fatal, issue.MissingMandatoryFile, mandatory).
				WithDetails("mandatory file " + mandatory + " is missing from the archive"))
		}
	}

	recognized := append(append([]string{}, mandatoryFiles...), optionalFiles...)
	for _, name := range rf.FileNames {
		if matchesAny(name, recognized) {
			continue
		}
		issues = append(issues, *issue.New(issue.Information, issue.ExtraFile, name).
			WithDetails(name+" is not a recognized GTFS file"))
	}

	return issues
}

func anyHasSuffix(names []string, suffix string) bool {
	for _, n := range names {
		if strings.HasSuffix(n, suffix) {
			return true
		}
	}
	return false
}

func matchesAny(name string, recognized []string) bool {
	for _, r := range recognized {
		if strings.HasSuffix(name, r) {
			return true
		}
	}
	return false
}
