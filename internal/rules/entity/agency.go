// Package entity implements the linked-level per-entity rules described in
// spec.md §4.3: agency, feed_info, check_name, check_id, stops,
// fare_attributes, calendar, routes. All of them read the resolved
// model.Model rather than the raw row arrays, since several checks
// (parent-station topology, agency-count-dependent id rules) need the
// linked object graph.
package entity

import (
	"net/url"
	"sort"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// Agency emits MissingUrl/InvalidUrl/InvalidTimezone for each agency.txt
// row (spec §4.3).
func Agency(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	for _, id := range sortedAgencyIDs(m) {
		a := m.Agencies[id]
		if a.URL == "" {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.MissingUrl, a.ID, issue.ObjectAgency, a.Name).
				WithDetails("agency "+nameOrID(a.Name, a.ID)+" has no agency_url"))
		} else if !isValidHTTPURL(a.URL) {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.InvalidUrl, a.ID, issue.ObjectAgency, a.Name).
				WithDetails("agency_url "+a.URL+" is not a valid http(s) URL"))
		}

		if a.Timezone == "" || !isValidTimezone(a.Timezone) {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.InvalidTimezone, a.ID, issue.ObjectAgency, a.Name).
				WithDetails("agency_timezone "+a.Timezone+" is not a recognized IANA timezone"))
		}
	}
	return issues
}

func sortedAgencyIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Agencies))
	for id := range m.Agencies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func nameOrID(name, id string) string {
	if name != "" {
		return name
	}
	return id
}

func isValidHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
