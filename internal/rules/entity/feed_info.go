package entity

import (
	"strings"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// FeedInfo emits the same URL rules as Agency scoped to feed_publisher_url,
// plus MissingLanguage/InvalidLanguage for feed_lang (spec §4.3).
func FeedInfo(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	for _, fi := range m.FeedInfoRows {
		id := fi.PublisherName
		if fi.PublisherURL == "" {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.MissingUrl, id, issue.ObjectFeedInfo, fi.PublisherName).
				WithDetails("feed_info has no feed_publisher_url"))
		} else if !isValidHTTPURL(fi.PublisherURL) {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.InvalidUrl, id, issue.ObjectFeedInfo, fi.PublisherName).
				WithDetails("feed_publisher_url "+fi.PublisherURL+" is not a valid http(s) URL"))
		}

		if fi.Lang == "" {
			issues = append(issues, *issue.NewWithObject(issue.Warning, issue.MissingLanguage, id, issue.ObjectFeedInfo, fi.PublisherName).
				WithDetails("feed_info has no feed_lang"))
		} else if !isValidLanguage(strings.ToLower(fi.Lang)) {
			issues = append(issues, *issue.NewWithObject(issue.Warning, issue.InvalidLanguage, id, issue.ObjectFeedInfo, fi.PublisherName).
				WithDetails("feed_lang "+fi.Lang+" does not resolve to a known language or locale code"))
		}
	}
	return issues
}
