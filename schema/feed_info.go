package schema

// FeedInfo represents a parsed row of feed_info.txt.
type FeedInfo struct {
	PublisherName string
	PublisherURL  string
	Lang          string
	StartDate     string
	EndDate       string
	Version       string
	ContactEmail  string
	ContactURL    string
}

func ParseFeedInfo(values map[string]string, row int) (FeedInfo, error) {
	return FeedInfo{
		PublisherName: values["feed_publisher_name"],
		PublisherURL:  values["feed_publisher_url"],
		Lang:          values["feed_lang"],
		StartDate:     values["feed_start_date"],
		EndDate:       values["feed_end_date"],
		Version:       values["feed_version"],
		ContactEmail:  values["feed_contact_email"],
		ContactURL:    values["feed_contact_url"],
	}, nil
}
