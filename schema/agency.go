package schema

// Agency represents a parsed row of agency.txt.
type Agency struct {
	ID       string
	Name     string
	URL      string
	Timezone string
	Lang     string
	Phone    string
	Email    string
	FareURL  string
}

func ParseAgency(values map[string]string, row int) (Agency, error) {
	return Agency{
		ID:       values["agency_id"],
		Name:     values["agency_name"],
		URL:      values["agency_url"],
		Timezone: values["agency_timezone"],
		Lang:     values["agency_lang"],
		Phone:    values["agency_phone"],
		Email:    values["agency_email"],
		FareURL:  values["agency_fare_url"],
	}, nil
}
