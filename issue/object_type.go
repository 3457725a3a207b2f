package issue

// ObjectType names the kind of GTFS entity an Issue or RelatedObject refers to.
type ObjectType string

const (
	ObjectStop     ObjectType = "Stop"
	ObjectRoute    ObjectType = "Route"
	ObjectTrip     ObjectType = "Trip"
	ObjectAgency   ObjectType = "Agency"
	ObjectCalendar ObjectType = "Calendar"
	ObjectShape    ObjectType = "Shape"
	ObjectFare     ObjectType = "Fare"
	ObjectPathway  ObjectType = "Pathway"
	ObjectFeedInfo ObjectType = "FeedInfo"
)
