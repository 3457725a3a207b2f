package issue

// RelatedObject links a subject issue to another entity involved in it,
// e.g. the arrival stop and route of a speed check whose subject is the
// departure stop.
type RelatedObject struct {
	ID         string      `json:"id" yaml:"id"`
	ObjectType *ObjectType `json:"object_type,omitempty" yaml:"object_type,omitempty"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
}

// RelatedLine pinpoints the offending row of a CSV file.
type RelatedLine struct {
	LineNumber int      `json:"line_number" yaml:"line_number"`
	Headers    []string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Values     []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// RelatedFile names the CSV file an issue originated from, and optionally
// the exact row.
type RelatedFile struct {
	FileName string       `json:"file_name" yaml:"file_name"`
	Line     *RelatedLine `json:"line,omitempty" yaml:"line,omitempty"`
}

// Issue is the value object every rule module emits.
type Issue struct {
	Severity       Severity        `json:"severity" yaml:"severity"`
	IssueType      Type            `json:"issue_type" yaml:"issue_type"`
	ObjectID       string          `json:"object_id" yaml:"object_id"`
	ObjectType     *ObjectType     `json:"object_type,omitempty" yaml:"object_type,omitempty"`
	ObjectName     string          `json:"object_name,omitempty" yaml:"object_name,omitempty"`
	RelatedObjects []RelatedObject `json:"related_objects,omitempty" yaml:"related_objects,omitempty"`
	Details        string          `json:"details,omitempty" yaml:"details,omitempty"`
	RelatedFile    *RelatedFile    `json:"related_file,omitempty" yaml:"related_file,omitempty"`
	GeoJSON        *FeatureCollection `json:"geojson,omitempty" yaml:"geojson,omitempty"`
}

// New builds an Issue with no object context; objectID may be empty for
// feed-wide issues.
func New(severity Severity, t Type, objectID string) *Issue {
	return &Issue{Severity: severity, IssueType: t, ObjectID: objectID}
}

// NewWithObject builds an Issue tagged with its subject's object type and
// human-readable name.
func NewWithObject(severity Severity, t Type, objectID string, objType ObjectType, name string) *Issue {
	ot := objType
	return &Issue{Severity: severity, IssueType: t, ObjectID: objectID, ObjectType: &ot, ObjectName: name}
}

// WithDetails sets the free-text explanation and returns the issue for chaining.
func (i *Issue) WithDetails(details string) *Issue {
	i.Details = details
	return i
}

// WithRelatedFile attaches the originating CSV row context.
func (i *Issue) WithRelatedFile(f RelatedFile) *Issue {
	i.RelatedFile = &f
	return i
}

// AddRelatedObject appends a related object, skipping it if an object with
// the same id is already present (route-level related-object uniqueness,
// spec §9 "Issue deduplication").
func (i *Issue) AddRelatedObject(ro RelatedObject) *Issue {
	for _, existing := range i.RelatedObjects {
		if existing.ID == ro.ID {
			return i
		}
	}
	i.RelatedObjects = append(i.RelatedObjects, ro)
	return i
}

// RelatedObjectRef builds a RelatedObject naming an object type and name.
func RelatedObjectRef(id string, objType ObjectType, name string) RelatedObject {
	ot := objType
	return RelatedObject{ID: id, ObjectType: &ot, Name: name}
}
