package schema

// Pathway represents a parsed row of pathways.txt.
type Pathway struct {
	ID              string
	FromStopID      string
	ToStopID        string
	Mode            int
	IsBidirectional bool
}

func ParsePathway(values map[string]string, row int) (Pathway, error) {
	return Pathway{
		ID:              values["pathway_id"],
		FromStopID:      values["from_stop_id"],
		ToStopID:        values["to_stop_id"],
		IsBidirectional: values["is_bidirectional"] == "1",
	}, nil
}
