package schema

// Level represents a parsed row of levels.txt.
type Level struct {
	ID   string
	Name string
}

func ParseLevel(values map[string]string, row int) (Level, error) {
	return Level{ID: values["level_id"], Name: values["level_name"]}, nil
}
