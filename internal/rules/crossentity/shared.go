package crossentity

import (
	"fmt"
	"sort"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
)

func formatMeters(d float64) string {
	return fmt.Sprintf("%.0fm", d)
}

func sortedTripIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Trips))
	for id := range m.Trips {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedShapeIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Shapes))
	for id := range m.Shapes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
