package structural

import (
	"path"
	"strings"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rawfeed"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// SubFolder flags an archive whose stops.txt was zipped inside a
// subdirectory, which most GTFS consumers silently fail to find (spec §4.2,
// grounded on _examples/original_source/src/sub_folder.rs).
func SubFolder(rf *rawfeed.RawFeed) []issue.Issue {
	for _, name := range rf.FileNames {
		if strings.HasSuffix(name, "stops.txt") {
			dir := path.Dir(name)
			if dir != "." && dir != "" {
				return []issue.Issue{
					*issue.New(issue.Error, issue.SubFolder, dir).
						WithDetails("feed files are nested inside folder \"" + dir + "\" instead of the archive root"),
				}
			}
			break
		}
	}
	return nil
}
