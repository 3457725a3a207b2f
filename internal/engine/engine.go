// Package engine implements the orchestrator described in spec.md §4.1:
// the two-stage load, the raw- and linked-level rule batteries, issue
// aggregation, and per-type truncation. It is the single control-flow
// fork in the core (spec §9 "Two-stage loading with partial failure").
package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/customrules"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/metadata"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rawfeed"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rules/crossentity"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rules/entity"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rules/structural"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/visualization"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

const downloadTimeout = 2 * time.Minute

// Validate runs the full pipeline against source, which may be a directory
// path, a .zip file path, or an http(s) URL. It never returns a Go error:
// every failure mode becomes an Issue in the returned Response (spec §4.1
// "Failure semantics" — "the orchestrator never aborts").
func Validate(source string, maxIssues int, rules *customrules.Rules) *issue.Response {
	loader, err := openSource(source)
	if err != nil {
		return invalidArchiveResponse(err)
	}
	return validateWithLoader(loader, maxIssues, rules)
}

// ValidateBytes runs the full pipeline against the bytes of an in-memory
// GTFS ZIP archive, for the HTTP daemon's POST /validate (spec §6).
func ValidateBytes(data []byte, maxIssues int, rules *customrules.Rules) *issue.Response {
	loader, err := rawfeed.FromZipBytes(data)
	if err != nil {
		return invalidArchiveResponse(err)
	}
	return validateWithLoader(loader, maxIssues, rules)
}

// ValidateURL downloads a GTFS archive from url and runs the full pipeline
// against it, for the HTTP daemon's GET /validate (spec §6).
func ValidateURL(url string, maxIssues int, rules *customrules.Rules) *issue.Response {
	loader, err := rawfeed.FromURL(url, downloadTimeout)
	if err != nil {
		return invalidArchiveResponse(err)
	}
	return validateWithLoader(loader, maxIssues, rules)
}

func invalidArchiveResponse(err error) *issue.Response {
	resp := issue.NewResponse()
	resp.Validations.Add(*issue.New(issue.Fatal, issue.InvalidArchive, "").WithDetails(err.Error()))
	return resp
}

func validateWithLoader(loader *rawfeed.Loader, maxIssues int, rules *customrules.Rules) *issue.Response {
	if maxIssues < 1 {
		maxIssues = 1
	}
	if rules == nil {
		rules = customrules.Default()
	}

	rf := rawfeed.Load(loader)

	issues := runRawRules(rf)

	md := metadata.Extract(rf)

	m, buildErr := model.Build(rf)
	if buildErr != nil {
		issues = append(issues, unloadableModelIssue(buildErr))
	} else {
		issues = append(issues, runLinkedRules(m, rules)...)
		metadata.EnrichAdvanced(m, md)
		for i := range issues {
			if issues[i].ObjectType != nil && *issues[i].ObjectType == issue.ObjectStop {
				visualization.Enrich(m, &issues[i])
			}
		}
	}

	resp := issue.NewResponse()
	resp.Metadata = md
	for _, is := range issues {
		resp.Validations.Add(is)
	}
	for _, t := range resp.Validations.Types() {
		md.IssuesCount[t] = len(resp.Validations.Bucket(t))
		resp.Validations.Truncate(t, maxIssues)
	}
	return resp
}

// runRawRules invokes every rule that only needs the RawFeed. The RawFeed is
// read-only once rawfeed.Load returns, so the batteries are safe to borrow
// concurrently (spec §5 "may be borrowed by multiple rule modules
// simultaneously if a future implementation parallelizes rules"); each
// battery writes into its own slot so the concatenation order stays fixed
// regardless of goroutine completion order.
func runRawRules(rf *rawfeed.RawFeed) []issue.Issue {
	batteries := []func(*rawfeed.RawFeed) []issue.Issue{
		structural.RawGtfsDuplicates,
		structural.InvalidReference,
		structural.FilePresence,
		structural.SubFolder,
	}
	results := make([][]issue.Issue, len(batteries))

	var g errgroup.Group
	for i, battery := range batteries {
		i, battery := i, battery
		g.Go(func() error {
			results[i] = battery(rf)
			return nil
		})
	}
	_ = g.Wait()

	var issues []issue.Issue
	for _, r := range results {
		issues = append(issues, r...)
	}
	return issues
}

// runLinkedRules invokes every rule that needs the resolved model.Model
// (spec §4.3, §4.4), concurrently: the Model is read-only for the rest of
// the run, and order only affects in-bucket emission order, which spec §5
// explicitly does not guarantee across rules. Each rule writes into a fixed
// slot so the final concatenation order is still deterministic.
func runLinkedRules(m *model.Model, rules *customrules.Rules) []issue.Issue {
	batteries := []func() []issue.Issue{
		func() []issue.Issue { return entity.Agency(m) },
		func() []issue.Issue { return entity.FeedInfo(m) },
		func() []issue.Issue { return entity.CheckName(m) },
		func() []issue.Issue { return entity.CheckId(m) },
		func() []issue.Issue { return entity.Stops(m) },
		func() []issue.Issue { return entity.FareAttributes(m) },
		func() []issue.Issue { return entity.Calendar(m) },
		func() []issue.Issue { return entity.Routes(m) },
		func() []issue.Issue { return crossentity.UnusedStop(m) },
		func() []issue.Issue { return crossentity.DuplicateStops(m) },
		func() []issue.Issue { return crossentity.DurationDistance(m, rules) },
		func() []issue.Issue { return crossentity.InterpolatedStopTimes(m) },
		func() []issue.Issue { return crossentity.StopTimes(m) },
		func() []issue.Issue { return crossentity.Shapes(m) },
		func() []issue.Issue { return crossentity.UnusableTrip(m) },
	}
	results := make([][]issue.Issue, len(batteries))

	var g errgroup.Group
	for i, battery := range batteries {
		i, battery := i, battery
		g.Go(func() error {
			results[i] = battery()
			return nil
		})
	}
	_ = g.Wait()

	var issues []issue.Issue
	for _, r := range results {
		issues = append(issues, r...)
	}
	return issues
}

// unloadableModelIssue builds the single Fatal issue that replaces the
// entire linked-level rule battery when model.Build fails, carrying the
// offending CSV row context when the failure was a row decode error (spec
// §3 "LinkedModel", §4.1 step 4).
func unloadableModelIssue(err error) issue.Issue {
	iss := issue.New(issue.Fatal, issue.UnloadableModel, "").WithDetails(err.Error())
	var be *model.BuildError
	if errors.As(err, &be) {
		rf := issue.RelatedFile{FileName: be.FileName}
		if be.BadLine != nil {
			rf.Line = &issue.RelatedLine{
				LineNumber: be.BadLine.LineNumber,
				Headers:    be.BadLine.Headers,
				Values:     be.BadLine.Values,
			}
		}
		iss.WithRelatedFile(rf)
	}
	return *iss
}

// openSource picks the right rawfeed.Loader constructor for source (spec
// §1 "a local path, a ZIP file, or an HTTP URL"; §6 CLI -i/--input).
func openSource(source string) (*rawfeed.Loader, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return rawfeed.FromURL(source, downloadTimeout)
	}
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", source, err)
	}
	if info.IsDir() {
		return rawfeed.FromDirectory(source)
	}
	return rawfeed.FromZipPath(source)
}
