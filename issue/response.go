package issue

import (
	"encoding/json"
	"fmt"
)

// Validations is an insertion-ordered-within-bucket mapping keyed by issue
// type, iterating in Type's declaration order (spec §3 Response, §9
// "Unique-insertion ordered mappings").
type Validations struct {
	buckets map[Type][]Issue
}

func NewValidations() *Validations {
	return &Validations{buckets: make(map[Type][]Issue)}
}

// Add appends an issue to its type's bucket, preserving insertion order.
func (v *Validations) Add(i Issue) {
	v.buckets[i.IssueType] = append(v.buckets[i.IssueType], i)
}

// Bucket returns the issues recorded for a type, in insertion order.
func (v *Validations) Bucket(t Type) []Issue {
	return v.buckets[t]
}

// Truncate trims a bucket down to maxIssues entries, keeping the first ones.
func (v *Validations) Truncate(t Type, maxIssues int) {
	b := v.buckets[t]
	if len(b) > maxIssues {
		v.buckets[t] = b[:maxIssues]
	}
}

// Types returns the set of types that have at least one issue, in
// declaration order.
func (v *Validations) Types() []Type {
	var out []Type
	for _, t := range AllTypes() {
		if len(v.buckets[t]) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// MarshalJSON serializes the mapping as a JSON object keyed by type name,
// iterating in declaration order so repeated runs byte-for-byte match.
func (v *Validations) MarshalJSON() ([]byte, error) {
	return marshalOrderedObject(v.Types(), func(t Type) (string, interface{}) {
		return t.String(), v.buckets[t]
	})
}

// UnmarshalJSON rebuilds the mapping from a serialized report, so a
// Response survives a serialize-then-parse round trip structurally intact.
func (v *Validations) UnmarshalJSON(data []byte) error {
	raw := make(map[string][]Issue)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.buckets = make(map[Type][]Issue, len(raw))
	for name, issues := range raw {
		t, ok := TypeFromName(name)
		if !ok {
			return fmt.Errorf("unknown issue type %q", name)
		}
		v.buckets[t] = issues
	}
	return nil
}

// MarshalYAML mirrors MarshalJSON's ordering for YAML output.
func (v *Validations) MarshalYAML() (interface{}, error) {
	m := make(map[string][]Issue, len(v.buckets))
	for _, t := range v.Types() {
		m[t.String()] = v.buckets[t]
	}
	return yamlOrderedMap{keys: v.Types(), values: m}, nil
}

// Response is the top-level result of a validation run.
type Response struct {
	Metadata    *Metadata    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Validations *Validations `json:"validations" yaml:"validations"`
}

func NewResponse() *Response {
	return &Response{Validations: NewValidations()}
}
