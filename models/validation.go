package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequiredSections are the top-level keys a written document must carry.
var RequiredSections = []string{"hero", "projects", "team", "contact"}

type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

// ValidationError lists every problem found in a document.
type ValidationError struct {
	Problems []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = fmt.Sprintf("%s: %s", p.Field, p.Problem)
	}
	return "invalid site data: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks field limits, non-negative counters and id uniqueness
// within projects and team.
func (d *SiteData) Validate() error {
	var problems []FieldError

	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating site data: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, FieldError{
				Field:   strings.TrimPrefix(fe.Namespace(), "SiteData."),
				Problem: describeTag(fe),
			})
		}
	}

	problems = append(problems, duplicateIDs("projects", d.ProjectIDs())...)
	problems = append(problems, duplicateIDs("team", d.TeamIDs())...)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag()
	}
}

func duplicateIDs(collection string, ids []string) []FieldError {
	var problems []FieldError
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if first, ok := seen[id]; ok {
			problems = append(problems, FieldError{
				Field:   fmt.Sprintf("%s[%d].id", collection, i),
				Problem: fmt.Sprintf("duplicates id %q of %s[%d]", id, collection, first),
			})
			continue
		}
		seen[id] = i
	}
	return problems
}

// ParseSiteData decodes a JSON document and checks that every required
// section is present. The result is normalized but not validated.
func ParseSiteData(data []byte) (*SiteData, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil || sections == nil {
		return nil, &ValidationError{Problems: []FieldError{{Field: "body", Problem: "must be a JSON object"}}}
	}

	var problems []FieldError
	for _, key := range RequiredSections {
		raw, ok := sections[key]
		if !ok || string(raw) == "null" {
			problems = append(problems, FieldError{Field: key, Problem: "is required"})
		}
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	var doc SiteData
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{Problems: []FieldError{{
				Field:   typeErr.Field,
				Problem: "must be " + typeErr.Type.String(),
			}}}
		}
		return nil, &ValidationError{Problems: []FieldError{{Field: "body", Problem: err.Error()}}}
	}
	doc.Normalize()
	return &doc, nil
}
