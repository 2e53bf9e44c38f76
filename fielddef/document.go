// Package fielddef loads section declarations from YAML or JSON documents and
// builds them into feedform sections.
package fielddef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/handler"
)

// Format identifies the encoding of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath guesses the format from the file extension. Anything other
// than .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document declares one section.
type Document struct {
	// Base is the value path of the section, segments joined with "/".
	Base   string     `json:"base" yaml:"base"`
	Label  string     `json:"label,omitempty" yaml:"label,omitempty"`
	Fields []FieldDef `json:"fields" yaml:"fields"`
}

// FieldDef declares one field. Kind selects the builder (checkbox, select,
// text_box, text_area); Handler overrides the default value handler of the
// kind.
type FieldDef struct {
	Name              string          `json:"name" yaml:"name"`
	Kind              string          `json:"kind" yaml:"kind"`
	Label             string          `json:"label,omitempty" yaml:"label,omitempty"`
	Notice            string          `json:"notice,omitempty" yaml:"notice,omitempty"`
	Required          bool            `json:"required,omitempty" yaml:"required,omitempty"`
	Default           any             `json:"default,omitempty" yaml:"default,omitempty"`
	DefaultFormValue  any             `json:"default_form_value,omitempty" yaml:"default_form_value,omitempty"`
	DefaultUseValue   any             `json:"default_use_value,omitempty" yaml:"default_use_value,omitempty"`
	ValidationClasses []string        `json:"validation_classes,omitempty" yaml:"validation_classes,omitempty"`
	SortOrder         *int            `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`
	Handler           *HandlerDef     `json:"handler,omitempty" yaml:"handler,omitempty"`
	Dependencies      []DependencyDef `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	CheckedNotice       string   `json:"checked_notice,omitempty" yaml:"checked_notice,omitempty"`
	UncheckedNotice     string   `json:"unchecked_notice,omitempty" yaml:"unchecked_notice,omitempty"`
	CheckedDependents   []string `json:"checked_dependents,omitempty" yaml:"checked_dependents,omitempty"`
	UncheckedDependents []string `json:"unchecked_dependents,omitempty" yaml:"unchecked_dependents,omitempty"`
}

// HandlerDef selects a value handler by tag.
type HandlerDef struct {
	Type           handler.Type     `json:"type" yaml:"type"`
	DataType       string           `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	HasEmptyOption bool             `json:"has_empty_option,omitempty" yaml:"has_empty_option,omitempty"`
	Choices        []handler.Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// DependencyDef enables Fields while the value is one of Values.
type DependencyDef struct {
	Values []string `json:"values" yaml:"values"`
	Fields []string `json:"fields" yaml:"fields"`
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	if err := decode(data, format, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadAll loads every path and reports all failures at once. Documents that
// loaded are returned in path order even when others failed.
func LoadAll(paths ...string) ([]*Document, error) {
	var result *multierror.Error
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := Load(p)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, result.ErrorOrNil()
}

// LoadSnapshot reads a values document (a nested mapping) as a snapshot of
// scope.
func LoadSnapshot(path string, scope feedform.Scope) (feedform.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return feedform.Snapshot{}, err
	}
	var values map[string]any
	if err := decode(data, FormatFromPath(path), &values); err != nil {
		return feedform.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return feedform.NewSnapshot(scope, values), nil
}

func decode(data []byte, format Format, out any) error {
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(out)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(out)
	default:
		return feedform.Issues{feedform.Root().Issue(feedform.CodeParseError, "reason", "unknown format "+string(format))}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		it := feedform.Root().Issue(feedform.CodeParseError, "reason", err.Error())
		it.Cause = err
		return feedform.Issues{it}
	}
	return nil
}
