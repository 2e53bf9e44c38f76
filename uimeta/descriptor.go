package uimeta

import json "github.com/goccy/go-json"

// Component kinds and classes understood by the form runtime.
const (
	ComponentField    = "field"
	ComponentFieldset = "fieldset"

	ClassField    = `Magento\Ui\Component\Form\Field`
	ClassFieldset = `Magento\Ui\Component\Form\Fieldset`

	// DefaultFormElement is used when the metadata names no element.
	DefaultFormElement = "input"
)

// Metadata keys. The values are the keys read by the form runtime.
const (
	KeyComponentType  = "componentType"
	KeyDataScope      = "dataScope"
	KeyVisible        = "visible"
	KeyDataType       = "dataType"
	KeyLabel          = "label"
	KeyValidation     = "validation"
	KeyDefault        = "default"
	KeyNotice         = "notice"
	KeySortOrder      = "sortOrder"
	KeyFormElement    = "formElement"
	KeyComponent      = "component"
	KeyOptions        = "options"
	KeyPrefer         = "prefer"
	KeyValueMap       = "valueMap"
	KeyNotices        = "notices"
	KeySwitcherConfig = "switcherConfig"
	KeyCollapsible    = "collapsible"

	// ValidationRequired is the validation rule set for required fields.
	ValidationRequired = "required-entry"
)

// Descriptor is the declarative UI component consumed by the form renderer.
type Descriptor struct {
	Arguments  Arguments              `json:"arguments"`
	Attributes Attributes             `json:"attributes"`
	Children   map[string]*Descriptor `json:"children"`
}

// Arguments wraps the component data block.
type Arguments struct {
	Data Data `json:"data"`
}

// Data wraps the component configuration.
type Data struct {
	Config map[string]any `json:"config"`
}

// Attributes names the concrete element and its binding.
type Attributes struct {
	Class       string `json:"class"`
	FormElement string `json:"formElement,omitempty"`
	Name        string `json:"name"`
}

// MarshalJSON encodes the descriptor tree. Children are flattened into plain
// maps so the encoder never walks the recursive Descriptor type.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.tree())
}

func (d Descriptor) tree() map[string]any {
	attrs := map[string]any{
		"class": d.Attributes.Class,
		"name":  d.Attributes.Name,
	}
	if d.Attributes.FormElement != "" {
		attrs["formElement"] = d.Attributes.FormElement
	}
	children := make(map[string]any, len(d.Children))
	for name, c := range d.Children {
		if c != nil {
			children[name] = c.tree()
		}
	}
	return map[string]any{
		"arguments":  map[string]any{"data": map[string]any{"config": d.Arguments.Data.Config}},
		"attributes": attrs,
		"children":   children,
	}
}

// Config returns the component configuration map.
func (d *Descriptor) Config() map[string]any { return d.Arguments.Data.Config }

// Meta returns a configuration value.
func (d *Descriptor) Meta(key string) (any, bool) {
	v, ok := d.Arguments.Data.Config[key]
	return v, ok
}

// Fieldset builds a container descriptor holding children under their names.
func Fieldset(name, label string, children map[string]*Descriptor) *Descriptor {
	config := map[string]any{
		KeyComponentType: ComponentFieldset,
		KeyCollapsible:   false,
	}
	if label != "" {
		config[KeyLabel] = label
	}
	if children == nil {
		children = map[string]*Descriptor{}
	}
	return &Descriptor{
		Arguments:  Arguments{Data: Data{Config: config}},
		Attributes: Attributes{Class: ClassFieldset, Name: name},
		Children:   children,
	}
}
