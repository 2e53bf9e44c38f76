package fielddef

import (
	"strconv"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/dsl"
	"github.com/reoring/feedform/handler"
)

// Build turns doc into a section. Declaration issues of every field are
// collected; their paths point into the document (/fields/<i>/...).
func Build(doc *Document) (*feedform.Section, error) {
	var iss feedform.Issues
	fields := make([]*feedform.Field, 0, len(doc.Fields))
	for i, def := range doc.Fields {
		f, err := BuildField(def)
		if err != nil {
			iss = append(iss, reroot(err, "/fields/"+strconv.Itoa(i))...)
			continue
		}
		fields = append(fields, f)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return feedform.NewSection(feedform.ParseValuePath(doc.Base), fields...)
}

// BuildField builds a single field declaration.
func BuildField(def FieldDef) (*feedform.Field, error) {
	b, err := dsl.ForKind(dsl.Kind(def.Kind), def.Name)
	if err != nil {
		return nil, err
	}
	if def.Handler != nil {
		h, err := handler.New(def.Handler.Type, handler.Options{
			DataType:       def.Handler.DataType,
			HasEmptyOption: def.Handler.HasEmptyOption,
			Choices:        def.Handler.Choices,
		})
		if err != nil {
			return nil, err
		}
		b.Handler(h)
	}

	b.Label(def.Label).Notice(def.Notice)
	if def.Required {
		b.Required()
	}
	if def.Default != nil {
		b.Default(def.Default)
	}
	if def.DefaultFormValue != nil {
		b.DefaultFormValue(def.DefaultFormValue)
	}
	if def.DefaultUseValue != nil {
		b.DefaultUseValue(def.DefaultUseValue)
	}
	if len(def.ValidationClasses) > 0 {
		b.ValidationClasses(def.ValidationClasses...)
	}
	if def.SortOrder != nil {
		b.SortOrder(*def.SortOrder)
	}
	for _, dep := range def.Dependencies {
		b.Dependency(dep.Values, dep.Fields...)
	}
	if def.CheckedNotice != "" {
		b.CheckedNotice(def.CheckedNotice)
	}
	if def.UncheckedNotice != "" {
		b.UncheckedNotice(def.UncheckedNotice)
	}
	if len(def.CheckedDependents) > 0 {
		b.CheckedDependents(def.CheckedDependents...)
	}
	if len(def.UncheckedDependents) > 0 {
		b.UncheckedDependents(def.UncheckedDependents...)
	}
	return b.Build()
}

// reroot prefixes the paths of the issues carried by err.
func reroot(err error, prefix string) feedform.Issues {
	iss, ok := feedform.AsIssues(err)
	if !ok {
		it := feedform.Root().Issue(feedform.CodeInvalidDeclaration, "reason", err.Error())
		it.Path = prefix
		it.Cause = err
		return feedform.Issues{it}
	}
	out := make(feedform.Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}
