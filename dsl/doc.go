// Package dsl provides the field kinds of feedform and a chained builder to
// declare them.
//
// Overview
//   - Kinds: Checkbox, Select, TextBox, TextArea. Each kind is bound to its
//     form element and a default value handler; ForKind resolves a Kind tag.
//   - Builder API: Label/Notice/Required/Default/ValidationClasses/SortOrder
//     then Build()/MustBuild().
//   - Dependencies: Select(...).Dependency(values, fields...) and
//     Checkbox(...).CheckedDependents(fields...)/UncheckedDependents(...).
//     They are compiled into the switcherConfig of the field descriptor.
//
// File layout (roles)
//   - field_builder.go: FieldBuilder and Build/MustBuild.
//   - kinds.go: Kind tags, ForKind and the per-kind UI extensions.
//
// Example
//
//	state := dsl.Select("automatic_refresh_state").
//	    Handler(handler.NewOption("number", true,
//	        handler.Choice{Value: "", Label: "No"},
//	        handler.Choice{Value: "2", Label: "Advised"},
//	        handler.Choice{Value: "3", Label: "Required"},
//	    )).
//	    Default("").
//	    Label("Force Automatic Refresh").
//	    Dependency([]string{"2", "3"}, "automatic_refresh_delay").
//	    SortOrder(100020).
//	    MustBuild()
//
//	d, _ := state.UIMeta()
//	// d.Config()["switcherConfig"] holds one rule per value of the domain.
//
// Declaration mistakes (a checkbox option on a select, a dependency value that
// is not a choice, ...) are returned by Build as feedform.Issues.
package dsl
