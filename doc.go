// Package feedform declares the administrative configuration of a product
// feed export and decides when a configuration change requires the feed to be
// refreshed.
//
// It provides:
//
//   - Immutable, typed Field declarations backed by a value Handler
//     (coercion between stored, form and business representations).
//   - A projection of every Field into a declarative form component
//     descriptor (package uimeta).
//   - CompileSwitcher, which turns value dependencies ("show these fields when
//     that field has one of these values") into switcher rules for the form
//     runtime.
//   - Snapshot and Section, the in-memory view of stored values and the
//     scope-aware equality used by the refresh engine (package refresh).
//   - A stable error model via Issues (JSON Pointer, code, message).
//
// Design policy:
//   - Keep the model and its pure operations in the root package; field kinds
//     live under dsl/, value handlers under handler/, descriptors under
//     uimeta/, refresh decisions under refresh/, server-side rule
//     evaluation under rules/ and definition documents under fielddef/.
//   - Nothing here performs I/O. Every operation works on caller supplied
//     values and never mutates them.
//
// Typical usage:
//
//	delay := dsl.TextBox("automatic_refresh_delay").
//	    Handler(handler.NewPositiveInteger()).
//	    Label("Force Automatic Refresh After").
//	    Required().
//	    MustBuild()
//	d, err := delay.UIMeta()
//
//	section := feedform.MustNewSection(feedform.ParseValuePath("feed/refresh"), delay)
//	equal, err := section.Equal(before, after)
package feedform
