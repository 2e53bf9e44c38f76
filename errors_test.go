package feedform_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	feedform "github.com/reoring/feedform"
)

func TestIssues_ErrorSummary(t *testing.T) {
	var iss feedform.Issues
	for i := 0; i < 5; i++ {
		iss = feedform.AppendIssues(iss, feedform.Root().Field("fields").Index(i).Issue(feedform.CodeDuplicateField, "field", "x"))
	}
	msg := iss.Error()
	if !strings.HasPrefix(msg, "duplicate_field at /fields/0; duplicate_field at /fields/1") {
		t.Fatalf("unexpected message %q", msg)
	}
	if !strings.HasSuffix(msg, "(total 5)") {
		t.Fatalf("expected total count, got %q", msg)
	}
	if iss[0].Message == "" {
		t.Fatalf("issue message should be translated")
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	inner := feedform.Issues{feedform.Root().Issue(feedform.CodeParseError, "reason", "boom")}
	err := fmt.Errorf("load: %w", inner)
	iss, ok := feedform.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != feedform.CodeParseError {
		t.Fatalf("expected wrapped issues, got %v", err)
	}
	if _, ok := feedform.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors carry no issues")
	}
	if _, ok := feedform.AsIssues(nil); ok {
		t.Fatalf("nil carries no issues")
	}
}

func TestScopeMismatch(t *testing.T) {
	err := feedform.ScopeMismatch("store:1", "store:2")
	if !errors.Is(err, feedform.ErrScopeMismatch) {
		t.Fatalf("expected ErrScopeMismatch, got %v", err)
	}
	iss, _ := feedform.AsIssues(err)
	if iss[0].Params["a"] != "store:1" || iss[0].Params["b"] != "store:2" {
		t.Fatalf("unexpected params %v", iss[0].Params)
	}
}
