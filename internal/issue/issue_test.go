// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i, is := range values {
		if i > 0 && values[i-1].ID() >= is.ID() {
			t.Errorf("Values() not ordered by ID at %d", i)
		}
		if Get(is.ID()) != is {
			t.Errorf("Get(%d) did not return the catalog entry", is.ID())
		}
		if is.Title() == "" || !strings.Contains(string(is.MarkdownMsg()), "# "+is.Title()) {
			t.Errorf("issue %d: markdown should start with its title %q", is.ID(), is.Title())
		}
	}

	if Get(ID(9999)) != nil {
		t.Error("Get(unknown) should return nil")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(StoreNotFoundID).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(out, "No environment store yet") {
		t.Errorf("rendered output missing title:\n%s", out)
	}
}

func TestActionableError(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("/etc/wslenv/config.cue").
		WithSuggestion("Check the file permissions").
		WithSuggestion("Run wslenv config init").
		Wrap(cause).
		BuildError()

	if !errors.Is(err, cause) {
		t.Error("ActionableError should unwrap to its cause")
	}
	want := "failed to load configuration: /etc/wslenv/config.cue: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ActionableError, got %T", err)
	}
	formatted := ae.Format(false)
	if !strings.Contains(formatted, "  • Check the file permissions") || !strings.Contains(formatted, "  • Run wslenv config init") {
		t.Errorf("Format(false) missing suggestions:\n%s", formatted)
	}
	if strings.Contains(formatted, "Error chain") {
		t.Errorf("Format(false) should not include the error chain:\n%s", formatted)
	}
	if verbose := ae.Format(true); !strings.Contains(verbose, "1. permission denied") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
}

func TestErrorContext_NoOperation(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().Wrap(errors.New("x")).BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
	if err := WrapWithContext(nil, "op", "res"); err != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", err)
	}
	err := WrapWithContext(errors.New("boom"), "read store", "/tmp/x.json")
	if err.Error() != "failed to read store: /tmp/x.json: boom" {
		t.Errorf("WrapWithContext() = %q", err.Error())
	}
}
