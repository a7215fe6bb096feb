package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-uikit/pkg/ui/form"
)

func TestMapErrors_PointerAndDottedPaths(t *testing.T) {
	fields := []string{"name", "owner", "owner.email", "owner.phone", "tags"}

	payload := map[string][]string{
		"/body/name":                 {"Name is required"},
		"body.owner.email":           {"Email invalid"},
		"$.body.tags[0]":             {"Tags must be unique"},
		"request.payload.owner":      {"Owner missing"},
		"non_field_errors":           {"Form level error"},
		"body/owner/phone/~1number":  {"Phone malformed"},
		"request/body/unknown-field": {"Should fall back to form errors"},
		"":                           {"Unscoped form error"},
	}

	mapped := form.MapErrors(fields, payload)

	wantFields := map[string][]string{
		"name":        {"Name is required"},
		"owner.email": {"Email invalid"},
		"tags":        {"Tags must be unique"},
		"owner":       {"Owner missing"},
		"owner.phone": {"Phone malformed"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Form level error", "Should fall back to form errors", "Unscoped form error"}
	if diff := cmp.Diff(wantForm, mapped.Form, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeErrors(t *testing.T) {
	merged := form.MergeErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorMappingAccessors(t *testing.T) {
	mapped := form.MapErrors([]string{"email", "address[city]"}, map[string][]string{
		"data.email":         {"Invalid", "Too long"},
		"/address/city":      {"Required"},
		"__all__":            {"Try again"},
		"attributes.missing": {" "},
	})

	if got := mapped.Field("email"); got != "Invalid" {
		t.Fatalf("Field(email) = %q", got)
	}
	if got := mapped.Field("unknown"); got != "" {
		t.Fatalf("Field(unknown) = %q", got)
	}
	if got := mapped.Field("address.city"); got != "Required" {
		t.Fatalf("Field(address.city) = %q", got)
	}

	want := []string{"Try again", "Invalid", "Too long", "Required"}
	if diff := cmp.Diff(want, mapped.All("email", "address.city")); diff != "" {
		t.Fatalf("All mismatch (-want +got):\n%s", diff)
	}
}
