package form_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/testsupport"
	"github.com/goliatone/go-uikit/pkg/ui/form"
)

func TestInputDefaults(t *testing.T) {
	got := markup.Render(form.Input("email", "Email"))
	want := `<div class="mb-4"><label for="email" class="block text-sm font-medium text-gray-700 mb-2">Email</label>` +
		`<input class="w-full px-4 py-2 border border-gray-300 rounded-lg focus:ring-2 focus:ring-blue-500 focus:border-transparent" type="text" id="email" name="email"></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
}

func TestInputErrorHelpAndRequired(t *testing.T) {
	doc := testsupport.Parse(t, form.Input("email", "Email",
		form.WithAttrs(markup.A("type", "email"), markup.A("class", "max-w-sm"), markup.Flag("required", true)),
		form.WithError("Adresse invalide"),
		form.WithHelp("We never share it"),
		form.WithValue(`a"b@x.io`),
	))

	input := testsupport.RequireOne(t, doc, "input#email")
	if input.AttrOr("type", "") != "email" {
		t.Fatalf("type override lost")
	}
	if input.AttrOr("value", "") != `a"b@x.io` {
		t.Fatalf("value = %q", input.AttrOr("value", ""))
	}
	if !input.HasClass("border-red-500") || !input.HasClass("max-w-sm") {
		t.Fatalf("classes = %q", input.AttrOr("class", ""))
	}
	if input.AttrOr("aria-invalid", "") != "true" {
		t.Fatalf("aria-invalid missing")
	}
	if got := input.AttrOr("aria-describedby", ""); got != "email-error email-help" {
		t.Fatalf("aria-describedby = %q", got)
	}
	if _, ok := input.Attr("required"); !ok {
		t.Fatalf("required missing")
	}
	if got := testsupport.RequireOne(t, doc, "#email-error").Text(); got != "Adresse invalide" {
		t.Fatalf("error = %q", got)
	}
	testsupport.RequireOne(t, doc, "#email-help")
	testsupport.RequireOne(t, doc, `label span.text-red-500[title="obligatoire"]`)
}

func TestTextarea(t *testing.T) {
	doc := testsupport.Parse(t, form.Textarea("bio", "Bio", form.WithAttrs(markup.A("value", "<b>me</b>"), markup.Int("rows", 6))))
	area := testsupport.RequireOne(t, doc, "textarea#bio")
	if area.Text() != "<b>me</b>" {
		t.Fatalf("content = %q", area.Text())
	}
	if _, ok := area.Attr("value"); ok {
		t.Fatalf("value attribute must move into the content")
	}
	if area.AttrOr("rows", "") != "6" {
		t.Fatalf("rows = %q", area.AttrOr("rows", ""))
	}
}

func TestSelectKeepsOrderAndSelection(t *testing.T) {
	choices := form.Choices("z", "Zulu", "a", "Alpha", "m")
	doc := testsupport.Parse(t, form.Select("code", "Code", choices, "a", form.WithContext(render.NewContext(render.WithLocale("en"))), form.Required()))

	var got []string
	doc.Find("option").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.AttrOr("value", "")+"="+s.Text())
	})
	if diff := cmp.Diff([]string{"z=Zulu", "a=Alpha", "m=m"}, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	testsupport.RequireOne(t, doc, `option[value="a"][selected]`)
	if n := testsupport.Count(t, doc, "option[selected]"); n != 1 {
		t.Fatalf("selected options = %d", n)
	}
	if !testsupport.RequireOne(t, doc, "select").HasClass("cursor-pointer") {
		t.Fatalf("select should be a pointer")
	}
	testsupport.RequireOne(t, doc, `label span[title="required"]`)
}

func TestCheckboxAndRadio(t *testing.T) {
	doc := testsupport.Parse(t,
		form.Checkbox("terms", "I agree", true, form.WithHelp("Read them")),
		form.Radio("plan", "pro", "Pro", false),
		form.Radio("plan", "team", "Team", true),
	)
	box := testsupport.RequireOne(t, doc, `input[type="checkbox"]#terms`)
	if _, ok := box.Attr("checked"); !ok {
		t.Fatalf("checkbox should be checked")
	}
	testsupport.RequireOne(t, doc, `label[for="terms"]`)
	testsupport.RequireOne(t, doc, "#terms-help")

	if _, ok := testsupport.RequireOne(t, doc, "#plan_pro").Attr("checked"); ok {
		t.Fatalf("pro should not be checked")
	}
	team := testsupport.RequireOne(t, doc, "#plan_team")
	if team.AttrOr("value", "") != "team" || team.AttrOr("name", "") != "plan" {
		t.Fatalf("radio attributes")
	}
	testsupport.RequireOne(t, doc, `label[for="plan_team"]`)
}

func TestFileColorDatetime(t *testing.T) {
	doc := testsupport.Parse(t,
		form.File("avatar", "Avatar", form.WithError("Too big")),
		form.Color("accent", "Accent", ""),
		form.Datetime("when", "When", "DATE"),
		form.Datetime("at", "At", "bogus"),
	)
	file := testsupport.RequireOne(t, doc, "#avatar")
	if file.AttrOr("type", "") != "file" || !file.HasClass("border-red-500") {
		t.Fatalf("file input %q", file.AttrOr("class", ""))
	}
	if got := testsupport.RequireOne(t, doc, "#accent").AttrOr("value", ""); got != form.DefaultColor {
		t.Fatalf("color value = %q", got)
	}
	if got := testsupport.RequireOne(t, doc, "#when").AttrOr("type", ""); got != "date" {
		t.Fatalf("date type = %q", got)
	}
	if got := testsupport.RequireOne(t, doc, "#at").AttrOr("type", ""); got != "datetime-local" {
		t.Fatalf("fallback type = %q", got)
	}
}

func TestGrid(t *testing.T) {
	cases := map[int]string{2: "grid-cols-2", 3: "grid-cols-3", 0: "grid-cols-2", 13: "grid-cols-2"}
	for cols, class := range cases {
		got := markup.Render(form.Grid(cols, markup.Text("a"), markup.Text("b")))
		want := `<div class="grid ` + class + ` gap-6">ab</div>`
		if got != want {
			t.Fatalf("Grid(%d) = %s", cols, got)
		}
	}
}

func TestErrorSummary(t *testing.T) {
	if got := markup.Render(form.ErrorSummary(nil, []string{" ", ""})); got != "" {
		t.Fatalf("blank messages rendered %q", got)
	}
	out := markup.Render(form.ErrorSummary(render.NewContext(), []string{"Name required", "Name required", "<script>"}))
	doc := testsupport.ParseHTML(t, out)
	if n := testsupport.Count(t, doc, `div[role="alert"] li`); n != 2 {
		t.Fatalf("items = %d", n)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("message not escaped: %s", out)
	}
	if !strings.Contains(out, "Veuillez corriger") {
		t.Fatalf("summary title missing: %s", out)
	}
}

func TestMappedErrorsFeedFields(t *testing.T) {
	mapped := form.MapErrors([]string{"email"}, map[string][]string{"/body/email": {"Invalid"}})
	doc := testsupport.Parse(t, form.Input("email", "Email", form.WithError(mapped.Field("email"))))
	if got := testsupport.RequireOne(t, doc, "#email-error").Text(); got != "Invalid" {
		t.Fatalf("error = %q", got)
	}
	doc = testsupport.Parse(t, form.Input("name", "Name", form.WithError(mapped.Field("name"))))
	if n := testsupport.Count(t, doc, "[aria-invalid]"); n != 0 {
		t.Fatalf("valid field marked invalid")
	}
}
