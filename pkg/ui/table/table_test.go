package table_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/testsupport"
	"github.com/goliatone/go-uikit/pkg/ui/table"
)

func TestEmptyTableSpansAllColumns(t *testing.T) {
	headers := []string{"Name", "Status", "Owner"}
	doc := testsupport.Parse(t, table.Simple(nil, headers, nil))

	if n := testsupport.Count(t, doc, "thead th[scope=col]"); n != 3 {
		t.Fatalf("headers = %d", n)
	}
	cell := testsupport.RequireOne(t, doc, "tbody td")
	if cell.AttrOr("colspan", "") != "3" {
		t.Fatalf("colspan = %q", cell.AttrOr("colspan", ""))
	}
	if !strings.Contains(cell.Text(), "Aucune donnée disponible") {
		t.Fatalf("placeholder = %q", cell.Text())
	}
	testsupport.RequireOne(t, doc, "tbody td i.fa-inbox")

	en := render.NewContext(render.WithLocale("en"))
	doc = testsupport.Parse(t, table.Simple(en, nil, []table.Row{}))
	cell = testsupport.RequireOne(t, doc, "tbody td")
	if cell.AttrOr("colspan", "") != "1" || !strings.Contains(cell.Text(), "No data available") {
		t.Fatalf("headerless placeholder: %q %q", cell.AttrOr("colspan", ""), cell.Text())
	}
}

func TestRowsAndStyles(t *testing.T) {
	rows := []table.Row{
		table.TextRow("a <1>", "x"),
		table.TextRow("b", "y"),
		table.TextRow("c", "z"),
	}
	doc := testsupport.Parse(t, table.Full(nil, []string{"A", "B"}, rows, markup.A("id", "t1")))

	testsupport.RequireOne(t, doc, "table#t1.min-w-full")
	trs := doc.Find("tbody tr")
	if trs.Length() != 3 {
		t.Fatalf("rows = %d", trs.Length())
	}
	var striped []bool
	trs.Each(func(_ int, s *goquery.Selection) {
		striped = append(striped, s.HasClass("bg-gray-50/50"))
		if !s.HasClass("hover:bg-blue-50/50") {
			t.Fatalf("full table rows should hover")
		}
	})
	if diff := cmp.Diff([]bool{true, false, true}, striped); diff != "" {
		t.Fatalf("striping mismatch (-want +got):\n%s", diff)
	}
	if got := doc.Find("tbody td").First().Text(); got != "a <1>" {
		t.Fatalf("first cell = %q", got)
	}

	doc = testsupport.Parse(t, table.Simple(nil, []string{"A"}, rows[:1]))
	tr := testsupport.RequireOne(t, doc, "tbody tr")
	if tr.HasClass("bg-gray-50/50") || tr.HasClass("hover:bg-blue-50/50") {
		t.Fatalf("simple table row styled: %q", tr.AttrOr("class", ""))
	}
}

func TestResponsiveContainer(t *testing.T) {
	doc := testsupport.Parse(t, table.Responsive(nil, []string{"A"}, nil))
	root := doc.Find("body > div").First()
	if !root.HasClass("overflow-x-auto") || !root.HasClass("rounded-2xl") {
		t.Fatalf("container classes = %q", root.AttrOr("class", ""))
	}
}

func TestCells(t *testing.T) {
	doc := testsupport.Parse(t,
		table.StatusCell(nil, "in_progress", ""),
		table.PriorityCell(nil, "urgent", "Now"),
		table.ActionsCell(
			table.ActionButton("/edit?id=1", "fas fa-edit", "Edit", "green"),
			table.ActionButton("/x", "fas fa-trash", "Delete", "violet"),
		),
		table.IconCell("fas fa-user", "Alice", "purple"),
		table.IconCell("fas fa-user", "Bob", `red" onclick="x`),
	)

	spans := doc.Find("span.rounded-full")
	if spans.Eq(0).Text() != "En cours" || spans.Eq(1).Text() != "Now" {
		t.Fatalf("badge cells = %q, %q", spans.Eq(0).Text(), spans.Eq(1).Text())
	}
	links := doc.Find("div.space-x-2 > a")
	if links.Length() != 2 {
		t.Fatalf("actions = %d", links.Length())
	}
	if !links.Eq(0).HasClass("text-emerald-500") || !links.Eq(1).HasClass("text-blue-500") {
		t.Fatalf("action colors %q / %q", links.Eq(0).AttrOr("class", ""), links.Eq(1).AttrOr("class", ""))
	}
	if links.Eq(1).AttrOr("aria-label", "") != "Delete" {
		t.Fatalf("action needs an accessible name")
	}
	icons := doc.Find("div.flex.items-center > i.fa-user")
	if !icons.Eq(0).HasClass("text-purple-500") || !icons.Eq(1).HasClass("text-gray-500") {
		t.Fatalf("icon colors %q / %q", icons.Eq(0).AttrOr("class", ""), icons.Eq(1).AttrOr("class", ""))
	}
}

func TestPagination(t *testing.T) {
	if got := markup.Render(table.Pagination(nil, 1, 1, "/items")); got != "" {
		t.Fatalf("single page rendered %q", got)
	}
	if got := markup.Render(table.Pagination(nil, 1, 0, "/items")); got != "" {
		t.Fatalf("no pages rendered %q", got)
	}

	doc := testsupport.Parse(t, table.Pagination(nil, 2, 4, "/items?sort=name"))
	current := testsupport.RequireOne(t, doc, `[aria-current="page"]`)
	if current.Text() != "2" {
		t.Fatalf("current = %q", current.Text())
	}
	if n := testsupport.Count(t, doc, "nav a"); n != 3 {
		t.Fatalf("page links = %d", n)
	}
	testsupport.RequireOne(t, doc, `a[rel="prev"][href="/items?sort=name&page=1"]`)
	testsupport.RequireOne(t, doc, `a[rel="next"][href="/items?sort=name&page=3"]`)
	if got := doc.Find("p.text-sm").Text(); got != "Page 2 sur 4" {
		t.Fatalf("summary = %q", got)
	}

	doc = testsupport.Parse(t, table.Pagination(nil, 9, 3, "/p"))
	if got := testsupport.RequireOne(t, doc, `[aria-current="page"]`).Text(); got != "3" {
		t.Fatalf("current should clamp to last page, got %q", got)
	}
	if n := testsupport.Count(t, doc, `a[rel="next"]`); n != 0 {
		t.Fatalf("last page has a next link")
	}
}

func TestPageURL(t *testing.T) {
	cases := map[string]string{
		"/items":       "/items?page=4",
		"/items?q=a":   "/items?q=a&page=4",
		"":             "?page=4",
		"https://x.io": "https://x.io?page=4",
	}
	for base, want := range cases {
		if got := table.PageURL(base, 4); got != want {
			t.Fatalf("PageURL(%q) = %q, want %q", base, got, want)
		}
	}
}
