package fetch

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/campus-tools/schedfetch/internal/cache"
)

const testRoot = "http://courses.example.edu/cis/2026/fall/schedule/"

// fakeTransport serves canned pages and counts every request.
type fakeTransport struct {
	pages map[string]string
	calls map[string]int
}

func newFakeTransport() *fakeTransport {
	label := func(text string) string {
		return `<div class="ws-course-number">` + text + `</div>`
	}
	cell := func(header, text string) string {
		return `<td class="ws-row" headers="ws-` + header + `">` + text + `</td>`
	}

	return &fakeTransport{
		calls: make(map[string]int),
		pages: map[string]string{
			testRoot + "index.html": label("CS") + label("MATH"),
			testRoot + "CS/":        label("CS 101") + label("CS 493"),
			testRoot + "MATH/":      label("MATH 241"),
			testRoot + "CS/101.html": cell("crn", "30001") +
				cell("type", "lecture") + cell("days", "MWF"),
			testRoot + "CS/493.html": cell("crn", "31260") +
				cell("section", "CS") + cell("days", "W") +
				cell("time", "04:00 PM - 04:50 PM") +
				cell("instructor", "Woodley, M"),
			testRoot + "MATH/241.html": cell("crn", "40001") +
				cell("days", "MTWR"),
		},
	}
}

func (ft *fakeTransport) Fetch(_ context.Context, urlStr string) (io.ReadCloser, error) {
	ft.calls[urlStr]++
	page, ok := ft.pages[urlStr]
	if !ok {
		return nil, fmt.Errorf("unexpected fetch: %s", urlStr)
	}
	return io.NopCloser(strings.NewReader(page)), nil
}

func (ft *fakeTransport) totalCalls() int {
	total := 0
	for _, n := range ft.calls {
		total += n
	}
	return total
}

func newTestFetcher(ft *fakeTransport) *Fetcher {
	return New(ft, cache.New(), Options{
		SiteRoot: "http://courses.example.edu/cis/",
		Term:     "fall",
		Year:     2026,
	})
}

func TestFetcher_URLs(t *testing.T) {
	f := newTestFetcher(newFakeTransport())

	if f.RootURL() != testRoot {
		t.Errorf("root = %q", f.RootURL())
	}
	if f.PortalURL() != testRoot+"index.html" {
		t.Errorf("portal = %q", f.PortalURL())
	}
	if f.Term() != "fall" || f.Year() != 2026 {
		t.Errorf("term/year = %s/%d", f.Term(), f.Year())
	}
}

func TestFetcher_TermInference(t *testing.T) {
	f := New(newFakeTransport(), nil, Options{
		SiteRoot: "http://courses.example.edu/cis/",
		Term:     "notaterm",
		Now:      time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	if f.Term() != "spring" || f.Year() != 2026 {
		t.Errorf("term/year = %s/%d, want spring/2026", f.Term(), f.Year())
	}
}

func TestFetcher_SubjectList(t *testing.T) {
	ft := newFakeTransport()
	f := newTestFetcher(ft)

	subjects, err := f.SubjectList(context.Background())
	if err != nil {
		t.Fatalf("SubjectList: %v", err)
	}
	if want := []string{"CS", "MATH"}; !reflect.DeepEqual(subjects, want) {
		t.Errorf("subjects = %v, want %v", subjects, want)
	}
}

func TestFetcher_FetchOne(t *testing.T) {
	ft := newFakeTransport()
	f := newTestFetcher(ft)

	idx, err := f.FetchOne(context.Background(), "cs", "493")
	if err != nil {
		t.Fatalf("FetchOne: %v", err)
	}

	sections, ok := idx["CS"]["493"]
	if !ok {
		t.Fatalf("index = %v, want CS/493", idx)
	}
	sec := sections[31260]
	if sec == nil || sec.Instructor != "Woodley, M" || sec.Days != "W" {
		t.Errorf("section 31260 = %+v", sec)
	}
	if len(idx) != 1 || len(idx["CS"]) != 1 {
		t.Errorf("index contains extra entries: %v", idx)
	}

	// Exactly one request: the course page. No enumeration.
	if ft.totalCalls() != 1 || ft.calls[testRoot+"CS/493.html"] != 1 {
		t.Errorf("calls = %v, want only the section page", ft.calls)
	}
}

func TestFetcher_FetchSubjects(t *testing.T) {
	ft := newFakeTransport()
	f := newTestFetcher(ft)

	idx, err := f.FetchSubjects(context.Background(), []string{"CS"})
	if err != nil {
		t.Fatalf("FetchSubjects: %v", err)
	}

	if len(idx) != 1 {
		t.Fatalf("index = %v, want CS only", idx)
	}
	if len(idx["CS"]) != 2 {
		t.Errorf("CS courses = %v, want 101 and 493", idx["CS"])
	}
	if ft.calls[testRoot+"index.html"] != 0 {
		t.Error("subject enumeration request issued for explicit subjects")
	}
}

func TestFetcher_FetchAll(t *testing.T) {
	ft := newFakeTransport()
	f := newTestFetcher(ft)

	idx, err := f.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if len(idx) != 2 {
		t.Fatalf("subjects = %v", idx)
	}
	if idx["MATH"]["241"][40001].Days != "MTWR" {
		t.Errorf("MATH 241 = %v", idx["MATH"]["241"])
	}
	if idx["CS"]["101"][30001].Type != "lecture" {
		t.Errorf("CS 101 = %v", idx["CS"]["101"])
	}

	// Portal + 2 subject pages + 3 course pages.
	if ft.totalCalls() != 6 {
		t.Errorf("total calls = %d (%v), want 6", ft.totalCalls(), ft.calls)
	}
}

func TestFetcher_Memoization(t *testing.T) {
	ft := newFakeTransport()
	f := newTestFetcher(ft)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.SubjectList(ctx); err != nil {
			t.Fatalf("SubjectList: %v", err)
		}
		if _, err := f.CourseList(ctx, "CS"); err != nil {
			t.Fatalf("CourseList: %v", err)
		}
		if _, err := f.SectionList(ctx, "CS", "493"); err != nil {
			t.Fatalf("SectionList: %v", err)
		}
	}

	if ft.totalCalls() != 3 {
		t.Errorf("total calls = %d (%v), want 3 (second round cached)", ft.totalCalls(), ft.calls)
	}

	f.Flush()
	if _, err := f.SubjectList(ctx); err != nil {
		t.Fatalf("SubjectList after flush: %v", err)
	}
	if ft.calls[testRoot+"index.html"] != 2 {
		t.Errorf("portal calls = %d, want 2 after flush", ft.calls[testRoot+"index.html"])
	}
}

func TestFetcher_EmptySubjectListMemoized(t *testing.T) {
	ft := newFakeTransport()
	ft.pages[testRoot+"index.html"] = `<html><body>no labels here</body></html>`
	f := newTestFetcher(ft)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		subjects, err := f.SubjectList(ctx)
		if err != nil {
			t.Fatalf("SubjectList: %v", err)
		}
		if len(subjects) != 0 {
			t.Fatalf("subjects = %v, want empty", subjects)
		}
	}

	if got := ft.calls[testRoot+"index.html"]; got != 1 {
		t.Errorf("portal fetched %d times, want 1 (empty result should still be cached)", got)
	}
}

func TestFetcher_TransportFailureAborts(t *testing.T) {
	ft := newFakeTransport()
	delete(ft.pages, testRoot+"CS/493.html")
	f := newTestFetcher(ft)

	if _, err := f.FetchAll(context.Background()); err == nil {
		t.Fatal("expected FetchAll to fail when a course page is unreachable")
	}
}
