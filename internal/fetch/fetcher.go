// Package fetch orchestrates schedule retrieval: it builds term URLs,
// drives the page scanners over transport streams, and memoizes every
// result in the schedule cache.
package fetch

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/campus-tools/schedfetch/internal/cache"
	"github.com/campus-tools/schedfetch/internal/parse"
	"github.com/campus-tools/schedfetch/internal/term"
	"github.com/campus-tools/schedfetch/internal/transport"
	"github.com/campus-tools/schedfetch/pkg/models"
	"github.com/rs/zerolog/log"
)

// Options selects which schedule snapshot a Fetcher reads.
type Options struct {
	// SiteRoot is the schedule site prefix, e.g. "http://courses.example.edu/cis/".
	SiteRoot string
	// Term is the academic term; invalid or empty values are inferred from Now.
	Term string
	// Year of the snapshot; zero means the current year.
	Year int
	// Now anchors term/year inference. Zero means time.Now().
	Now time.Time
}

// Fetcher retrieves and parses schedule pages for one term. It owns its
// cache for the lifetime of the instance; scanners are created fresh per
// parse and hold no state across invocations.
type Fetcher struct {
	transport transport.Transport
	cache     *cache.ScheduleCache
	root      string
	portal    string
	term      string
	year      int
}

// New creates a Fetcher for the term selected by opts.
func New(tr transport.Transport, c *cache.ScheduleCache, opts Options) *Fetcher {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	termName, year := term.Resolve(opts.Term, opts.Year, now)

	root := strings.TrimSuffix(opts.SiteRoot, "/") +
		"/" + strconv.Itoa(year) + "/" + termName + "/schedule/"

	if c == nil {
		c = cache.New()
	}

	return &Fetcher{
		transport: tr,
		cache:     c,
		root:      root,
		portal:    root + "index.html",
		term:      termName,
		year:      year,
	}
}

// Term returns the resolved term name.
func (f *Fetcher) Term() string { return f.term }

// Year returns the resolved year.
func (f *Fetcher) Year() int { return f.year }

// RootURL returns the schedule root for the term.
func (f *Fetcher) RootURL() string { return f.root }

// PortalURL returns the portal index page for the term.
func (f *Fetcher) PortalURL() string { return f.portal }

// Stats exposes the cache statistics.
func (f *Fetcher) Stats() map[string]interface{} { return f.cache.Stats() }

// SubjectList returns every subject offered in the term, memoized for the
// instance's lifetime.
func (f *Fetcher) SubjectList(ctx context.Context) ([]string, error) {
	if subjects, ok := f.cache.Subjects(); ok {
		return subjects, nil
	}

	sc := parse.NewSubjectScanner()
	if err := f.scan(ctx, f.portal, sc); err != nil {
		return nil, fmt.Errorf("fetching subject list: %w", err)
	}

	subjects := sc.Result()
	f.cache.SetSubjects(subjects)

	log.Info().Int("subjects", len(subjects)).Msg("Subject list fetched")
	return subjects, nil
}

// CourseList returns a subject's course numbers, memoized per subject.
func (f *Fetcher) CourseList(ctx context.Context, subject string) ([]string, error) {
	subject = canonical(subject)
	if courses, ok := f.cache.Courses(subject); ok {
		return courses, nil
	}

	sc := parse.NewCourseScanner()
	if err := f.scan(ctx, f.subjectURL(subject), sc); err != nil {
		return nil, fmt.Errorf("fetching course list for %s: %w", subject, err)
	}

	courses := sc.Result()
	f.cache.SetCourses(subject, courses)

	log.Info().
		Str("subject", subject).
		Int("courses", len(courses)).
		Int("skipped_labels", sc.Skipped()).
		Msg("Course list fetched")
	return courses, nil
}

// SectionList returns the CRN keyed sections of one course, memoized per
// subject/course pair.
func (f *Fetcher) SectionList(ctx context.Context, subject, course string) (models.SectionMap, error) {
	subject = canonical(subject)
	if sections, ok := f.cache.Sections(subject, course); ok {
		return sections, nil
	}

	sc := parse.NewSectionScanner()
	if err := f.scan(ctx, f.courseURL(subject, course), sc); err != nil {
		return nil, fmt.Errorf("fetching sections for %s %s: %w", subject, course, err)
	}

	sections := sc.Result()
	f.cache.SetSections(subject, course, sections)

	log.Info().
		Str("subject", subject).
		Str("course", course).
		Int("sections", len(sections)).
		Msg("Section list fetched")
	return sections, nil
}

// FetchOne retrieves exactly one course and wraps it in the nested index
// shape. No subject or course enumeration happens.
func (f *Fetcher) FetchOne(ctx context.Context, subject, course string) (models.ScheduleIndex, error) {
	subject = canonical(subject)
	sections, err := f.SectionList(ctx, subject, course)
	if err != nil {
		return nil, err
	}
	return models.ScheduleIndex{
		subject: models.CourseMap{course: sections},
	}, nil
}

// FetchSubjects retrieves every course and section of the given subjects.
func (f *Fetcher) FetchSubjects(ctx context.Context, subjects []string) (models.ScheduleIndex, error) {
	idx := make(models.ScheduleIndex, len(subjects))

	for _, subject := range subjects {
		subject = canonical(subject)
		courses, err := f.CourseList(ctx, subject)
		if err != nil {
			return nil, err
		}

		idx[subject] = make(models.CourseMap, len(courses))
		for _, course := range courses {
			sections, err := f.SectionList(ctx, subject, course)
			if err != nil {
				return nil, err
			}
			idx[subject][course] = sections
		}
	}

	return idx, nil
}

// FetchAll retrieves the complete schedule index for the term.
func (f *Fetcher) FetchAll(ctx context.Context) (models.ScheduleIndex, error) {
	subjects, err := f.SubjectList(ctx)
	if err != nil {
		return nil, err
	}
	return f.FetchSubjects(ctx, subjects)
}

// Flush clears all three cache levels unconditionally.
func (f *Fetcher) Flush() {
	f.cache.Flush()
}

// scan streams one page through a scanner.
func (f *Fetcher) scan(ctx context.Context, urlStr string, sc parse.Scanner) error {
	body, err := f.transport.Fetch(ctx, urlStr)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := parse.Run(body, sc); err != nil {
		return fmt.Errorf("parsing %s: %w", urlStr, err)
	}
	return nil
}

func (f *Fetcher) subjectURL(subject string) string {
	return f.root + subject + "/"
}

func (f *Fetcher) courseURL(subject, course string) string {
	return f.root + subject + "/" + course + ".html"
}

// canonical normalizes a subject code for URLs and cache keys.
func canonical(subject string) string {
	return strings.ToUpper(strings.TrimSpace(subject))
}
