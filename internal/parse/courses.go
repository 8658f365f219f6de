package parse

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// CourseScanner extracts course numbers from a subject's listing page.
// Labels read "SUBJECT NUMBER"; only the second token is kept. Labels with
// fewer than two tokens are skipped and counted rather than treated as an
// error, since an occasional malformed label should not abort the page.
type CourseScanner struct {
	courses []string
	skipped int
	active  bool
}

// NewCourseScanner returns a scanner ready for a single parse.
func NewCourseScanner() *CourseScanner {
	return &CourseScanner{}
}

func (s *CourseScanner) StartTag(name string, attrs map[string]string) {
	s.active = isLabel(name, attrs)
}

func (s *CourseScanner) Text(data string) {
	if !s.active {
		return
	}
	text := collapseSpace(data)
	if text == "" {
		return
	}
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		s.skipped++
		log.Debug().Str("label", text).Msg("Skipping malformed course label")
		return
	}
	s.courses = append(s.courses, tokens[1])
}

// Result returns the course numbers accumulated so far, in document order.
func (s *CourseScanner) Result() []string {
	return s.courses
}

// Skipped reports how many malformed labels were dropped.
func (s *CourseScanner) Skipped() int {
	return s.skipped
}
