// Package cache memoizes fetch results so repeated lookups for the same
// term never hit the network twice.
package cache

import (
	"sync"

	"github.com/campus-tools/schedfetch/pkg/models"
	"github.com/rs/zerolog/log"
)

// ScheduleCache holds the three memo levels of a fetcher instance: the
// subject list, course lists per subject, and section maps per
// subject/course pair. Entries never expire; the cache grows monotonically
// until Flush. All methods are safe for concurrent use.
type ScheduleCache struct {
	mu           sync.RWMutex
	subjects     []string
	haveSubjects bool
	courses      map[string][]string
	sections     map[string]map[string]models.SectionMap
	hits         uint64
	misses       uint64
}

// New creates an empty ScheduleCache.
func New() *ScheduleCache {
	return &ScheduleCache{
		courses:  make(map[string][]string),
		sections: make(map[string]map[string]models.SectionMap),
	}
}

// Subjects returns the memoized subject list, if present.
func (c *ScheduleCache) Subjects() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.haveSubjects {
		c.misses++
		return nil, false
	}
	c.hits++
	return c.subjects, true
}

// SetSubjects stores the subject list. An empty (even nil) list is a valid
// result and is memoized like any other.
func (c *ScheduleCache) SetSubjects(subjects []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subjects = subjects
	c.haveSubjects = true
	log.Debug().Int("subjects", len(subjects)).Msg("Cached subject list")
}

// Courses returns the memoized course list for a subject, if present.
func (c *ScheduleCache) Courses(subject string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	courses, ok := c.courses[subject]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return courses, true
}

// SetCourses stores the course list for a subject.
func (c *ScheduleCache) SetCourses(subject string, courses []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.courses[subject] = courses
	log.Debug().Str("subject", subject).Int("courses", len(courses)).Msg("Cached course list")
}

// Sections returns the memoized section map for a subject/course pair, if
// present.
func (c *ScheduleCache) Sections(subject, course string) (models.SectionMap, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sections, ok := c.sections[subject][course]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return sections, true
}

// SetSections stores the section map for a subject/course pair.
func (c *ScheduleCache) SetSections(subject, course string, sections models.SectionMap) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sections[subject] == nil {
		c.sections[subject] = make(map[string]models.SectionMap)
	}
	c.sections[subject][course] = sections
	log.Debug().
		Str("subject", subject).
		Str("course", course).
		Int("sections", len(sections)).
		Msg("Cached section list")
}

// Flush drops all three levels unconditionally. Counters survive so Stats
// still reflects the instance's lifetime.
func (c *ScheduleCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subjects = nil
	c.haveSubjects = false
	c.courses = make(map[string][]string)
	c.sections = make(map[string]map[string]models.SectionMap)

	log.Debug().Msg("Cache flushed")
}

// Stats returns cache statistics including hit rate.
func (c *ScheduleCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := len(c.courses)
	for _, courses := range c.sections {
		entries += len(courses)
	}
	if c.haveSubjects {
		entries++
	}

	hitRate := 0.0
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total) * 100
	}

	return map[string]interface{}{
		"entries":  entries,
		"hits":     c.hits,
		"misses":   c.misses,
		"hit_rate": hitRate,
	}
}
