package models

// Section is one offered meeting pattern of a course, keyed by its CRN.
// Every field is optional: absent fields were simply not present in the
// source markup. Fields that occur more than once for the same CRN are
// joined with ", " rather than overwritten.
type Section struct {
	Type       string `json:"type,omitempty"`
	Section    string `json:"section,omitempty"`
	Time       string `json:"time,omitempty"`
	Days       string `json:"days,omitempty"`
	Location   string `json:"location,omitempty"`
	Instructor string `json:"instructor,omitempty"`
}

// Section field names as they appear in the schedule pages' column headers
// (with the "ws-" prefix stripped).
const (
	FieldCRN        = "crn"
	FieldType       = "type"
	FieldSection    = "section"
	FieldTime       = "time"
	FieldDays       = "days"
	FieldLocation   = "location"
	FieldInstructor = "instructor"
)

// Append writes value into the named field, joining with ", " when the
// field already holds text. Unknown field names are ignored and reported
// as false.
func (s *Section) Append(field, value string) bool {
	target, ok := s.fieldRef(field)
	if !ok {
		return false
	}
	if *target == "" {
		*target = value
	} else {
		*target += ", " + value
	}
	return true
}

// Field returns the value of the named field.
func (s *Section) Field(field string) (string, bool) {
	target, ok := s.fieldRef(field)
	if !ok {
		return "", false
	}
	return *target, true
}

func (s *Section) fieldRef(field string) (*string, bool) {
	switch field {
	case FieldType:
		return &s.Type, true
	case FieldSection:
		return &s.Section, true
	case FieldTime:
		return &s.Time, true
	case FieldDays:
		return &s.Days, true
	case FieldLocation:
		return &s.Location, true
	case FieldInstructor:
		return &s.Instructor, true
	}
	return nil, false
}

// SectionMap maps a CRN to its section record.
type SectionMap map[int]*Section

// CourseMap maps a course number to its sections.
type CourseMap map[string]SectionMap

// ScheduleIndex is the full nested result: subject -> course -> CRN -> section.
type ScheduleIndex map[string]CourseMap

// Merge folds other into idx, overwriting any overlapping course entries.
func (idx ScheduleIndex) Merge(other ScheduleIndex) {
	for subject, courses := range other {
		if _, ok := idx[subject]; !ok {
			idx[subject] = make(CourseMap, len(courses))
		}
		for course, sections := range courses {
			idx[subject][course] = sections
		}
	}
}
