package parse

import (
	"strconv"
	"strings"

	"github.com/campus-tools/schedfetch/pkg/models"
)

// fieldState identifies which recognized column, if any, the most recent
// start tag opened.
type fieldState int

const (
	stateNone fieldState = iota
	stateCRN
	stateType
	stateSection
	stateTime
	stateDays
	stateLocation
	stateInstructor
)

// Section tables mark data cells with this class and name their columns
// through the headers attribute.
const (
	cellTag      = "td"
	dataRowClass = "ws-row"
	breakTag     = "br"
	headerPrefix = "ws-"
)

var headerStates = map[string]fieldState{
	headerPrefix + models.FieldCRN:        stateCRN,
	headerPrefix + models.FieldType:       stateType,
	headerPrefix + models.FieldSection:    stateSection,
	headerPrefix + models.FieldTime:       stateTime,
	headerPrefix + models.FieldDays:       stateDays,
	headerPrefix + models.FieldLocation:   stateLocation,
	headerPrefix + models.FieldInstructor: stateInstructor,
}

var stateFields = map[fieldState]string{
	stateType:       models.FieldType,
	stateSection:    models.FieldSection,
	stateTime:       models.FieldTime,
	stateDays:       models.FieldDays,
	stateLocation:   models.FieldLocation,
	stateInstructor: models.FieldInstructor,
}

// SectionScanner extracts the CRN -> Section mapping from a course's
// section listing page. It is the most stateful of the scanners: besides
// the active-field marker it tracks the CRN of the row being filled, and
// drops field data whenever no valid CRN is in scope.
type SectionScanner struct {
	sections models.SectionMap
	state    fieldState
	crn      int
	haveCRN  bool
}

// NewSectionScanner returns a scanner ready for a single parse.
func NewSectionScanner() *SectionScanner {
	return &SectionScanner{sections: make(models.SectionMap)}
}

// nextState is the FSM transition function. A line break inside the
// location column is a no-op: the pages hard-wrap multi-line addresses and
// the pieces must be reassembled into one value. Any other unrecognized
// start tag clears the active field.
func nextState(cur fieldState, name string, attrs map[string]string) fieldState {
	if name == breakTag && cur == stateLocation {
		return cur
	}
	if name == cellTag && strings.TrimSpace(attrs["class"]) == dataRowClass {
		if st, ok := headerStates[attrs["headers"]]; ok {
			return st
		}
	}
	return stateNone
}

func (s *SectionScanner) StartTag(name string, attrs map[string]string) {
	s.state = nextState(s.state, name, attrs)
}

func (s *SectionScanner) Text(data string) {
	switch {
	case s.state == stateCRN:
		crn, err := strconv.Atoi(strings.TrimSpace(data))
		if err != nil {
			// Not a CRN: suppress field data until a valid one reappears.
			s.haveCRN = false
			return
		}
		s.crn = crn
		s.haveCRN = true
		s.sections[crn] = &models.Section{}
	case s.haveCRN && s.state != stateNone:
		text := collapseSpace(data)
		if text == "" {
			return
		}
		s.sections[s.crn].Append(stateFields[s.state], text)
	}
}

// Result returns the CRN -> Section mapping accumulated so far.
func (s *SectionScanner) Result() models.SectionMap {
	return s.sections
}
