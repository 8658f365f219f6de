package parse

import (
	"strings"
	"testing"
	"testing/iotest"
)

func cell(header, text string) string {
	return `<td class="ws-row" headers="` + header + `">` + text + `</td>`
}

func TestSectionScanner_SingleRow(t *testing.T) {
	page := `<table><tr>` +
		cell("ws-crn", "31260") +
		cell("ws-type", "lecture- discussion") +
		cell("ws-section", "CS") +
		cell("ws-time", "04:00 PM - 04:50 PM") +
		cell("ws-days", "W") +
		cell("ws-location", "room 1105") +
		cell("ws-instructor", "Woodley, M") +
		`</tr></table>`

	sc := NewSectionScanner()
	if err := RunString(page, sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sections := sc.Result()
	sec, ok := sections[31260]
	if !ok {
		t.Fatalf("expected CRN 31260, got %v", sections)
	}
	if sec.Type != "lecture- discussion" {
		t.Errorf("type = %q", sec.Type)
	}
	if sec.Section != "CS" {
		t.Errorf("section = %q", sec.Section)
	}
	if sec.Time != "04:00 PM - 04:50 PM" {
		t.Errorf("time = %q", sec.Time)
	}
	if sec.Days != "W" {
		t.Errorf("days = %q", sec.Days)
	}
	if sec.Location != "room 1105" {
		t.Errorf("location = %q", sec.Location)
	}
	if sec.Instructor != "Woodley, M" {
		t.Errorf("instructor = %q", sec.Instructor)
	}
}

func TestSectionScanner_InvalidCRNSuppressesFields(t *testing.T) {
	page := cell("ws-crn", "CRN") + // header row text, not a number
		cell("ws-days", "MWF") +
		cell("ws-crn", "40001") +
		cell("ws-days", "TR")

	sc := NewSectionScanner()
	if err := RunString(page, sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sections := sc.Result()
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[40001].Days != "TR" {
		t.Errorf("days = %q, want TR", sections[40001].Days)
	}
}

func TestSectionScanner_RepeatedFieldJoinsWithComma(t *testing.T) {
	page := cell("ws-crn", "50000") +
		cell("ws-instructor", "Smith, A") +
		cell("ws-instructor", "Jones, B")

	sc := NewSectionScanner()
	if err := RunString(page, sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	got := sc.Result()[50000].Instructor
	if got != "Smith, A, Jones, B" {
		t.Errorf("instructor = %q, want %q", got, "Smith, A, Jones, B")
	}
}

func TestSectionScanner_LineBreakInLocation(t *testing.T) {
	page := cell("ws-crn", "60000") +
		`<td class="ws-row" headers="ws-location">room 1105<br>Siebel Center for Comp Sci</td>`

	sc := NewSectionScanner()
	if err := RunString(page, sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	got := sc.Result()[60000].Location
	if got != "room 1105, Siebel Center for Comp Sci" {
		t.Errorf("location = %q", got)
	}
}

func TestSectionScanner_LineBreakOutsideLocationClearsState(t *testing.T) {
	page := cell("ws-crn", "60001") +
		`<td class="ws-row" headers="ws-instructor">Smith, A<br>dropped text</td>`

	sc := NewSectionScanner()
	if err := RunString(page, sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	got := sc.Result()[60001].Instructor
	if got != "Smith, A" {
		t.Errorf("instructor = %q, want %q", got, "Smith, A")
	}
}

func TestSectionScanner_WhitespaceCollapsed(t *testing.T) {
	page := cell("ws-crn", "70000") +
		cell("ws-time", "  09:00 AM \t-\n  09:50 AM  ")

	sc := NewSectionScanner()
	if err := RunString(page, sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	got := sc.Result()[70000].Time
	if got != "09:00 AM - 09:50 AM" {
		t.Errorf("time = %q", got)
	}
}

func TestSectionScanner_IgnoresNonDataCells(t *testing.T) {
	// Header cells carry the same headers attribute but not the data-row
	// class; their text must never be attributed.
	page := `<td headers="ws-crn">80000</td>` +
		`<td class="other" headers="ws-crn">80001</td>`

	sc := NewSectionScanner()
	if err := RunString(page, sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sc.Result()) != 0 {
		t.Fatalf("expected no sections, got %v", sc.Result())
	}
}

func TestSectionScanner_DuplicateCRNOverwrites(t *testing.T) {
	page := cell("ws-crn", "90000") + cell("ws-days", "M") +
		cell("ws-crn", "90000") + cell("ws-days", "F")

	sc := NewSectionScanner()
	if err := RunString(page, sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if got := sc.Result()[90000].Days; got != "F" {
		t.Errorf("days = %q, want F (later row wins)", got)
	}
}

func TestSectionScanner_ChunkedInput(t *testing.T) {
	// One byte at a time: tags and attributes arrive split mid-token.
	page := cell("ws-crn", "31260") + cell("ws-days", "MWF")

	sc := NewSectionScanner()
	if err := Run(iotest.OneByteReader(strings.NewReader(page)), sc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sec, ok := sc.Result()[31260]
	if !ok || sec.Days != "MWF" {
		t.Fatalf("got %v, want CRN 31260 with days MWF", sc.Result())
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		name  string
		cur   fieldState
		tag   string
		attrs map[string]string
		want  fieldState
	}{
		{"data cell enters field", stateNone, "td",
			map[string]string{"class": "ws-row", "headers": "ws-crn"}, stateCRN},
		{"padded class accepted", stateNone, "td",
			map[string]string{"class": " ws-row ", "headers": "ws-days"}, stateDays},
		{"unknown header clears", stateDays, "td",
			map[string]string{"class": "ws-row", "headers": "ws-credit"}, stateNone},
		{"missing attributes tolerated", stateTime, "td", map[string]string{}, stateNone},
		{"stray tag clears", stateInstructor, "span", map[string]string{}, stateNone},
		{"br keeps location", stateLocation, "br", map[string]string{}, stateLocation},
		{"br clears other fields", stateTime, "br", map[string]string{}, stateNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextState(tt.cur, tt.tag, tt.attrs); got != tt.want {
				t.Errorf("nextState(%v, %q) = %v, want %v", tt.cur, tt.tag, got, tt.want)
			}
		})
	}
}
