package parse

// SubjectScanner extracts the flat list of subject codes from a term's
// portal page. Duplicates are kept and order is document order.
type SubjectScanner struct {
	subjects []string
	active   bool
}

// NewSubjectScanner returns a scanner ready for a single parse.
func NewSubjectScanner() *SubjectScanner {
	return &SubjectScanner{}
}

func (s *SubjectScanner) StartTag(name string, attrs map[string]string) {
	s.active = isLabel(name, attrs)
}

func (s *SubjectScanner) Text(data string) {
	if !s.active {
		return
	}
	if text := collapseSpace(data); text != "" {
		s.subjects = append(s.subjects, text)
	}
}

// Result returns the subjects accumulated so far.
func (s *SubjectScanner) Result() []string {
	return s.subjects
}
