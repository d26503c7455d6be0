package paramfile

import "strings"

// Reserved KeywordMap keys. They cannot collide with file keywords because
// real keywords match [A-Z][A-Z0-9_]+.
const (
	// KeyPoints holds the joined point-block body lines.
	KeyPoints = "@POINTS"
	// KeySection holds the name of the last section header seen.
	KeySection = "@SECTION"
)

// entryPriority tags how a map entry was produced. Active lines always
// outrank recovered commented-out lines, independent of line order.
type entryPriority int

const (
	priorityCommented entryPriority = iota
	priorityActive
)

// KeywordMap is the transient product of one parse: keyword to raw string
// value, plus the point-block list and the last section name. It is built
// fresh per Parse call and treated as immutable once returned.
type KeywordMap struct {
	values   map[string]string
	priority map[string]entryPriority
	points   []string
	section  string
}

func newKeywordMap() *KeywordMap {
	return &KeywordMap{
		values:   make(map[string]string),
		priority: make(map[string]entryPriority),
	}
}

// set inserts a keyword value with the given priority. An active insert
// always wins; a commented insert is accepted only when the keyword has no
// entry yet, so an active line anywhere in the text beats a commented one
// regardless of which comes first.
func (m *KeywordMap) set(key, value string, p entryPriority) {
	if p == priorityActive {
		m.values[key] = value
		m.priority[key] = p
		return
	}
	if _, exists := m.values[key]; !exists {
		m.values[key] = value
		m.priority[key] = p
	}
}

// finalize attaches the reserved entries once all lines are consumed.
func (m *KeywordMap) finalize() {
	if len(m.points) > 0 {
		m.values[KeyPoints] = strings.Join(m.points, "\n")
	}
	if m.section != "" {
		m.values[KeySection] = m.section
	}
}

// Get returns the raw value for a keyword.
func (m *KeywordMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether a keyword is present, active or recovered.
func (m *KeywordMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Points returns the ordered point-block body lines.
func (m *KeywordMap) Points() []string {
	return m.points
}

// Section returns the last section header name seen, or "".
func (m *KeywordMap) Section() string {
	return m.section
}

// Len returns the number of keyword entries, including reserved ones.
func (m *KeywordMap) Len() int {
	return len(m.values)
}

// buildKeywordMap consumes the classified lines of one input in order and
// accumulates the keyword map. Pure: no effect beyond the returned map.
func buildKeywordMap(lines []classified) *KeywordMap {
	m := newKeywordMap()
	for _, line := range lines {
		switch line.kind {
		case lineActiveParam:
			m.set(line.key, line.value, priorityActive)
		case lineCommentedParam:
			m.set(line.key, line.value, priorityCommented)
		case lineBlockBody:
			m.points = append(m.points, line.value)
		case lineSection:
			m.section = line.key
		}
	}
	m.finalize()
	return m
}
