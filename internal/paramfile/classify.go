package paramfile

import (
	"regexp"
	"strings"
)

// Grammar markers. The serializer and the classifier must agree on these.
const (
	commentMark  = "!"
	sectionMark  = "#"
	blockBegin   = "#START_POINTS"
	blockEnd     = "#END_POINTS"
	pointKeyword = "POINT"
)

// lineKind tags the classification of one raw input line.
type lineKind int

const (
	lineBlank lineKind = iota // whitespace-only or decorative rule, dropped
	lineSection
	lineBlockBegin
	lineBlockEnd
	lineBlockBody
	lineCommentedParam
	lineActiveParam
	lineComment // descriptive text, dropped
	lineIgnored // malformed, tolerated for forward compatibility
)

// classified is the tagged result for a single line.
type classified struct {
	kind  lineKind
	key   string // keyword for param lines, section name for headers
	value string // raw value for param lines, body text for block lines
}

var (
	keywordRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]+$`)
	sectionRe = regexp.MustCompile(`^#([A-Za-z0-9_]+)\s*$`)
)

// classifier walks lines one at a time, carrying the point-block mode flag.
type classifier struct {
	inBlock bool
}

// classify tags a single line. Priority follows the grammar: block markers
// and block mode first, then blank/decorative, section headers, commented
// parameters, pure comments, active parameters, and finally anything
// unrecognized is ignored.
func (c *classifier) classify(line string) classified {
	trimmed := strings.TrimSpace(line)

	if strings.EqualFold(trimmed, blockBegin) {
		c.inBlock = true
		return classified{kind: lineBlockBegin}
	}
	if strings.EqualFold(trimmed, blockEnd) {
		c.inBlock = false
		return classified{kind: lineBlockEnd}
	}
	if c.inBlock {
		return classifyBlockBody(trimmed)
	}

	if trimmed == "" {
		return classified{kind: lineBlank}
	}

	if strings.HasPrefix(trimmed, commentMark) {
		rest := trimmed[len(commentMark):]
		if isDecorative(rest) {
			return classified{kind: lineBlank}
		}
		if key, value, ok := commentedParam(rest); ok {
			return classified{kind: lineCommentedParam, key: key, value: value}
		}
		return classified{kind: lineComment}
	}

	if m := sectionRe.FindStringSubmatch(trimmed); m != nil {
		return classified{kind: lineSection, key: m[1]}
	}

	if key, value, ok := activeParam(trimmed); ok {
		return classified{kind: lineActiveParam, key: key, value: value}
	}

	return classified{kind: lineIgnored}
}

// classifyBlockBody handles lines between the point-block markers. Blank
// and comment lines inside the block are skipped; a leading per-item POINT
// keyword is stripped before storage.
func classifyBlockBody(trimmed string) classified {
	if trimmed == "" {
		return classified{kind: lineBlank}
	}
	if strings.HasPrefix(trimmed, commentMark) {
		return classified{kind: lineComment}
	}
	body := stripInlineComment(trimmed)
	if fields := strings.Fields(body); len(fields) > 0 && strings.EqualFold(fields[0], pointKeyword) {
		body = strings.TrimSpace(strings.TrimPrefix(body, fields[0]))
	}
	if body == "" {
		return classified{kind: lineBlank}
	}
	return classified{kind: lineBlockBody, value: body}
}

// commentedParam recovers a disabled advanced parameter from the text after
// the comment marker. The keyword must follow whitespace, look like a
// keyword, and be longer than two characters; the value must be non-empty.
// Anything else is descriptive prose, not data.
func commentedParam(rest string) (key, value string, ok bool) {
	if rest == "" || !isSpace(rest[0]) {
		return "", "", false
	}
	key, value, ok = activeParam(strings.TrimSpace(rest))
	if !ok || len(key) <= 2 || value == "" {
		return "", "", false
	}
	return key, value, true
}

// activeParam splits a `KEYWORD value` line, stripping any inline comment.
func activeParam(line string) (key, value string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !keywordRe.MatchString(fields[0]) {
		return "", "", false
	}
	key = fields[0]
	value = strings.TrimSpace(stripInlineComment(strings.TrimPrefix(line, key)))
	return key, value, true
}

// stripInlineComment drops everything from the comment marker to end of line.
func stripInlineComment(s string) string {
	if i := strings.Index(s, commentMark); i >= 0 {
		return s[:i]
	}
	return s
}

// isDecorative reports whether a comment body is purely a horizontal rule.
func isDecorative(rest string) bool {
	for _, r := range rest {
		switch r {
		case '!', '-', '=', '*', '~', '_', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
