package paramfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected classified
	}{
		{
			name:     "blank line",
			line:     "   \t ",
			expected: classified{kind: lineBlank},
		},
		{
			name:     "decorative rule",
			line:     "!----------------------------------------",
			expected: classified{kind: lineBlank},
		},
		{
			name:     "decorative rule with equals",
			line:     "!======= ======",
			expected: classified{kind: lineBlank},
		},
		{
			name:     "bare comment marker",
			line:     "!",
			expected: classified{kind: lineBlank},
		},
		{
			name:     "section header",
			line:     "#GENERAL",
			expected: classified{kind: lineSection, key: "GENERAL"},
		},
		{
			name:     "section header with trailing whitespace",
			line:     "#FIELDS  ",
			expected: classified{kind: lineSection, key: "FIELDS"},
		},
		{
			name:     "active parameter",
			line:     "RUN_NAME my run",
			expected: classified{kind: lineActiveParam, key: "RUN_NAME", value: "my run"},
		},
		{
			name:     "active parameter with inline comment",
			line:     "KP 3.5 ! quiet conditions",
			expected: classified{kind: lineActiveParam, key: "KP", value: "3.5"},
		},
		{
			name:     "commented-out parameter",
			line:     "! SURFACE_SCALE 1.2",
			expected: classified{kind: lineCommentedParam, key: "SURFACE_SCALE", value: "1.2"},
		},
		{
			name:     "commented-out parameter with inline comment",
			line:     "!  XMIN -15 ! advanced",
			expected: classified{kind: lineCommentedParam, key: "XMIN", value: "-15"},
		},
		{
			name:     "comment with short keyword stays prose",
			line:     "! KP 3.5",
			expected: classified{kind: lineComment},
		},
		{
			name:     "comment with empty value stays prose",
			line:     "! DURATION",
			expected: classified{kind: lineComment},
		},
		{
			name:     "descriptive comment",
			line:     "! set the solar wind pressure below",
			expected: classified{kind: lineComment},
		},
		{
			name:     "comment without whitespace stays prose",
			line:     "!XMIN -15",
			expected: classified{kind: lineComment},
		},
		{
			name:     "malformed line is ignored",
			line:     "lowercase junk here",
			expected: classified{kind: lineIgnored},
		},
		{
			name:     "single-letter token is not a keyword",
			line:     "X 1.0",
			expected: classified{kind: lineIgnored},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var c classifier
			assert.Equal(t, tc.expected, c.classify(tc.line))
		})
	}
}

func TestClassifyPointBlock(t *testing.T) {
	var c classifier

	assert.Equal(t, classified{kind: lineBlockBegin}, c.classify("#START_POINTS"))
	assert.True(t, c.inBlock)

	assert.Equal(t, classified{kind: lineBlockBody, value: "1.0 2.0 3.0"},
		c.classify("POINT 1.0 2.0 3.0"))
	assert.Equal(t, classified{kind: lineBlockBody, value: "4.0 5.0 6.0"},
		c.classify("  4.0 5.0 6.0"), "per-item keyword is optional")
	assert.Equal(t, classified{kind: lineBlank}, c.classify(""))
	assert.Equal(t, classified{kind: lineComment}, c.classify("! a note inside the block"))
	assert.Equal(t, classified{kind: lineBlockBody, value: "7 8 9"},
		c.classify("point 7 8 9 ! trailing"), "keyword match is case-insensitive")

	assert.Equal(t, classified{kind: lineBlockEnd}, c.classify("#END_POINTS"))
	assert.False(t, c.inBlock)

	assert.Equal(t, classified{kind: lineSection, key: "OUTPUT"}, c.classify("#OUTPUT"),
		"section headers classify normally again after the block")
}
