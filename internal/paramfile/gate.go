package paramfile

import (
	"fmt"
	"strings"
)

// sectionNames are the section headers a real AMPS_PARAM.in carries. The
// gate only needs one of them to accept; everything else the file might
// contain is tolerated downstream.
var sectionNames = []string{"GENERAL", "FIELDS", "DOMAIN", "TIME", "SPECTRUM", "OUTPUT"}

// SanityCheck rejects text that is not this file format at all, before any
// parsing work. It accepts iff at least one recognized section header occurs
// (case-insensitive). A nil return means pass; the returned error carries
// the user-facing rejection message and implies no state was touched.
func SanityCheck(text string) error {
	lower := strings.ToLower(text)
	for _, name := range sectionNames {
		if strings.Contains(lower, sectionMark+strings.ToLower(name)) {
			return nil
		}
	}
	return fmt.Errorf("not an AMPS_PARAM.in file: no recognized section header (%s%s, %s%s, ...) found",
		sectionMark, sectionNames[0], sectionMark, sectionNames[1])
}
