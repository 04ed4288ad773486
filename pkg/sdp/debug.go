package sdp

import (
	"fmt"
	"strings"

	"github.com/bluenviron/sdpgrammar/pkg/grammar"
)

const (
	debugIndent        = "  "
	debugListSeparator = ", "
)

func writeDebug(b *strings.Builder, prefix string, fs grammar.Fields) {
	for _, f := range fs {
		switch f.Kind {
		case grammar.KindScalar:
			fmt.Fprintf(b, "%s%s: %s\n", prefix, f.Name, f.Value)

		case grammar.KindList:
			fmt.Fprintf(b, "%s%s: %s\n", prefix, f.Name, strings.Join(f.Values, debugListSeparator))

		case grammar.KindGroup:
			fmt.Fprintf(b, "%s%s:\n", prefix, f.Name)
			writeDebug(b, prefix+debugIndent, f.Group)

		case grammar.KindGroupList:
			item := "line"
			if f.Name == grammar.MediaSections {
				item = "section"
			}

			fmt.Fprintf(b, "%s%s:\n", prefix, f.Name)
			for i, g := range f.Groups {
				fmt.Fprintf(b, "%s%s %d:\n", prefix+debugIndent, item, i)
				writeDebug(b, prefix+debugIndent+debugIndent, g)
			}
		}
	}
}

func debugString(n node) string {
	var b strings.Builder
	writeDebug(&b, "", nodeFields(n))
	return b.String()
}

// DebugString returns a human-readable representation of the document.
// Each field is printed on its own line, nested fields are indented.
func (d *Document) DebugString() string {
	return debugString(d)
}

// DebugString returns a human-readable representation of the section.
func (s *SessionSection) DebugString() string {
	return debugString(s)
}

// DebugString returns a human-readable representation of the section.
func (m *MediaSection) DebugString() string {
	return debugString(m)
}

// DebugString returns a human-readable representation of the line.
func (l *VersionLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *OriginatorLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *SessionNameLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *SessionInformationLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *URILine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *EmailAddressLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *PhoneNumberLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *ConnectionInformationLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *BandwidthInformationLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *TimeDescriptionLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *MediaDescriptionLine) DebugString() string { return debugString(l) }

// DebugString returns a human-readable representation of the line.
func (l *AttributeLine) DebugString() string { return debugString(l) }
