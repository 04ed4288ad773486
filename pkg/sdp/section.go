package sdp

import (
	"fmt"

	"github.com/bluenviron/sdpgrammar/pkg/grammar"
	"github.com/bluenviron/sdpgrammar/pkg/liberrors"
)

// SessionSection is the session-level part of a document.
// Optional lines are nil when absent.
type SessionSection struct {
	VersionLine               *VersionLine
	OriginatorLine            *OriginatorLine
	SessionNameLine           *SessionNameLine
	SessionInformationLine    *SessionInformationLine
	URILine                   *URILine
	EmailAddressLine          *EmailAddressLine
	PhoneNumberLine           *PhoneNumberLine
	ConnectionInformationLine *ConnectionInformationLine
	BandwidthInformationLines BandwidthInformationLines
	TimeDescriptionLines      TimeDescriptionLines
	AttributeLines            AttributeLines
}

func (s *SessionSection) slots() []namedSlot {
	return []namedSlot{
		{grammar.VersionLine, childSlot(&s.VersionLine)},
		{grammar.OriginatorLine, childSlot(&s.OriginatorLine)},
		{grammar.SessionNameLine, childSlot(&s.SessionNameLine)},
		{grammar.SessionInformationLine, childSlot(&s.SessionInformationLine)},
		{grammar.URILine, childSlot(&s.URILine)},
		{grammar.EmailAddressLine, childSlot(&s.EmailAddressLine)},
		{grammar.PhoneNumberLine, childSlot(&s.PhoneNumberLine)},
		{grammar.ConnectionInformationLine, childSlot(&s.ConnectionInformationLine)},
		{grammar.BandwidthInformationLines, childrenSlot(&s.BandwidthInformationLines)},
		{grammar.TimeDescriptionLines, childrenSlot(&s.TimeDescriptionLines)},
		{grammar.ApplicationLines, childrenSlot(&s.AttributeLines)},
	}
}

// Has returns whether the section contains the field with the given name.
func (s *SessionSection) Has(name grammar.Name) bool {
	return hasField(s, name)
}

// MediaSection is the part of a document that describes a media stream.
// Optional lines are nil when absent.
type MediaSection struct {
	MediaDescriptionLine      *MediaDescriptionLine
	SessionInformationLine    *SessionInformationLine
	ConnectionInformationLine *ConnectionInformationLine
	BandwidthInformationLines BandwidthInformationLines
	AttributeLines            AttributeLines
}

func (m *MediaSection) slots() []namedSlot {
	return []namedSlot{
		{grammar.MediaDescriptionLine, childSlot(&m.MediaDescriptionLine)},
		{grammar.SessionInformationLine, childSlot(&m.SessionInformationLine)},
		{grammar.ConnectionInformationLine, childSlot(&m.ConnectionInformationLine)},
		{grammar.BandwidthInformationLines, childrenSlot(&m.BandwidthInformationLines)},
		{grammar.ApplicationLines, childrenSlot(&m.AttributeLines)},
	}
}

func (m *MediaSection) validate(name grammar.Name) error {
	if m.MediaDescriptionLine == nil {
		return liberrors.ErrStructuralInvariant{
			Node:   string(name),
			Reason: fmt.Sprintf("missing '%s'", grammar.MediaDescriptionLine),
		}
	}
	return nil
}

// Has returns whether the section contains the field with the given name.
func (m *MediaSection) Has(name grammar.Name) bool {
	return hasField(m, name)
}

// MediaSections is a sequence of media sections.
type MediaSections []*MediaSection
