package sdp

import (
	"github.com/bluenviron/sdpgrammar/pkg/grammar"
)

// VersionLine is a v= line.
type VersionLine struct {
	VersionNumber string
}

func (l *VersionLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.VersionNumber, scalar{&l.VersionNumber}},
	}
}

// OriginatorLine is a o= line.
type OriginatorLine struct {
	Username       string
	SessionID      string
	SessionVersion string
	NetType        string
	AddrType       string
	IPAddr         string
}

func (l *OriginatorLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.Username, scalar{&l.Username}},
		{grammar.SessionID, scalar{&l.SessionID}},
		{grammar.SessionVersion, scalar{&l.SessionVersion}},
		{grammar.NetType, scalar{&l.NetType}},
		{grammar.AddrType, scalar{&l.AddrType}},
		{grammar.IPAddr, scalar{&l.IPAddr}},
	}
}

// SessionNameLine is a s= line.
type SessionNameLine struct {
	SessionName string
}

func (l *SessionNameLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.SessionName, scalar{&l.SessionName}},
	}
}

// SessionInformationLine is a i= line.
type SessionInformationLine struct {
	SessionInformation string
}

func (l *SessionInformationLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.SessionInformation, scalar{&l.SessionInformation}},
	}
}

// URILine is a u= line.
type URILine struct {
	URI string
}

func (l *URILine) slots() []namedSlot {
	return []namedSlot{
		{grammar.URI, scalar{&l.URI}},
	}
}

// EmailAddressLine is a e= line.
type EmailAddressLine struct {
	EmailAddress string
}

func (l *EmailAddressLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.EmailAddress, scalar{&l.EmailAddress}},
	}
}

// PhoneNumberLine is a p= line.
type PhoneNumberLine struct {
	PhoneNumber string
}

func (l *PhoneNumberLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.PhoneNumber, scalar{&l.PhoneNumber}},
	}
}

// ConnectionInformationLine is a c= line.
type ConnectionInformationLine struct {
	NetType  string
	AddrType string
	IPAddr   string
}

func (l *ConnectionInformationLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.NetType, scalar{&l.NetType}},
		{grammar.AddrType, scalar{&l.AddrType}},
		{grammar.IPAddr, scalar{&l.IPAddr}},
	}
}

// BandwidthInformationLine is a b= line.
type BandwidthInformationLine struct {
	BWType string
	BW     string
}

func (l *BandwidthInformationLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.BWType, scalar{&l.BWType}},
		{grammar.BW, scalar{&l.BW}},
	}
}

// BandwidthInformationLines is a sequence of b= lines.
type BandwidthInformationLines []*BandwidthInformationLine

// TimeDescriptionLine is a t= line.
type TimeDescriptionLine struct {
	StartTime string
	StopTime  string
}

func (l *TimeDescriptionLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.StartTime, scalar{&l.StartTime}},
		{grammar.StopTime, scalar{&l.StopTime}},
	}
}

// TimeDescriptionLines is a sequence of t= lines.
type TimeDescriptionLines []*TimeDescriptionLine

// MediaDescriptionLine is a m= line.
type MediaDescriptionLine struct {
	MediaType string
	Port      string
	Proto     string

	// payload formats, in the order in which they appear.
	Formats []string
}

func (l *MediaDescriptionLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.MediaType, scalar{&l.MediaType}},
		{grammar.Port, scalar{&l.Port}},
		{grammar.Proto, scalar{&l.Proto}},
		{grammar.Formats, list{&l.Formats}},
	}
}
