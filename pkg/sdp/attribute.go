package sdp

import (
	"fmt"

	"github.com/bluenviron/sdpgrammar/pkg/grammar"
	"github.com/bluenviron/sdpgrammar/pkg/liberrors"
)

// AttributeKind is the kind of an attribute.
type AttributeKind int

// attribute kinds.
const (
	AttributeKindDirection AttributeKind = iota
	AttributeKindRTCP
	AttributeKindICEUfrag
	AttributeKindICEPwd
	AttributeKindGroup
	AttributeKindMID
	AttributeKindRTPMap
	AttributeKindRTCPMux
	AttributeKindGeneric
)

var attributeKindNames = map[AttributeKind]grammar.Name{
	AttributeKindDirection: grammar.DirectionApplicationLine,
	AttributeKindRTCP:      grammar.RTCPApplicationLine,
	AttributeKindICEUfrag:  grammar.ICEUfragApplicationLine,
	AttributeKindICEPwd:    grammar.ICEPwdApplicationLine,
	AttributeKindGroup:     grammar.GroupApplicationLine,
	AttributeKindMID:       grammar.MIDApplicationLine,
	AttributeKindRTPMap:    grammar.RTPMapApplicationLine,
	AttributeKindRTCPMux:   grammar.RTCPMuxApplicationLine,
	AttributeKindGeneric:   grammar.GenericApplicationLine,
}

// String implements fmt.Stringer.
func (k AttributeKind) String() string {
	if n, ok := attributeKindNames[k]; ok {
		return string(n)
	}
	return fmt.Sprintf("unknown (%d)", int(k))
}

// Attribute is the value of an attribute line.
// It is one of DirectionAttribute, RTCPAttribute, ICEUfragAttribute,
// ICEPwdAttribute, GroupAttribute, MIDAttribute, RTPMapAttribute,
// RTCPMuxAttribute or GenericAttribute.
type Attribute interface {
	Kind() AttributeKind
	node
	marshal() (key string, value string)
}

// DirectionAttribute is a sendonly, sendrecv or recvonly attribute.
type DirectionAttribute struct {
	Direction string
}

// Kind implements Attribute.
func (*DirectionAttribute) Kind() AttributeKind {
	return AttributeKindDirection
}

func (a *DirectionAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.Direction, scalar{&a.Direction}},
	}
}

// RTCPAttribute is a rtcp attribute.
type RTCPAttribute struct {
	Port     string
	NetType  *string
	AddrType *string
	IPAddr   *string
}

// Kind implements Attribute.
func (*RTCPAttribute) Kind() AttributeKind {
	return AttributeKindRTCP
}

func (a *RTCPAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.Port, scalar{&a.Port}},
		{grammar.NetType, optional{&a.NetType}},
		{grammar.AddrType, optional{&a.AddrType}},
		{grammar.IPAddr, optional{&a.IPAddr}},
	}
}

// ICEUfragAttribute is a ice-ufrag attribute.
type ICEUfragAttribute struct {
	Username string
}

// Kind implements Attribute.
func (*ICEUfragAttribute) Kind() AttributeKind {
	return AttributeKindICEUfrag
}

func (a *ICEUfragAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.Username, scalar{&a.Username}},
	}
}

// ICEPwdAttribute is a ice-pwd attribute.
type ICEPwdAttribute struct {
	Password string
}

// Kind implements Attribute.
func (*ICEPwdAttribute) Kind() AttributeKind {
	return AttributeKindICEPwd
}

func (a *ICEPwdAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.Password, scalar{&a.Password}},
	}
}

// GroupAttribute is a group attribute.
type GroupAttribute struct {
	Purpose string
	IDs     []string
}

// Kind implements Attribute.
func (*GroupAttribute) Kind() AttributeKind {
	return AttributeKindGroup
}

func (a *GroupAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.Purpose, scalar{&a.Purpose}},
		{grammar.IDs, list{&a.IDs}},
	}
}

// MIDAttribute is a mid attribute.
type MIDAttribute struct {
	ID string
}

// Kind implements Attribute.
func (*MIDAttribute) Kind() AttributeKind {
	return AttributeKindMID
}

func (a *MIDAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.ID, scalar{&a.ID}},
	}
}

// RTPMapCodecInfo is the codec part of a rtpmap attribute.
type RTPMapCodecInfo struct {
	EncodingName       string
	ClockRate          string
	EncodingParameters *string
}

func (c *RTPMapCodecInfo) slots() []namedSlot {
	return []namedSlot{
		{grammar.EncodingName, scalar{&c.EncodingName}},
		{grammar.ClockRate, scalar{&c.ClockRate}},
		{grammar.EncodingParameters, optional{&c.EncodingParameters}},
	}
}

// RTPMapAttribute is a rtpmap attribute.
type RTPMapAttribute struct {
	PT        string
	CodecInfo *RTPMapCodecInfo
}

// Kind implements Attribute.
func (*RTPMapAttribute) Kind() AttributeKind {
	return AttributeKindRTPMap
}

func (a *RTPMapAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.PT, scalar{&a.PT}},
		{grammar.RTPMapCodecInfo, childSlot(&a.CodecInfo)},
	}
}

func (a *RTPMapAttribute) validate(name grammar.Name) error {
	if a.CodecInfo == nil {
		return liberrors.ErrStructuralInvariant{
			Node:   string(name),
			Reason: fmt.Sprintf("missing '%s'", grammar.RTPMapCodecInfo),
		}
	}
	return nil
}

// RTCPMuxAttribute is a rtcp-mux attribute.
type RTCPMuxAttribute struct{}

// Kind implements Attribute.
func (*RTCPMuxAttribute) Kind() AttributeKind {
	return AttributeKindRTCPMux
}

func (*RTCPMuxAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.RTCPMux, keyword("rtcp-mux")},
	}
}

// GenericAttribute is an attribute that is not recognized.
type GenericAttribute struct {
	// the line without the a= prefix.
	Content string
}

// Kind implements Attribute.
func (*GenericAttribute) Kind() AttributeKind {
	return AttributeKindGeneric
}

func (a *GenericAttribute) slots() []namedSlot {
	return []namedSlot{
		{grammar.Content, scalar{&a.Content}},
	}
}

// AttributeLine is a a= line.
type AttributeLine struct {
	Value Attribute
}

func (l *AttributeLine) slots() []namedSlot {
	return []namedSlot{
		{grammar.DirectionApplicationLine, variantSlot[DirectionAttribute](&l.Value)},
		{grammar.RTCPApplicationLine, variantSlot[RTCPAttribute](&l.Value)},
		{grammar.ICEUfragApplicationLine, variantSlot[ICEUfragAttribute](&l.Value)},
		{grammar.ICEPwdApplicationLine, variantSlot[ICEPwdAttribute](&l.Value)},
		{grammar.GroupApplicationLine, variantSlot[GroupAttribute](&l.Value)},
		{grammar.MIDApplicationLine, variantSlot[MIDAttribute](&l.Value)},
		{grammar.RTPMapApplicationLine, variantSlot[RTPMapAttribute](&l.Value)},
		{grammar.RTCPMuxApplicationLine, variantSlot[RTCPMuxAttribute](&l.Value)},
		{grammar.GenericApplicationLine, variantSlot[GenericAttribute](&l.Value)},
	}
}

func (l *AttributeLine) validate(name grammar.Name) error {
	if l.Value == nil {
		return liberrors.ErrStructuralInvariant{
			Node:   string(name),
			Reason: "no attribute found",
		}
	}
	return nil
}

// AttributeLines is a sequence of a= lines.
type AttributeLines []*AttributeLine
