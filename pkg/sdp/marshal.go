package sdp

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	psdp "github.com/pion/sdp/v3"
)

var (
	errSDPMissingLine         = errors.New("sdp: missing line")
	errSDPInvalidNumericValue = errors.New("sdp: invalid numeric value")
	errSDPInvalidValue        = errors.New("sdp: invalid value")
)

func (a *DirectionAttribute) marshal() (string, string) {
	return a.Direction, ""
}

func (a *RTCPAttribute) marshal() (string, string) {
	v := a.Port
	for _, p := range []*string{a.NetType, a.AddrType, a.IPAddr} {
		if p != nil {
			v += " " + *p
		}
	}
	return "rtcp", v
}

func (a *ICEUfragAttribute) marshal() (string, string) {
	return "ice-ufrag", a.Username
}

func (a *ICEPwdAttribute) marshal() (string, string) {
	return "ice-pwd", a.Password
}

func (a *GroupAttribute) marshal() (string, string) {
	return "group", strings.Join(append([]string{a.Purpose}, a.IDs...), " ")
}

func (a *MIDAttribute) marshal() (string, string) {
	return "mid", a.ID
}

func (a *RTPMapAttribute) marshal() (string, string) {
	v := a.PT
	if a.CodecInfo != nil {
		v += " " + a.CodecInfo.EncodingName + "/" + a.CodecInfo.ClockRate
		if a.CodecInfo.EncodingParameters != nil {
			v += "/" + *a.CodecInfo.EncodingParameters
		}
	}
	return "rtpmap", v
}

func (*RTCPMuxAttribute) marshal() (string, string) {
	return "rtcp-mux", ""
}

func (a *GenericAttribute) marshal() (string, string) {
	// a key followed by an empty value would lose its colon.
	i := strings.IndexByte(a.Content, ':')
	if i > 0 && i < len(a.Content)-1 {
		return a.Content[:i], a.Content[i+1:]
	}
	return a.Content, ""
}

func parseUint(name string, v string) (uint64, error) {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s `%v`", errSDPInvalidNumericValue, name, v)
	}
	return n, nil
}

func parseInt(name string, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s `%v`", errSDPInvalidNumericValue, name, v)
	}
	return n, nil
}

func marshalAttributes(ls AttributeLines) []psdp.Attribute {
	if len(ls) == 0 {
		return nil
	}

	ret := make([]psdp.Attribute, len(ls))
	for i, l := range ls {
		k, v := l.Value.marshal()
		ret[i] = psdp.Attribute{Key: k, Value: v}
	}
	return ret
}

func marshalBandwidths(ls BandwidthInformationLines) ([]psdp.Bandwidth, error) {
	if len(ls) == 0 {
		return nil, nil
	}

	ret := make([]psdp.Bandwidth, len(ls))
	for i, l := range ls {
		bw, err := parseUint("bandwidth", l.BW)
		if err != nil {
			return nil, err
		}
		ret[i] = psdp.Bandwidth{Type: l.BWType, Bandwidth: bw}
	}
	return ret, nil
}

func marshalConnectionInformation(l *ConnectionInformationLine) *psdp.ConnectionInformation {
	if l == nil {
		return nil
	}

	return &psdp.ConnectionInformation{
		NetworkType: l.NetType,
		AddressType: l.AddrType,
		Address:     &psdp.Address{Address: l.IPAddr},
	}
}

func (s *SessionSection) marshal(sd *psdp.SessionDescription) error {
	if s.VersionLine == nil || s.OriginatorLine == nil || s.SessionNameLine == nil {
		return fmt.Errorf("%w: v=, o= and s= are mandatory", errSDPMissingLine)
	}

	if len(s.TimeDescriptionLines) == 0 {
		return fmt.Errorf("%w: t= is mandatory", errSDPMissingLine)
	}

	version, err := parseInt("version", s.VersionLine.VersionNumber)
	if err != nil {
		return err
	}
	sd.Version = psdp.Version(version)

	sd.Origin.Username = s.OriginatorLine.Username
	sd.Origin.SessionID, err = parseUint("session id", s.OriginatorLine.SessionID)
	if err != nil {
		return err
	}
	sd.Origin.SessionVersion, err = parseUint("session version", s.OriginatorLine.SessionVersion)
	if err != nil {
		return err
	}
	sd.Origin.NetworkType = s.OriginatorLine.NetType
	sd.Origin.AddressType = s.OriginatorLine.AddrType
	sd.Origin.UnicastAddress = s.OriginatorLine.IPAddr

	sd.SessionName = psdp.SessionName(s.SessionNameLine.SessionName)

	if s.SessionInformationLine != nil {
		v := psdp.Information(s.SessionInformationLine.SessionInformation)
		sd.SessionInformation = &v
	}

	if s.URILine != nil {
		sd.URI, err = url.Parse(s.URILine.URI)
		if err != nil {
			return fmt.Errorf("%w: uri `%v`", errSDPInvalidValue, s.URILine.URI)
		}
	}

	if s.EmailAddressLine != nil {
		v := psdp.EmailAddress(s.EmailAddressLine.EmailAddress)
		sd.EmailAddress = &v
	}

	if s.PhoneNumberLine != nil {
		v := psdp.PhoneNumber(s.PhoneNumberLine.PhoneNumber)
		sd.PhoneNumber = &v
	}

	sd.ConnectionInformation = marshalConnectionInformation(s.ConnectionInformationLine)

	sd.Bandwidth, err = marshalBandwidths(s.BandwidthInformationLines)
	if err != nil {
		return err
	}

	sd.TimeDescriptions = make([]psdp.TimeDescription, len(s.TimeDescriptionLines))
	for i, l := range s.TimeDescriptionLines {
		start, err := parseUint("start time", l.StartTime)
		if err != nil {
			return err
		}

		stop, err := parseUint("stop time", l.StopTime)
		if err != nil {
			return err
		}

		sd.TimeDescriptions[i] = psdp.TimeDescription{
			Timing: psdp.Timing{StartTime: start, StopTime: stop},
		}
	}

	sd.Attributes = marshalAttributes(s.AttributeLines)

	return nil
}

func (m *MediaSection) marshal() (*psdp.MediaDescription, error) {
	if m.MediaDescriptionLine == nil {
		return nil, fmt.Errorf("%w: m= is mandatory", errSDPMissingLine)
	}

	port, err := parseInt("port", m.MediaDescriptionLine.Port)
	if err != nil {
		return nil, err
	}

	md := &psdp.MediaDescription{
		MediaName: psdp.MediaName{
			Media:   m.MediaDescriptionLine.MediaType,
			Port:    psdp.RangedPort{Value: port},
			Protos:  strings.Split(m.MediaDescriptionLine.Proto, "/"),
			Formats: m.MediaDescriptionLine.Formats,
		},
		ConnectionInformation: marshalConnectionInformation(m.ConnectionInformationLine),
		Attributes:            marshalAttributes(m.AttributeLines),
	}

	if m.SessionInformationLine != nil {
		v := psdp.Information(m.SessionInformationLine.SessionInformation)
		md.MediaTitle = &v
	}

	md.Bandwidth, err = marshalBandwidths(m.BandwidthInformationLines)
	if err != nil {
		return nil, err
	}

	return md, nil
}

// SessionDescription converts the document into a pion/sdp session description.
func (d *Document) SessionDescription() (*psdp.SessionDescription, error) {
	if d.Session == nil {
		return nil, fmt.Errorf("%w: session section is mandatory", errSDPMissingLine)
	}

	sd := &psdp.SessionDescription{}

	err := d.Session.marshal(sd)
	if err != nil {
		return nil, err
	}

	for _, m := range d.Medias {
		md, err := m.marshal()
		if err != nil {
			return nil, err
		}
		sd.MediaDescriptions = append(sd.MediaDescriptions, md)
	}

	return sd, nil
}

// Marshal encodes the document in canonical form.
func (d *Document) Marshal() ([]byte, error) {
	sd, err := d.SessionDescription()
	if err != nil {
		return nil, err
	}
	return sd.Marshal()
}
