package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// lineData describes a line and the fields that parsing it must produce.
type lineData struct {
	prefix    string
	joinToken string
	fields    []fieldData
}

type fieldData struct {
	name  Name
	value string
	list  []string
	sub   *lineData
}

func (d lineData) String() string {
	join := d.joinToken
	if join == "" {
		join = " "
	}

	parts := make([]string, len(d.fields))
	for i, f := range d.fields {
		switch {
		case f.sub != nil:
			parts[i] = f.sub.String()
		case f.list != nil:
			parts[i] = strings.Join(f.list, " ")
		default:
			parts[i] = f.value
		}
	}

	return d.prefix + strings.Join(parts, join)
}

func verifyLine(t *testing.T, fs Fields, d lineData) {
	require.Equal(t, len(d.fields), len(fs), "unexpected fields %v", fs.Names())

	for _, fd := range d.fields {
		f, ok := fs.Get(fd.name)
		require.True(t, ok, "field %s not found in %v", fd.name, fs.Names())

		switch {
		case fd.sub != nil:
			require.Equal(t, KindGroup, f.Kind)
			verifyLine(t, f.Group, *fd.sub)

		case fd.list != nil:
			require.Equal(t, KindList, f.Kind)
			require.Equal(t, fd.list, f.Values)

		default:
			require.Equal(t, KindScalar, f.Kind)
			require.Equal(t, fd.value, f.Value)
		}
	}
}

func attributeLine(variant Name, prefix string, fields ...fieldData) lineData {
	return lineData{
		prefix: "a=",
		fields: []fieldData{{
			name: variant,
			sub:  &lineData{prefix: prefix, fields: fields},
		}},
	}
}

var (
	vlineData = lineData{
		prefix: "v=",
		fields: []fieldData{{name: VersionNumber, value: "0"}},
	}

	olineData = lineData{
		prefix: "o=",
		fields: []fieldData{
			{name: Username, value: "-"},
			{name: SessionID, value: "4143029973181426116"},
			{name: SessionVersion, value: "2"},
			{name: NetType, value: "IN"},
			{name: AddrType, value: "IP4"},
			{name: IPAddr, value: "127.0.0.1"},
		},
	}

	slineData = lineData{
		prefix: "s=",
		fields: []fieldData{{name: SessionName, value: "-"}},
	}

	ilineData = lineData{
		prefix: "i=",
		fields: []fieldData{{name: SessionInformation, value: "Test Session"}},
	}

	clineData = lineData{
		prefix: "c=",
		fields: []fieldData{
			{name: NetType, value: "IN"},
			{name: AddrType, value: "IP4"},
			{name: IPAddr, value: "127.0.0.1"},
		},
	}

	blineData = lineData{
		prefix:    "b=",
		joinToken: ":",
		fields: []fieldData{
			{name: BWType, value: "AS"},
			{name: BW, value: "128"},
		},
	}

	tlineData = lineData{
		prefix: "t=",
		fields: []fieldData{
			{name: StartTime, value: "1234567"},
			{name: StopTime, value: "2345678"},
		},
	}

	mlineData = lineData{
		prefix: "m=",
		fields: []fieldData{
			{name: MediaType, value: "audio"},
			{name: Port, value: "0"},
			{name: Proto, value: "RTP/SAVPF"},
			{name: Formats, list: []string{"111", "222", "333", "444"}},
		},
	}

	genericAlineData = attributeLine(GenericApplicationLine, "",
		fieldData{name: Content, value: "some unknown generic line"})

	directionAlineData = attributeLine(DirectionApplicationLine, "",
		fieldData{name: Direction, value: "sendrecv"})

	rtcpAlineData = attributeLine(RTCPApplicationLine, "rtcp:",
		fieldData{name: Port, value: "1"},
		fieldData{name: NetType, value: "IN"},
		fieldData{name: AddrType, value: "IP4"},
		fieldData{name: IPAddr, value: "127.0.0.1"})
)

var casesLine = []struct {
	name string
	rule Name
	data lineData
}{
	{"version", VersionLine, vlineData},
	{"originator", OriginatorLine, olineData},
	{"session name", SessionNameLine, slineData},
	{
		"session name single space",
		SessionNameLine,
		lineData{prefix: "s=", fields: []fieldData{{name: SessionName, value: " "}}},
	},
	{"session information", SessionInformationLine, ilineData},
	{
		"uri",
		URILine,
		lineData{prefix: "u=", fields: []fieldData{{name: URI, value: "http://www.example.com/seminars/sdp.pdf"}}},
	},
	{
		"email",
		EmailAddressLine,
		lineData{prefix: "e=", fields: []fieldData{{name: EmailAddress, value: "j.doe@example.com (Jane Doe)"}}},
	},
	{
		"phone",
		PhoneNumberLine,
		lineData{prefix: "p=", fields: []fieldData{{name: PhoneNumber, value: "+1 617 555-6011"}}},
	},
	{"connection information", ConnectionInformationLine, clineData},
	{"bandwidth information", BandwidthInformationLine, blineData},
	{"time description", TimeDescriptionLine, tlineData},
	{"media description", MediaDescriptionLine, mlineData},
	{"generic attribute", ApplicationLine, genericAlineData},
	{"direction attribute", ApplicationLine, directionAlineData},
	{"rtcp attribute", ApplicationLine, rtcpAlineData},
	{
		"rtcp attribute port only",
		ApplicationLine,
		attributeLine(RTCPApplicationLine, "rtcp:", fieldData{name: Port, value: "9"}),
	},
	{
		"ice-ufrag attribute",
		ApplicationLine,
		attributeLine(ICEUfragApplicationLine, "ice-ufrag:",
			fieldData{name: Username, value: "abcdefghi1234+ab"}),
	},
	{
		"ice-pwd attribute",
		ApplicationLine,
		attributeLine(ICEPwdApplicationLine, "ice-pwd:",
			fieldData{name: Password, value: "V3YEqLGAJJhUDUa13C/pKbWe"}),
	},
	{
		"group attribute",
		ApplicationLine,
		attributeLine(GroupApplicationLine, "group:",
			fieldData{name: Purpose, value: "BUNDLE"},
			fieldData{name: IDs, list: []string{"audio", "video", "data"}}),
	},
	{
		"mid attribute",
		ApplicationLine,
		attributeLine(MIDApplicationLine, "mid:", fieldData{name: ID, value: "audio"}),
	},
	{
		"rtpmap attribute",
		ApplicationLine,
		attributeLine(RTPMapApplicationLine, "rtpmap:",
			fieldData{name: PT, value: "0"},
			fieldData{name: RTPMapCodecInfo, sub: &lineData{
				joinToken: "/",
				fields: []fieldData{
					{name: EncodingName, value: "PCMU"},
					{name: ClockRate, value: "8000"},
				},
			}}),
	},
	{
		"rtpmap attribute with parameters",
		ApplicationLine,
		attributeLine(RTPMapApplicationLine, "rtpmap:",
			fieldData{name: PT, value: "111"},
			fieldData{name: RTPMapCodecInfo, sub: &lineData{
				joinToken: "/",
				fields: []fieldData{
					{name: EncodingName, value: "opus"},
					{name: ClockRate, value: "48000"},
					{name: EncodingParameters, value: "2"},
				},
			}}),
	},
	{
		"rtcp-mux attribute",
		ApplicationLine,
		attributeLine(RTCPMuxApplicationLine, "", fieldData{name: RTCPMux, value: "rtcp-mux"}),
	},
}

func TestParseLine(t *testing.T) {
	for _, ca := range casesLine {
		t.Run(ca.name, func(t *testing.T) {
			for _, terminator := range []string{"", "\n", "\r\n"} {
				fs, err := Parse(ca.rule, ca.data.String()+terminator)
				require.NoError(t, err)
				verifyLine(t, fs, ca.data)
			}
		})
	}
}

func TestParseAttributeFallback(t *testing.T) {
	for _, ca := range []struct {
		name    string
		in      string
		content string
	}{
		{"unknown", "a=some unknown generic line", "some unknown generic line"},
		{"key value", "a=control:trackID=1", "control:trackID=1"},
		{"rtcp with invalid port", "a=rtcp:abc", "rtcp:abc"},
		{"mid with trailing token", "a=mid:audio extra", "mid:audio extra"},
		{"direction with suffix", "a=sendrecvx", "sendrecvx"},
		{"inactive", "a=inactive", "inactive"},
		{"rtpmap without clock rate", "a=rtpmap:96 H264", "rtpmap:96 H264"},
		{"group without ids", "a=group:BUNDLE", "group:BUNDLE"},
		{"empty", "a=", ""},
	} {
		t.Run(ca.name, func(t *testing.T) {
			fs, err := Parse(ApplicationLine, ca.in)
			require.NoError(t, err)
			verifyLine(t, fs, attributeLine(GenericApplicationLine, "",
				fieldData{name: Content, value: ca.content}))
		})
	}
}

func TestParseProto(t *testing.T) {
	for _, proto := range []string{
		"udp",
		"RTP/AVP",
		"RTP/AVPF",
		"RTP/SAVP",
		"RTP/SAVPF",
		"UDP/TLS/RTP/SAVP",
		"UDP/TLS/RTP/SAVPF",
	} {
		t.Run(proto, func(t *testing.T) {
			fs, err := Parse(MediaDescriptionLine, "m=video 9 "+proto+" 96 97")
			require.NoError(t, err)

			f, ok := fs.Get(Proto)
			require.True(t, ok)
			require.Equal(t, proto, f.Value)
		})
	}
}

func TestLiteralGroupsOrdered(t *testing.T) {
	for name, alts := range LiteralGroups() {
		for i := range alts {
			for j := i + 1; j < len(alts); j++ {
				require.False(t, strings.HasPrefix(alts[j], alts[i]),
					"%s: '%s' is tried before '%s' and is a prefix of it", name, alts[i], alts[j])
			}
		}
	}
}

func TestOrderedChoiceCommitsToFirstMatch(t *testing.T) {
	line := seq(
		named(Proto, oneOf{label: "proto", alts: []string{"RTP/SAVP", "RTP/SAVPF"}}),
		oneOrMore(seq(sp, namedEach(Formats, number))),
		eol{})

	s := &state{in: "RTP/SAVPF 111 112", farthest: -1}
	_, _, ok := line.match(s, 0, nil)
	require.False(t, ok)

	line[0] = named(Proto, proto)

	s = &state{in: "RTP/SAVPF 111 112", farthest: -1}
	_, fs, ok := line.match(s, 0, nil)
	require.True(t, ok)
	require.Equal(t, Fields{
		{Name: Proto, Kind: KindScalar, Value: "RTP/SAVPF"},
		{Name: Formats, Kind: KindList, Values: []string{"111", "112"}},
	}, fs.merge())
}
