package grammar

var (
	bwtype = oneOf{label: "bwtype", alts: []string{"TIAS", "CT", "AS", "RS", "RR"}}

	mediaType = oneOf{
		label: "media type",
		alts:  []string{"audio", "video", "text", "application", "message"},
	}

	// longer literals come first, otherwise RTP/SAVP would match the
	// beginning of RTP/SAVPF and the rest of the line would be rejected.
	proto = oneOf{
		label: "proto",
		alts: []string{
			"UDP/TLS/RTP/SAVPF",
			"UDP/TLS/RTP/SAVP",
			"udp",
			"RTP/AVPF",
			"RTP/AVP",
			"RTP/SAVPF",
			"RTP/SAVP",
		},
	}

	direction = oneOf{label: "direction", alts: []string{"sendonly", "sendrecv", "recvonly"}}
)

var (
	versionLine = seq(
		linePrefix("v="),
		named(VersionNumber, number),
		eol{})

	originatorLine = seq(
		linePrefix("o="),
		named(Username, word("username", "-_.")),
		sp, named(SessionID, number),
		sp, named(SessionVersion, number),
		sp, named(NetType, nettype),
		sp, named(AddrType, addrtype),
		sp, named(IPAddr, ipAddr),
		eol{})

	sessionNameLine = seq(
		linePrefix("s="),
		named(SessionName, text),
		eol{})

	sessionInformationLine = seq(
		linePrefix("i="),
		named(SessionInformation, text),
		eol{})

	// u=, e= and p= are only recognized, their content is not validated.
	uriLine = seq(
		linePrefix("u="),
		named(URI, text),
		eol{})

	emailAddressLine = seq(
		linePrefix("e="),
		named(EmailAddress, text),
		eol{})

	phoneNumberLine = seq(
		linePrefix("p="),
		named(PhoneNumber, text),
		eol{})

	connectionInformationLine = seq(
		linePrefix("c="),
		named(NetType, nettype),
		sp, named(AddrType, addrtype),
		sp, named(IPAddr, ipAddr),
		eol{})

	bandwidthInformationLine = seq(
		linePrefix("b="),
		named(BWType, bwtype),
		literal(":"),
		named(BW, number),
		eol{})

	timeDescriptionLine = seq(
		linePrefix("t="),
		named(StartTime, number),
		sp, named(StopTime, number),
		eol{})

	mediaDescriptionLine = seq(
		linePrefix("m="),
		named(MediaType, mediaType),
		sp, named(Port, port),
		sp, named(Proto, proto),
		oneOrMore(seq(sp, namedEach(Formats, number))),
		eol{})
)

// attribute line variants.
// Each of them must consume the whole line, otherwise the next one is tried.
var (
	directionAttribute = seq(
		named(Direction, direction),
		eol{})

	rtcpAttribute = seq(
		literal("rtcp:"),
		named(Port, port),
		opt(seq(sp, named(NetType, nettype))),
		opt(seq(sp, named(AddrType, addrtype))),
		opt(seq(sp, named(IPAddr, ipAddr))),
		eol{})

	iceUfragAttribute = seq(
		literal("ice-ufrag:"),
		named(Username, word("ice-char", "+/")),
		eol{})

	icePwdAttribute = seq(
		literal("ice-pwd:"),
		named(Password, word("ice-char", "+/")),
		eol{})

	groupAttribute = seq(
		literal("group:"),
		named(Purpose, word("semantics", "")),
		oneOrMore(seq(sp, namedEach(IDs, word("identification-tag", "-_")))),
		eol{})

	midAttribute = seq(
		literal("mid:"),
		named(ID, word("identification-tag", "-_")),
		eol{})

	rtpmapAttribute = seq(
		literal("rtpmap:"),
		named(PT, number),
		sp,
		grouped(RTPMapCodecInfo, seq(
			named(EncodingName, word("encoding name", "-_.")),
			literal("/"),
			named(ClockRate, number),
			opt(seq(literal("/"), named(EncodingParameters, text))))),
		eol{})

	rtcpMuxAttribute = seq(
		named(RTCPMux, literal("rtcp-mux")),
		eol{})

	genericAttribute = seq(
		named(Content, restOfLine{}),
		eol{})

	applicationLine = seq(
		linePrefix("a="),
		first(
			grouped(DirectionApplicationLine, directionAttribute),
			grouped(RTCPApplicationLine, rtcpAttribute),
			grouped(ICEUfragApplicationLine, iceUfragAttribute),
			grouped(ICEPwdApplicationLine, icePwdAttribute),
			grouped(GroupApplicationLine, groupAttribute),
			grouped(MIDApplicationLine, midAttribute),
			grouped(RTPMapApplicationLine, rtpmapAttribute),
			grouped(RTCPMuxApplicationLine, rtcpMuxAttribute),
			grouped(GenericApplicationLine, genericAttribute)))
)
