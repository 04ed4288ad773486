package grammar

// Name is the name of a field of a parse result.
type Name string

// line fields.
const (
	VersionNumber      Name = "version_number"
	Username           Name = "username"
	SessionID          Name = "session_id"
	SessionVersion     Name = "session_version"
	NetType            Name = "nettype"
	AddrType           Name = "addrtype"
	IPAddr             Name = "ip_addr"
	SessionName        Name = "session_name"
	SessionInformation Name = "session_information"
	URI                Name = "uri"
	EmailAddress       Name = "email_address"
	PhoneNumber        Name = "phone_number"
	BWType             Name = "bwtype"
	BW                 Name = "bw"
	StartTime          Name = "start_time"
	StopTime           Name = "stop_time"
	MediaType          Name = "media_type"
	Port               Name = "port"
	Proto              Name = "proto"
	Formats            Name = "formats"
)

// attribute line fields.
const (
	Direction          Name = "direction"
	Password           Name = "password"
	Purpose            Name = "purpose"
	IDs                Name = "ids"
	ID                 Name = "id"
	RTCPMux            Name = "rtcp_mux"
	PT                 Name = "pt"
	EncodingName       Name = "encoding_name"
	ClockRate          Name = "clock_rate"
	EncodingParameters Name = "encoding_parameters"
	Content            Name = "content"
)

// attribute line variants.
const (
	DirectionApplicationLine Name = "direction_application_line"
	RTCPApplicationLine      Name = "rtcp_application_line"
	ICEUfragApplicationLine  Name = "ice_ufrag_application_line"
	ICEPwdApplicationLine    Name = "ice_pwd_application_line"
	GroupApplicationLine     Name = "group_application_line"
	MIDApplicationLine       Name = "mid_application_line"
	RTPMapApplicationLine    Name = "rtpmap_application_line"
	RTCPMuxApplicationLine   Name = "rtcp_mux_application_line"
	GenericApplicationLine   Name = "generic_application_line"
	RTPMapCodecInfo          Name = "rtpmap_codec_info"
)

// section fields.
const (
	VersionLine               Name = "version_line"
	OriginatorLine            Name = "originator_line"
	SessionNameLine           Name = "session_name_line"
	SessionInformationLine    Name = "session_information_line"
	URILine                   Name = "uri_line"
	EmailAddressLine          Name = "email_address_line"
	PhoneNumberLine           Name = "phone_number_line"
	ConnectionInformationLine Name = "connection_information_line"
	BandwidthInformationLines Name = "bandwidth_information_lines"
	TimeDescriptionLines      Name = "time_description_lines"
	ApplicationLines          Name = "application_lines"
	MediaDescriptionLine      Name = "media_description_line"
)

// document fields.
const (
	SessionSection Name = "session_section"
	MediaSections  Name = "media_sections"
)

// rules that can be parsed on their own and are not fields.
const (
	BandwidthInformationLine Name = "bandwidth_information_line"
	TimeDescriptionLine      Name = "time_description_line"
	ApplicationLine          Name = "application_line"
	MediaSection             Name = "media_section"
	Document                 Name = "sdp"
)

// Kind is the kind of value of a field.
type Kind int

// kinds.
const (
	// a single token.
	KindScalar Kind = iota

	// a token matched zero or more times, in input order.
	KindList

	// a nested set of fields.
	KindGroup

	// a nested set of fields matched zero or more times, in input order.
	KindGroupList
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindGroup:
		return "group"
	case KindGroupList:
		return "group list"
	}
	return "unknown"
}

// Field is a named value of a parse result.
type Field struct {
	Name Name
	Kind Kind

	// filled when Kind is KindScalar.
	Value string

	// filled when Kind is KindList.
	Values []string

	// filled when Kind is KindGroup.
	Group Fields

	// filled when Kind is KindGroupList.
	Groups []Fields

	// set on single matches of a repeated field, until they are merged.
	repeated bool
}

// Fields is an ordered set of fields.
type Fields []Field

// Get returns the field with the given name and whether it exists.
func (fs Fields) Get(name Name) (Field, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Has returns whether a field with the given name exists.
func (fs Fields) Has(name Name) bool {
	_, ok := fs.Get(name)
	return ok
}

// Names returns the names of the fields, in order.
func (fs Fields) Names() []Name {
	ret := make([]Name, len(fs))
	for i, f := range fs {
		ret[i] = f.Name
	}
	return ret
}

// merge folds single matches of repeated fields into one list field,
// placed where the first match was found.
func (fs Fields) merge() Fields {
	var ret Fields

	for _, f := range fs {
		if !f.repeated {
			ret = append(ret, f)
			continue
		}

		i := indexOfName(ret, f.Name)
		if i < 0 {
			switch f.Kind {
			case KindScalar:
				ret = append(ret, Field{Name: f.Name, Kind: KindList, Values: []string{f.Value}})
			default:
				ret = append(ret, Field{Name: f.Name, Kind: KindGroupList, Groups: []Fields{f.Group}})
			}
			continue
		}

		switch f.Kind {
		case KindScalar:
			ret[i].Values = append(ret[i].Values, f.Value)
		default:
			ret[i].Groups = append(ret[i].Groups, f.Group)
		}
	}

	return ret
}

func indexOfName(fs Fields, name Name) int {
	for i, f := range fs {
		if f.Name == name {
			return i
		}
	}
	return -1
}
