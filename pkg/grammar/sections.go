package grammar

import (
	"fmt"
	"sort"
)

var (
	sessionSection = seq(
		grouped(VersionLine, versionLine),
		grouped(OriginatorLine, originatorLine),
		grouped(SessionNameLine, sessionNameLine),
		opt(grouped(SessionInformationLine, sessionInformationLine)),
		opt(grouped(URILine, uriLine)),
		opt(grouped(EmailAddressLine, emailAddressLine)),
		opt(grouped(PhoneNumberLine, phoneNumberLine)),
		opt(grouped(ConnectionInformationLine, connectionInformationLine)),
		zeroOrMore(groupedEach(BandwidthInformationLines, bandwidthInformationLine)),
		oneOrMore(groupedEach(TimeDescriptionLines, timeDescriptionLine)),
		zeroOrMore(groupedEach(ApplicationLines, applicationLine)))

	// a media section ends where the next m= line begins.
	mediaSection = seq(
		grouped(MediaDescriptionLine, mediaDescriptionLine),
		opt(grouped(SessionInformationLine, sessionInformationLine)),
		opt(grouped(ConnectionInformationLine, connectionInformationLine)),
		zeroOrMore(groupedEach(BandwidthInformationLines, bandwidthInformationLine)),
		zeroOrMore(groupedEach(ApplicationLines, applicationLine)))

	document = seq(
		grouped(SessionSection, sessionSection),
		zeroOrMore(groupedEach(MediaSections, mediaSection)))
)

var rules = map[Name]element{
	VersionLine:               versionLine,
	OriginatorLine:            originatorLine,
	SessionNameLine:           sessionNameLine,
	SessionInformationLine:    sessionInformationLine,
	URILine:                   uriLine,
	EmailAddressLine:          emailAddressLine,
	PhoneNumberLine:           phoneNumberLine,
	ConnectionInformationLine: connectionInformationLine,
	BandwidthInformationLine:  bandwidthInformationLine,
	TimeDescriptionLine:       timeDescriptionLine,
	ApplicationLine:           applicationLine,
	MediaDescriptionLine:      mediaDescriptionLine,
	SessionSection:            sessionSection,
	MediaSection:              mediaSection,
	Document:                  document,
}

// Rules returns the names of the rules accepted by Parse.
func Rules() []Name {
	ret := make([]Name, 0, len(rules))
	for name := range rules {
		ret = append(ret, name)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return ret
}

// LiteralGroups returns the literal alternatives of the grammar,
// in the order in which they are tried.
func LiteralGroups() map[Name][]string {
	ret := make(map[Name][]string)
	for name, o := range map[Name]oneOf{
		NetType:   nettype,
		AddrType:  addrtype,
		BWType:    bwtype,
		MediaType: mediaType,
		Proto:     proto,
		Direction: direction,
	} {
		ret[name] = append([]string(nil), o.alts...)
	}
	return ret
}

// Parse matches a rule against the whole input.
// Line rules return the fields of the line, without the line itself.
// Parse returns liberrors.ErrGrammarMismatch when the input does not match.
func Parse(rule Name, in string) (Fields, error) {
	e, ok := rules[rule]
	if !ok {
		return nil, fmt.Errorf("unknown rule '%s'", rule)
	}

	s := &state{
		in:       in,
		farthest: -1,
	}

	_, out, ok := seq(e, endOfInput{}).match(s, 0, nil)
	if !ok {
		return nil, s.mismatch()
	}

	return out.merge(), nil
}
