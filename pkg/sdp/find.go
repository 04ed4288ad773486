package sdp

// FindMedia returns the first media section with the given media type, or nil.
func (d *Document) FindMedia(mediaType string) *MediaSection {
	for _, m := range d.Medias {
		if m.MediaDescriptionLine != nil && m.MediaDescriptionLine.MediaType == mediaType {
			return m
		}
	}
	return nil
}

// Audio returns the first audio media section, or nil.
func (d *Document) Audio() *MediaSection {
	return d.FindMedia("audio")
}

// Video returns the first video media section, or nil.
func (d *Document) Video() *MediaSection {
	return d.FindMedia("video")
}

// Direction returns the direction of the session.
func (s *SessionSection) Direction() (string, bool) {
	return s.AttributeLines.Direction()
}

// Direction returns the direction of the media section.
func (m *MediaSection) Direction() (string, bool) {
	return m.AttributeLines.Direction()
}

func findAttribute[T Attribute](ls AttributeLines) (T, bool) {
	for _, l := range ls {
		if a, ok := l.Value.(T); ok {
			return a, true
		}
	}

	var zero T
	return zero, false
}

func findAttributes[T Attribute](ls AttributeLines) []T {
	var ret []T
	for _, l := range ls {
		if a, ok := l.Value.(T); ok {
			ret = append(ret, a)
		}
	}
	return ret
}

// Direction returns the value of the first direction attribute.
func (ls AttributeLines) Direction() (string, bool) {
	a, ok := findAttribute[*DirectionAttribute](ls)
	if !ok {
		return "", false
	}
	return a.Direction, true
}

// MID returns the value of the first mid attribute.
func (ls AttributeLines) MID() (string, bool) {
	a, ok := findAttribute[*MIDAttribute](ls)
	if !ok {
		return "", false
	}
	return a.ID, true
}

// ICEUfrag returns the value of the first ice-ufrag attribute.
func (ls AttributeLines) ICEUfrag() (string, bool) {
	a, ok := findAttribute[*ICEUfragAttribute](ls)
	if !ok {
		return "", false
	}
	return a.Username, true
}

// ICEPwd returns the value of the first ice-pwd attribute.
func (ls AttributeLines) ICEPwd() (string, bool) {
	a, ok := findAttribute[*ICEPwdAttribute](ls)
	if !ok {
		return "", false
	}
	return a.Password, true
}

// Groups returns all group attributes.
func (ls AttributeLines) Groups() []*GroupAttribute {
	return findAttributes[*GroupAttribute](ls)
}

// RTPMap returns the rtpmap attribute of the given payload type, or nil.
func (ls AttributeLines) RTPMap(pt string) *RTPMapAttribute {
	for _, a := range findAttributes[*RTPMapAttribute](ls) {
		if a.PT == pt {
			return a
		}
	}
	return nil
}

// RTCP returns the first rtcp attribute, or nil.
func (ls AttributeLines) RTCP() *RTCPAttribute {
	a, _ := findAttribute[*RTCPAttribute](ls)
	return a
}

// HasRTCPMux returns whether a rtcp-mux attribute is present.
func (ls AttributeLines) HasRTCPMux() bool {
	_, ok := findAttribute[*RTCPMuxAttribute](ls)
	return ok
}

// Generic returns the content of all attributes that were not recognized.
func (ls AttributeLines) Generic() []string {
	var ret []string
	for _, a := range findAttributes[*GenericAttribute](ls) {
		ret = append(ret, a.Content)
	}
	return ret
}
