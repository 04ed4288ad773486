// Package sdp contains a SDP decoder that turns a document into a typed tree.
package sdp

import (
	"github.com/bluenviron/sdpgrammar/pkg/grammar"
	"github.com/bluenviron/sdpgrammar/pkg/liberrors"
)

// Document is a decoded SDP document.
// It must not be modified after decoding.
type Document struct {
	Session *SessionSection
	Medias  MediaSections
}

func (d *Document) slots() []namedSlot {
	return []namedSlot{
		{grammar.SessionSection, childSlot(&d.Session)},
		{grammar.MediaSections, childrenSlot(&d.Medias)},
	}
}

func (d *Document) validate(name grammar.Name) error {
	if d.Session == nil {
		return liberrors.ErrStructuralInvariant{
			Node:   string(name),
			Reason: "missing session section",
		}
	}
	return nil
}

// Unmarshal decodes a document with the default decoder.
func (d *Document) Unmarshal(byts []byte) error {
	dec := Decoder{}
	dec.Initialize()

	doc, err := dec.Decode(byts)
	if err != nil {
		return err
	}

	*d = *doc
	return nil
}
