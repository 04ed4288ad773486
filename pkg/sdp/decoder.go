package sdp

import (
	"github.com/pion/logging"

	"github.com/bluenviron/sdpgrammar/pkg/grammar"
)

// Decoder is a SDP decoder.
type Decoder struct {
	// logger factory.
	// It defaults to logging.NewDefaultLoggerFactory().
	LoggerFactory logging.LoggerFactory

	log logging.LeveledLogger
}

// Initialize initializes a Decoder.
func (d *Decoder) Initialize() {
	if d.LoggerFactory == nil {
		d.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	d.log = d.LoggerFactory.NewLogger("sdp")
}

// Decode decodes a document.
// It returns liberrors.ErrGrammarMismatch when the document is malformed,
// and liberrors.ErrStructuralInvariant when the parse result cannot be
// turned into a typed tree.
func (d *Decoder) Decode(byts []byte) (*Document, error) {
	fs, err := grammar.Parse(grammar.Document, string(byts))
	if err != nil {
		d.log.Debugf("unable to parse document: %v", err)
		return nil, err
	}

	var doc Document
	err = buildNode(grammar.Document, &doc, fs)
	if err != nil {
		d.log.Warnf("unable to build document: %v", err)
		return nil, err
	}

	d.log.Debugf("decoded document with %d media sections", len(doc.Medias))

	for i, m := range doc.Medias {
		if m.MediaDescriptionLine != nil {
			d.log.Tracef("media section %d: %s %s, %d attributes",
				i, m.MediaDescriptionLine.MediaType, m.MediaDescriptionLine.Proto, len(m.AttributeLines))
		}
	}

	return &doc, nil
}
