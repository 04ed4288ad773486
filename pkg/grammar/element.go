// Package grammar contains a recognizer of SDP documents.
//
// The grammar is made of elements that are tried in a fixed order against
// the input; alternatives are ordered choices where the first match wins.
// A successful match yields a tree of named fields.
package grammar

import (
	"strconv"
	"strings"

	"github.com/bluenviron/sdpgrammar/pkg/liberrors"
)

type state struct {
	in string

	// farthest position where a match failed, and what was expected there.
	farthest int
	expected []string
}

func (s *state) fail(pos int, what string) {
	switch {
	case pos > s.farthest:
		s.farthest = pos
		s.expected = []string{what}

	case pos == s.farthest:
		for _, e := range s.expected {
			if e == what {
				return
			}
		}
		s.expected = append(s.expected, what)
	}
}

func (s *state) mismatch() error {
	pos := s.farthest
	if pos < 0 {
		pos = 0
	}

	lineStart := strings.LastIndexByte(s.in[:pos], '\n') + 1

	lineEnd := strings.IndexByte(s.in[pos:], '\n')
	if lineEnd < 0 {
		lineEnd = len(s.in)
	} else {
		lineEnd += pos
	}

	return liberrors.ErrGrammarMismatch{
		Line:     strings.Count(s.in[:lineStart], "\n") + 1,
		Column:   pos - lineStart + 1,
		Text:     strings.TrimRight(s.in[lineStart:lineEnd], "\r"),
		Expected: s.expected,
	}
}

// element is a recognizer.
// On success, it returns the position after the match and out with the
// produced fields appended. On failure, it returns pos and out untouched.
type element interface {
	match(s *state, pos int, out Fields) (int, Fields, bool)
}

type literal string

func (l literal) match(s *state, pos int, out Fields) (int, Fields, bool) {
	if strings.HasPrefix(s.in[pos:], string(l)) {
		return pos + len(l), out, true
	}
	s.fail(pos, strconv.Quote(string(l)))
	return pos, out, false
}

// oneOf matches the first of a list of literals.
// A literal must never be a prefix of a literal that comes after it.
type oneOf struct {
	label string
	alts  []string
}

func (o oneOf) match(s *state, pos int, out Fields) (int, Fields, bool) {
	for _, alt := range o.alts {
		if strings.HasPrefix(s.in[pos:], alt) {
			return pos + len(alt), out, true
		}
	}
	s.fail(pos, o.label)
	return pos, out, false
}

// charRun matches the longest run of accepted characters.
type charRun struct {
	label  string
	accept func(byte) bool
	max    int
}

func (c charRun) match(s *state, pos int, out Fields) (int, Fields, bool) {
	n := 0
	for pos+n < len(s.in) && c.accept(s.in[pos+n]) && (c.max == 0 || n < c.max) {
		n++
	}

	if n == 0 {
		s.fail(pos, c.label)
		return pos, out, false
	}
	return pos + n, out, true
}

// restOfLine matches the remainder of the line, verbatim.
type restOfLine struct {
	min int
}

func (t restOfLine) match(s *state, pos int, out Fields) (int, Fields, bool) {
	end := pos
	for end < len(s.in) && s.in[end] != '\r' && s.in[end] != '\n' {
		end++
	}

	if end-pos < t.min {
		s.fail(pos, "text")
		return pos, out, false
	}
	return end, out, true
}

// eol matches optional blanks followed by a line terminator or the end of input.
type eol struct{}

func (eol) match(s *state, pos int, out Fields) (int, Fields, bool) {
	cur := pos
	for cur < len(s.in) && isBlank(s.in[cur]) {
		cur++
	}

	switch {
	case cur == len(s.in):
		return cur, out, true

	case s.in[cur] == '\n':
		return cur + 1, out, true

	case s.in[cur] == '\r' && cur+1 < len(s.in) && s.in[cur+1] == '\n':
		return cur + 2, out, true
	}

	s.fail(cur, "end of line")
	return pos, out, false
}

// linePrefix matches the type tag of a line, skipping empty lines before it.
type linePrefix string

func (l linePrefix) match(s *state, pos int, out Fields) (int, Fields, bool) {
	cur := pos
	for {
		switch {
		case strings.HasPrefix(s.in[cur:], "\n"):
			cur++
			continue

		case strings.HasPrefix(s.in[cur:], "\r\n"):
			cur += 2
			continue
		}
		break
	}

	next, out, ok := literal(l).match(s, cur, out)
	if !ok {
		return pos, out, false
	}
	return next, out, true
}

// endOfInput matches trailing whitespace and the end of input.
type endOfInput struct{}

func (endOfInput) match(s *state, pos int, out Fields) (int, Fields, bool) {
	cur := pos
	for cur < len(s.in) && strings.IndexByte(" \t\r\n", s.in[cur]) >= 0 {
		cur++
	}

	if cur != len(s.in) {
		s.fail(cur, "end of input")
		return pos, out, false
	}
	return cur, out, true
}

type sequence []element

func seq(elems ...element) sequence {
	return sequence(elems)
}

func (q sequence) match(s *state, pos int, out Fields) (int, Fields, bool) {
	cur := pos
	res := out

	for _, e := range q {
		var ok bool
		cur, res, ok = e.match(s, cur, res)
		if !ok {
			return pos, out, false
		}
	}

	return cur, res, true
}

// choice is an ordered choice: the first alternative that matches is
// committed to, even if a later one would match more input.
type choice []element

func first(elems ...element) choice {
	return choice(elems)
}

func (c choice) match(s *state, pos int, out Fields) (int, Fields, bool) {
	for _, e := range c {
		if end, res, ok := e.match(s, pos, out); ok {
			return end, res, true
		}
	}
	return pos, out, false
}

type optional struct {
	e element
}

func opt(e element) optional {
	return optional{e}
}

func (o optional) match(s *state, pos int, out Fields) (int, Fields, bool) {
	end, res, ok := o.e.match(s, pos, out)
	if !ok {
		return pos, out, true
	}
	return end, res, true
}

type repeat struct {
	e   element
	min int
}

func zeroOrMore(e element) repeat {
	return repeat{e: e}
}

func oneOrMore(e element) repeat {
	return repeat{e: e, min: 1}
}

func (r repeat) match(s *state, pos int, out Fields) (int, Fields, bool) {
	cur := pos
	res := out
	n := 0

	for {
		end, next, ok := r.e.match(s, cur, res)
		if !ok || end == cur {
			break
		}
		cur, res = end, next
		n++
	}

	if n < r.min {
		return pos, out, false
	}
	return cur, res, true
}

// capture stores the text matched by an element into a scalar field.
type capture struct {
	name     Name
	e        element
	repeated bool
}

func named(name Name, e element) capture {
	return capture{name: name, e: e}
}

// namedEach is like named, but all matches are collected into a list.
func namedEach(name Name, e element) capture {
	return capture{name: name, e: e, repeated: true}
}

func (c capture) match(s *state, pos int, out Fields) (int, Fields, bool) {
	end, _, ok := c.e.match(s, pos, nil)
	if !ok {
		return pos, out, false
	}

	return end, append(out, Field{
		Name:     c.name,
		Kind:     KindScalar,
		Value:    s.in[pos:end],
		repeated: c.repeated,
	}), true
}

// group stores the fields produced by an element into a nested field.
type group struct {
	name     Name
	e        element
	repeated bool
}

func grouped(name Name, e element) group {
	return group{name: name, e: e}
}

// groupedEach is like grouped, but all matches are collected into a list.
func groupedEach(name Name, e element) group {
	return group{name: name, e: e, repeated: true}
}

func (g group) match(s *state, pos int, out Fields) (int, Fields, bool) {
	end, sub, ok := g.e.match(s, pos, nil)
	if !ok {
		return pos, out, false
	}

	return end, append(out, Field{
		Name:     g.name,
		Kind:     KindGroup,
		Group:    sub.merge(),
		repeated: g.repeated,
	}), true
}
