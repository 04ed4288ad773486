package sdp

import (
	"fmt"

	"github.com/bluenviron/sdpgrammar/pkg/grammar"
	"github.com/bluenviron/sdpgrammar/pkg/liberrors"
)

// slot binds a field of a parse result to a member of a node.
type slot interface {
	set(node grammar.Name, f grammar.Field) error
	get() (grammar.Field, bool)
}

type namedSlot struct {
	name grammar.Name
	slot slot
}

// node is a typed element of a document.
// Its slots are the catalog of fields it accepts, in canonical order.
type node interface {
	slots() []namedSlot
}

type nodePtr[T any] interface {
	*T
	node
}

// validator is implemented by nodes with constraints that span their fields.
type validator interface {
	validate(name grammar.Name) error
}

func unexpectedField(name grammar.Name, f grammar.Field) error {
	return liberrors.ErrStructuralInvariant{
		Node:   string(name),
		Reason: fmt.Sprintf("unexpected field '%s'", f.Name),
	}
}

func checkKind(name grammar.Name, f grammar.Field, kind grammar.Kind) error {
	if f.Kind != kind {
		return liberrors.ErrStructuralInvariant{
			Node:   string(name),
			Reason: fmt.Sprintf("field '%s' is a %s, expected a %s", f.Name, f.Kind, kind),
		}
	}
	return nil
}

func indexOfSlot(slots []namedSlot, name grammar.Name) int {
	for i, s := range slots {
		if s.name == name {
			return i
		}
	}
	return -1
}

// buildNode fills a node with the fields of a parse result.
func buildNode(name grammar.Name, n node, fs grammar.Fields) error {
	slots := n.slots()
	seen := make([]bool, len(slots))

	for _, f := range fs {
		i := indexOfSlot(slots, f.Name)
		if i < 0 {
			return unexpectedField(name, f)
		}

		if seen[i] {
			return liberrors.ErrStructuralInvariant{
				Node:   string(name),
				Reason: fmt.Sprintf("duplicate field '%s'", f.Name),
			}
		}
		seen[i] = true

		err := slots[i].slot.set(name, f)
		if err != nil {
			return err
		}
	}

	if v, ok := n.(validator); ok {
		return v.validate(name)
	}

	return nil
}

// nodeFields is the inverse of buildNode.
func nodeFields(n node) grammar.Fields {
	var ret grammar.Fields

	for _, s := range n.slots() {
		f, ok := s.slot.get()
		if !ok {
			continue
		}
		f.Name = s.name
		ret = append(ret, f)
	}

	return ret
}

func hasField(n node, name grammar.Name) bool {
	slots := n.slots()
	i := indexOfSlot(slots, name)
	if i < 0 {
		return false
	}
	_, ok := slots[i].slot.get()
	return ok
}

type scalar struct {
	p *string
}

func (s scalar) set(node grammar.Name, f grammar.Field) error {
	err := checkKind(node, f, grammar.KindScalar)
	if err != nil {
		return err
	}
	*s.p = f.Value
	return nil
}

func (s scalar) get() (grammar.Field, bool) {
	return grammar.Field{Kind: grammar.KindScalar, Value: *s.p}, true
}

type optional struct {
	p **string
}

func (s optional) set(node grammar.Name, f grammar.Field) error {
	err := checkKind(node, f, grammar.KindScalar)
	if err != nil {
		return err
	}
	v := f.Value
	*s.p = &v
	return nil
}

func (s optional) get() (grammar.Field, bool) {
	if *s.p == nil {
		return grammar.Field{}, false
	}
	return grammar.Field{Kind: grammar.KindScalar, Value: **s.p}, true
}

type list struct {
	p *[]string
}

func (s list) set(node grammar.Name, f grammar.Field) error {
	err := checkKind(node, f, grammar.KindList)
	if err != nil {
		return err
	}
	*s.p = append([]string(nil), f.Values...)
	return nil
}

func (s list) get() (grammar.Field, bool) {
	if *s.p == nil {
		return grammar.Field{}, false
	}
	return grammar.Field{Kind: grammar.KindList, Values: *s.p}, true
}

// keyword is a scalar that can only have a fixed value.
type keyword string

func (s keyword) set(node grammar.Name, f grammar.Field) error {
	err := checkKind(node, f, grammar.KindScalar)
	if err != nil {
		return err
	}

	if f.Value != string(s) {
		return liberrors.ErrStructuralInvariant{
			Node:   string(node),
			Reason: fmt.Sprintf("field '%s' is '%s', expected '%s'", f.Name, f.Value, string(s)),
		}
	}

	return nil
}

func (s keyword) get() (grammar.Field, bool) {
	return grammar.Field{Kind: grammar.KindScalar, Value: string(s)}, true
}

type child[T any, P nodePtr[T]] struct {
	p **T
}

func childSlot[T any, P nodePtr[T]](p **T) slot {
	return child[T, P]{p: p}
}

func (s child[T, P]) set(node grammar.Name, f grammar.Field) error {
	err := checkKind(node, f, grammar.KindGroup)
	if err != nil {
		return err
	}

	n := P(new(T))
	err = buildNode(f.Name, n, f.Group)
	if err != nil {
		return err
	}

	*s.p = n
	return nil
}

func (s child[T, P]) get() (grammar.Field, bool) {
	if *s.p == nil {
		return grammar.Field{}, false
	}
	return grammar.Field{Kind: grammar.KindGroup, Group: nodeFields(P(*s.p))}, true
}

type children[S ~[]*T, T any, P nodePtr[T]] struct {
	p *S
}

func childrenSlot[S ~[]*T, T any, P nodePtr[T]](p *S) slot {
	return children[S, T, P]{p: p}
}

func (s children[S, T, P]) set(node grammar.Name, f grammar.Field) error {
	err := checkKind(node, f, grammar.KindGroupList)
	if err != nil {
		return err
	}

	ret := make(S, len(f.Groups))

	for i, g := range f.Groups {
		n := P(new(T))
		err = buildNode(f.Name, n, g)
		if err != nil {
			return err
		}
		ret[i] = n
	}

	*s.p = ret
	return nil
}

func (s children[S, T, P]) get() (grammar.Field, bool) {
	if len(*s.p) == 0 {
		return grammar.Field{}, false
	}

	groups := make([]grammar.Fields, len(*s.p))
	for i, n := range *s.p {
		groups[i] = nodeFields(P(n))
	}

	return grammar.Field{Kind: grammar.KindGroupList, Groups: groups}, true
}

type attributePtr[T any] interface {
	*T
	Attribute
}

// variant binds one of the alternatives of a sum type.
type variant[T any, P attributePtr[T]] struct {
	p *Attribute
}

func variantSlot[T any, P attributePtr[T]](p *Attribute) slot {
	return variant[T, P]{p: p}
}

func (s variant[T, P]) set(node grammar.Name, f grammar.Field) error {
	err := checkKind(node, f, grammar.KindGroup)
	if err != nil {
		return err
	}

	if *s.p != nil {
		return liberrors.ErrStructuralInvariant{
			Node:   string(node),
			Reason: fmt.Sprintf("'%s' found, but the line is already a '%s'", f.Name, (*s.p).Kind()),
		}
	}

	n := P(new(T))
	err = buildNode(f.Name, n, f.Group)
	if err != nil {
		return err
	}

	*s.p = n
	return nil
}

func (s variant[T, P]) get() (grammar.Field, bool) {
	n, ok := (*s.p).(P)
	if !ok {
		return grammar.Field{}, false
	}
	return grammar.Field{Kind: grammar.KindGroup, Group: nodeFields(n)}, true
}
