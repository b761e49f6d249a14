package gomap

import (
	"reflect"
	"slices"
	"strings"
)

// member is a field or a property of a struct type.
type member struct {
	Name  string
	Type  reflect.Type
	Index []int     // fields
	prop  *property // properties
}

func (m *member) get(v reflect.Value) reflect.Value {
	if m.prop != nil {
		return m.prop.value(v)
	}
	return v.FieldByIndex(m.Index)
}

// set assigns x to the member of the addressable struct v.
func (m *member) set(v, x reflect.Value) error {
	if m.prop != nil {
		return m.prop.assign(v, x)
	}
	v.FieldByIndex(m.Index).Set(x)
	return nil
}

type memberKey struct {
	t   reflect.Type
	tag string
}

// readMembers returns the members written for struct type t: its exported
// fields, or if there are none, its readable properties.
func (r *Registry) readMembers(t reflect.Type, tag string) []member {
	fields := r.fields(t, tag)
	if len(fields) != 0 {
		return fields
	}
	desc := r.descriptor(t)
	if desc == nil {
		return nil
	}
	var res []member
	for _, p := range desc.props {
		if !p.get.IsValid() {
			continue
		}
		res = append(res, member{Name: p.name, Type: p.typ, prop: p})
	}
	return res
}

// writableMember finds the field or settable property of t called name,
// preferring an exact match to a case insensitive one.
func (r *Registry) writableMember(t reflect.Type, tag, name string) *member {
	fields := r.fields(t, tag)
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	if p := r.descriptor(t).property(name); p != nil && p.set.IsValid() {
		return &member{Name: p.name, Type: p.typ, prop: p}
	}
	for i := range fields {
		if strings.EqualFold(fields[i].Name, name) {
			return &fields[i]
		}
	}
	return nil
}

func (r *Registry) fields(t reflect.Type, tag string) []member {
	key := memberKey{t: t, tag: tag}
	if ms, ok := r.members.Load(key); ok {
		return ms.([]member)
	}
	ms := fieldsToSerialize(t, tag)
	r.members.Store(key, ms)
	return ms
}

// fieldsToSerialize walks the exported fields of ty breadth first, promoting
// the fields of embedded structs. When several fields share a name, the least
// nested one wins; ties are broken by an explicit tag, and otherwise the name
// is dropped.
func fieldsToSerialize(ty reflect.Type, structTag string) []member {
	if ty.Kind() != reflect.Struct {
		panic("not a struct")
	}

	type Queued struct {
		Type        reflect.Type
		ParentIndex []int
	}

	type Candidate struct {
		Name     string
		Explicit bool
		Field    member
	}

	queue := []Queued{{Type: ty}}
	candidates := map[string][]Candidate{}
	var order []string

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for idx := range item.Type.NumField() {
			fi := item.Type.Field(idx)
			if !fi.IsExported() {
				continue
			}

			name, explicit := nameOf(fi, structTag)
			if name == "" {
				continue
			}

			// new backing array per field, as sibling fields share the parent
			parent := item.ParentIndex
			index := append(parent[:len(parent):len(parent)], fi.Index...)

			// untagged embedded structs are flattened into their parent
			if fi.Anonymous && !explicit {
				if fi.Type.Kind() != reflect.Struct {
					continue
				}
				queue = append(queue, Queued{fi.Type, index})
				continue
			}

			if len(candidates[name]) == 0 {
				order = append(order, name)
			}

			candidates[name] = append(candidates[name], Candidate{
				Name:     name,
				Explicit: explicit,
				Field: member{
					Name:  name,
					Index: index,
					Type:  fi.Type,
				},
			})
		}
	}

	var fields []member

	for _, name := range order {
		candidates := candidates[name]

		// candidates were found breadth first, so they are sorted by index
		// length; the visible ones are the prefix at the shallowest depth
		var visible []Candidate
		for idx := 0; idx < len(candidates); idx++ {
			if len(candidates[idx].Field.Index) == len(candidates[0].Field.Index) {
				visible = candidates[:idx+1]
			}
		}

		// a single field at the shallowest depth always wins
		if len(visible) == 1 {
			fields = append(fields, visible[0].Field)
			continue
		}

		// among several, only a single tagged one may claim the name
		explicit := slices.DeleteFunc(slices.Clone(visible), func(c Candidate) bool { return !c.Explicit })
		if len(explicit) == 1 {
			fields = append(fields, explicit[0].Field)
			continue
		}

		// the name is ambiguous: writing any one of the fields would silently
		// hide the others, so none is written and no error is raised
	}

	return fields
}

// nameOf returns the member name of fi from its struct tag. A tag of "-"
// gives no name; options after a comma are ignored.
func nameOf(fi reflect.StructField, structTag string) (name string, explicit bool) {
	tag := fi.Tag.Get(structTag)

	if tag == "" {
		return fi.Name, false
	}

	if tag == "-" {
		return "", true
	}

	idx := strings.IndexByte(tag, ',')
	switch {
	case idx == -1:
		return tag, true

	case idx > 0:
		return tag[:idx], true

	default:
		return fi.Name, false
	}
}
