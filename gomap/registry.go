package gomap

import (
	"fmt"
	"path"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/signadot/polywire/debug"
)

// Registry maps type identifiers to Go types and holds the descriptors which
// tell the converter how to construct registered types.
//
// A type identifier has the form
//
//	<package path>.<type name>, <assembly>, Version=<version>, Culture=neutral, PublicKeyToken=null
//
// The assembly defaults to the last element of the package path and the
// version to 1.0.0.0; both can be set per registry.
type Registry struct {
	mu       sync.RWMutex
	version  string
	assembly string

	byName  map[string]*typeInfo
	byShort map[string]*typeInfo
	byType  map[reflect.Type]*typeInfo

	members sync.Map // memberKey -> []member
}

type typeInfo struct {
	Type reflect.Type
	Name string
	desc *Descriptor
	enum *enumInfo
}

type RegistryOption func(*Registry)

// RegistryVersion sets the version written in type identifiers.
func RegistryVersion(v string) RegistryOption {
	return func(r *Registry) { r.version = v }
}

// RegistryAssembly sets the assembly written in type identifiers, in place of
// the last element of each type's package path.
func RegistryAssembly(a string) RegistryOption {
	return func(r *Registry) { r.assembly = a }
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		version: "1.0.0.0",
		byName:  map[string]*typeInfo{},
		byShort: map[string]*typeInfo{},
		byType:  map[reflect.Type]*typeInfo{},
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, t := range builtinTypes {
		r.add(&typeInfo{Type: t})
	}
	return r
}

var builtinTypes = []reflect.Type{
	reflect.TypeFor[bool](),
	reflect.TypeFor[string](),
	reflect.TypeFor[int](),
	reflect.TypeFor[int8](),
	reflect.TypeFor[int16](),
	reflect.TypeFor[int32](),
	reflect.TypeFor[int64](),
	reflect.TypeFor[uint](),
	reflect.TypeFor[uint8](),
	reflect.TypeFor[uint16](),
	reflect.TypeFor[uint32](),
	reflect.TypeFor[uint64](),
	reflect.TypeFor[float32](),
	reflect.TypeFor[float64](),
	reflect.TypeFor[any](),
	reflect.TypeFor[time.Time](),
	reflect.TypeFor[time.Duration](),
	reflect.TypeFor[uuid.UUID](),
	reflect.TypeFor[OffsetTime](),
}

var defaultRegistry = NewRegistry()

// DefaultRegistry is the process wide registry used when no registry option
// is given.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// IsTypeIdentifier reports whether s looks like a type identifier, that is
// whether it contains "Version=", "Culture=" and "PublicKeyToken=".
func IsTypeIdentifier(s string) bool {
	return strings.Contains(s, "Version=") &&
		strings.Contains(s, "Culture=") &&
		strings.Contains(s, "PublicKeyToken=")
}

// baseType strips pointers from t.
func baseType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func typeName(t reflect.Type) string {
	t = baseType(t)
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// shortName returns the type name part of a type identifier, which ends at
// the first comma outside the brackets of type arguments.
func shortName(id string) string {
	depth := 0
	for i := 0; i < len(id); i++ {
		switch id[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(id[:i])
			}
		}
	}
	return strings.TrimSpace(id)
}

// QualifiedName returns the type identifier of t. Pointer types have the
// identifier of the type they point to.
func (r *Registry) QualifiedName(t reflect.Type) string {
	r.mu.RLock()
	info := r.byType[t]
	if info == nil {
		info = r.byType[baseType(t)]
	}
	r.mu.RUnlock()
	if info != nil {
		return info.Name
	}
	return r.qualify(t)
}

func (r *Registry) qualify(t reflect.Type) string {
	bt := baseType(t)
	asm := r.assembly
	if asm == "" {
		if bt.PkgPath() == "" {
			asm = "builtin"
		} else {
			asm = path.Base(bt.PkgPath())
		}
	}
	return fmt.Sprintf("%s, %s, Version=%s, Culture=neutral, PublicKeyToken=null", typeName(bt), asm, r.version)
}

// Resolve returns the type registered under id. If no type has exactly that
// identifier, a type with the same type name part is accepted, so identifiers
// written with another version or assembly still resolve.
func (r *Registry) Resolve(id string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info := r.byName[id]
	if info == nil {
		info = r.byShort[shortName(id)]
	}
	if debug.Registry() {
		debug.Logf("resolve %q -> %v\n", id, info != nil)
	}
	if info == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, id)
	}
	return info.Type, nil
}

// Register adds the type of sample to r. Options give an explicit identifier,
// constructors and properties.
func (r *Registry) Register(sample any, opts ...RegisterOption) error {
	if sample == nil {
		return fmt.Errorf("%w: nil sample", ErrRegister)
	}
	return r.RegisterType(reflect.TypeOf(sample), opts...)
}

// RegisterType is like Register, given the type.
func (r *Registry) RegisterType(t reflect.Type, opts ...RegisterOption) error {
	bt := baseType(t)
	ro := &registerOpts{}
	for _, opt := range opts {
		opt(ro)
	}
	info := &typeInfo{Type: t, Name: ro.name}
	if info.Name != "" && !IsTypeIdentifier(info.Name) {
		return fmt.Errorf("%w: %q is not a type identifier", ErrRegister, info.Name)
	}
	if len(ro.descOpts) != 0 {
		if bt.Kind() != reflect.Struct {
			return fmt.Errorf("%w: constructors and properties need a struct type, got %s", ErrRegister, t)
		}
		desc, err := newDescriptor(bt, ro.descOpts)
		if err != nil {
			return err
		}
		info.desc = desc
	}
	return r.add(info)
}

// Register adds the type of sample to the default registry. It panics on
// error.
func Register(sample any, opts ...RegisterOption) {
	if err := defaultRegistry.Register(sample, opts...); err != nil {
		panic(err)
	}
}

func (r *Registry) add(info *typeInfo) error {
	if info.Name == "" {
		info.Name = r.qualify(info.Type)
	}
	bt := baseType(info.Type)
	r.mu.Lock()
	defer r.mu.Unlock()
	if dup := r.byName[info.Name]; dup != nil && baseType(dup.Type) != bt {
		return fmt.Errorf("%w: %s: identifier %q already used by %s", ErrRegister, info.Type, info.Name, dup.Type)
	}
	if prev := r.byType[bt]; prev != nil {
		if info.desc == nil {
			info.desc = prev.desc
		}
		if info.enum == nil {
			info.enum = prev.enum
		}
	}
	if debug.Registry() {
		debug.Logf("register %s as %q\n", info.Type, info.Name)
	}
	r.byName[info.Name] = info
	r.byShort[shortName(info.Name)] = info
	r.byType[bt] = info
	if info.Type != bt {
		r.byType[info.Type] = info
	}
	return nil
}

// observe records t, which is the runtime type of a value written in an
// envelope, so that text written by this process can be read back without
// registration. It returns the identifier of t.
func (r *Registry) observe(t reflect.Type) string {
	r.mu.RLock()
	info := r.byType[t]
	if info == nil {
		info = r.byType[baseType(t)]
	}
	r.mu.RUnlock()
	if info != nil {
		return info.Name
	}
	info = &typeInfo{Type: t}
	if err := r.add(info); err != nil {
		// identifier clash: keep the earlier registration
		return r.qualify(t)
	}
	return info.Name
}

func (r *Registry) info(t reflect.Type) *typeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byType[baseType(t)]
}

func (r *Registry) descriptor(t reflect.Type) *Descriptor {
	info := r.info(t)
	if info == nil {
		return nil
	}
	return info.desc
}

func (r *Registry) enumFor(t reflect.Type) *enumInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info := r.byType[t]
	if info == nil {
		return nil
	}
	return info.enum
}
