package action

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/reoring/wpml"
)

var (
	// ErrUnknownShape is returned when an action value's type is not registered.
	ErrUnknownShape = errors.New("action: unknown or ambiguous action shape")
	// ErrKindMismatch is returned when a kind tag disagrees with the action type.
	ErrKindMismatch = errors.New("action: kind does not match action type")
	// ErrFrozen is returned by Register after Freeze.
	ErrFrozen = errors.New("action: registry is frozen")
	// ErrDuplicateKind is returned when a kind or a type is registered twice.
	ErrDuplicateKind = errors.New("action: kind already registered")
)

// Descriptor describes one registered action kind.
type Descriptor struct {
	Kind Kind
	Type reflect.Type
	// Params lists the parameter fields in wire order.
	Params []wpml.FieldInfo

	encode func(Action) *wpml.OrderedMap
	decode func(*wpml.OrderedMap) (Action, error)
	check  func(Action) (Action, error)
	zero   func() Action
}

// Default returns the action of this kind with every parameter at its default.
func (d *Descriptor) Default() Action { return d.zero() }

// Registry maps kind tags to action types. Populate it at startup, then call
// Freeze; a frozen registry is read-only and safe to share between goroutines.
type Registry struct {
	kinds  map[Kind]*Descriptor
	shapes map[reflect.Type]Kind
	order  []Kind
	frozen bool
}

// NewEmptyRegistry returns a registry without any kinds.
func NewEmptyRegistry() *Registry {
	return &Registry{kinds: map[Kind]*Descriptor{}, shapes: map[reflect.Type]Kind{}}
}

// NewRegistry returns a registry holding the built-in kinds. It is not frozen
// so callers may add their own kinds first.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, reg := range builtins {
		if err := reg(r); err != nil {
			panic(err)
		}
	}
	return r
}

var builtins = []func(*Registry) error{
	func(r *Registry) error { return Register(r, KindTakePhoto, TakePhotoSchema) },
	func(r *Registry) error { return Register(r, KindStartRecord, StartRecordSchema) },
	func(r *Registry) error { return Register(r, KindStopRecord, StopRecordSchema) },
	func(r *Registry) error { return Register(r, KindGimbalRotate, GimbalRotateSchema) },
	func(r *Registry) error { return Register(r, KindGimbalEvenlyRotate, GimbalEvenlyRotateSchema) },
	func(r *Registry) error { return Register(r, KindHover, HoverSchema) },
	func(r *Registry) error { return Register(r, KindRotateYaw, RotateYawSchema) },
	func(r *Registry) error { return Register(r, KindFocus, FocusSchema) },
	func(r *Registry) error { return Register(r, KindZoom, ZoomSchema) },
	func(r *Registry) error { return Register(r, KindAccurateShoot, AccurateShootSchema) },
	func(r *Registry) error { return Register(r, KindOrientedShoot, OrientedShootSchema) },
	func(r *Registry) error { return Register(r, KindPanoShot, PanoShotSchema) },
	func(r *Registry) error { return Register(r, KindRecordPointCloud, RecordPointCloudSchema) },
}

// Register adds kind with the parameter schema of A. The zero value of A must
// report kind from its Kind method.
func Register[A Action](r *Registry, kind Kind, s *wpml.Schema[A]) error {
	if r.frozen {
		return ErrFrozen
	}
	var zero A
	if zero.Kind() != kind {
		return fmt.Errorf("%w: %T reports %q, registering %q", ErrKindMismatch, zero, zero.Kind(), kind)
	}
	typ := reflect.TypeOf(zero)
	if _, dup := r.kinds[kind]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	if k, dup := r.shapes[typ]; dup {
		return fmt.Errorf("%w: %v is already registered as %q", ErrDuplicateKind, typ, k)
	}
	r.kinds[kind] = &Descriptor{
		Kind:   kind,
		Type:   typ,
		Params: s.Fields(),
		encode: func(a Action) *wpml.OrderedMap { return s.Encode(a.(A)) },
		decode: func(m *wpml.OrderedMap) (Action, error) {
			v, err := s.Decode(m)
			return v, err
		},
		check: func(a Action) (Action, error) {
			v, err := s.Check(a.(A))
			return v, err
		},
		zero: func() Action { return s.Default() },
	}
	r.shapes[typ] = kind
	r.order = append(r.order, kind)
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() *Registry {
	r.frozen = true
	return r
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool { return r.frozen }

// Kinds lists the registered kinds in registration order.
func (r *Registry) Kinds() []Kind { return append([]Kind(nil), r.order...) }

func (r *Registry) known() []string {
	out := make([]string, len(r.order))
	for i, k := range r.order {
		out[i] = string(k)
	}
	return out
}

// Resolve returns the descriptor of kind.
func (r *Registry) Resolve(kind Kind) (*Descriptor, error) {
	d, ok := r.kinds[kind]
	if !ok {
		return nil, &wpml.UnknownActionKindError{Kind: string(kind), Known: r.known()}
	}
	return d, nil
}

// Identify returns the kind registered for the type of a.
func (r *Registry) Identify(a Action) (Kind, error) {
	if a == nil {
		return "", ErrUnknownShape
	}
	k, ok := r.shapes[reflect.TypeOf(a)]
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnknownShape, a)
	}
	return k, nil
}

// Build validates a and returns the checked action.
func (r *Registry) Build(a Action) (Action, error) {
	k, err := r.Identify(a)
	if err != nil {
		return a, err
	}
	return r.build(k, a)
}

// BuildAs is Build for callers that state the kind explicitly. A kind that
// differs from the one registered for a's type is an error.
func (r *Registry) BuildAs(kind Kind, a Action) (Action, error) {
	k, err := r.Identify(a)
	if err != nil {
		return a, err
	}
	if kind != "" && kind != k {
		return a, fmt.Errorf("%w: %T is %q, not %q", ErrKindMismatch, a, k, kind)
	}
	return r.build(k, a)
}

func (r *Registry) build(k Kind, a Action) (Action, error) {
	iss := checkID(a.ActionID())
	v, err := r.kinds[k].check(a)
	if err != nil {
		iss = append(iss, wpml.Rebase("/"+WireParams, asIssues(err))...)
	}
	if len(iss) > 0 {
		return v, iss
	}
	return v, nil
}

// Check validates every action of a slice and reports issues under /i.
func (r *Registry) Check(actions []Action) ([]Action, error) {
	out := make([]Action, len(actions))
	var iss wpml.Issues
	for i, a := range actions {
		v, err := r.Build(a)
		if err != nil {
			ai, ok := wpml.AsIssues(err)
			if !ok {
				return nil, err
			}
			iss = append(iss, wpml.Rebase(wpml.Root().Index(i).Pointer(), ai)...)
		}
		out[i] = v
	}
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// Encode writes the header block followed by the parameter block. It fails
// only for unregistered action types.
func (r *Registry) Encode(a Action) (*wpml.OrderedMap, error) {
	k, err := r.Identify(a)
	if err != nil {
		return nil, err
	}
	return wpml.NewOrderedMap().
		Set(WireID, a.ActionID()).
		Set(WireKind, string(k)).
		Set(WireParams, r.kinds[k].encode(a)), nil
}

// Decode reads an action. The kind tag is resolved first; an unknown or
// missing tag is returned as *wpml.UnknownActionKindError. A missing
// parameter block means every parameter keeps its default.
func (r *Registry) Decode(m *wpml.OrderedMap) (Action, error) {
	raw, ok := m.Lookup(WireKind)
	tag, _ := wpml.ToString(raw)
	if !ok || tag == "" {
		return nil, &wpml.UnknownActionKindError{Known: r.known()}
	}
	d, err := r.Resolve(Kind(tag))
	if err != nil {
		return nil, err
	}

	var iss wpml.Issues
	id := 0
	if raw, ok := m.Lookup(WireID); ok {
		n, err := wpml.ToInt(raw)
		if err != nil {
			iss = append(iss, wpml.DecodeIssue(WireID, raw, err)...)
		} else {
			id = n
			iss = append(iss, checkID(n)...)
		}
	}

	params := wpml.NewOrderedMap()
	if raw, ok := m.Lookup(WireParams); ok {
		pm, err := wpml.AsMap(raw)
		if err != nil {
			iss = append(iss, wpml.DecodeIssue(WireParams, raw, err)...)
		} else {
			params = pm
		}
	}
	a, err := d.decode(params)
	if err != nil {
		pi, ok := wpml.AsIssues(err)
		if !ok {
			return nil, err
		}
		iss = append(iss, wpml.Rebase("/"+WireParams, pi)...)
	}
	a = a.WithID(id)
	if len(iss) > 0 {
		return a, iss
	}
	return a, nil
}

func checkID(id int) wpml.Issues {
	if IDBounds.Contains(float64(id)) {
		return nil
	}
	return wpml.Issues{wpml.OutOfRangeIssue(WireID, IDBounds, id)}
}

func asIssues(err error) wpml.Issues {
	if iss, ok := wpml.AsIssues(err); ok {
		return iss
	}
	return wpml.Issues{{Path: "/", Code: wpml.CodeInvalidType, Message: err.Error(), Cause: err}}
}
