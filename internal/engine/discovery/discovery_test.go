package discovery_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/engine/discovery"
)

type FieldsOnly struct {
	A int
	B string
	c bool
}

type Namer interface {
	Name() string
}

type Person struct {
	Namer
	name string
}

func (p *Person) Name() string     { return p.name }
func (p *Person) SetName(n string) { p.name = n }

type Labeller interface {
	Label() string
}

type Tagged struct {
	Labeller
	ID int
}

type fixedLabel string

func (f fixedLabel) Label() string { return string(f) }

type Identified interface {
	ID() int
}

type Named interface {
	Name() string
	SetName(string)
}

type Entity interface {
	Identified
	Named
	Touch()
}

type List struct {
	items []string
}

func (l *List) At(i int) string { return l.items[i] }
func (l *List) Len() int        { return len(l.items) }
func (l *List) Reset()          { l.items = nil }

type Counter struct {
	n int
}

func (c *Counter) Count() int            { return c.n }
func (c *Counter) Add(n int) int         { return c.n + n }
func (c *Counter) Clear()                { c.n = 0 }
func (c *Counter) Pair() (int, error)    { return c.n, nil }
func (c *Counter) Fail() error           { return nil }
func (c *Counter) SetLimit(n int) error  { return nil }
func (c *Counter) SetBroken(n int) error { return nil }

type Base struct {
	X int
}

type Derived struct {
	Base
	y int
}

func (d *Derived) Y() int     { return d.y }
func (d *Derived) SetY(y int) { d.y = y }

type ROName struct {
	n string
}

func (r ROName) Name() string { return r.n }

type RWName struct {
	n string
}

func (r *RWName) Name() string     { return r.n }
func (r *RWName) SetName(s string) { r.n = s }

// Ambiguous has two Name methods at the same depth, so Go promotes neither.
type Ambiguous struct {
	ROName
	RWName
}

type Outer struct {
	*Base
	Z int
}

type Shadow struct {
	Base
	X string
}

type Coded struct {
	n int
}

func (c *Coded) Code() int     { return c.n }
func (c *Coded) SetCode(n int) { c.n = n }

// ShadowedCode declares a Code of a different type over the promoted one.
type ShadowedCode struct {
	Coded
}

func (s *ShadowedCode) Code() string { return "shadowed" }

type badge struct {
	W int
}

type Sealed struct {
	*badge
	Y int
}

type Boom struct{}

func (Boom) Value() int { panic("boom") }

type summary struct {
	Name     string
	Kind     domain.MemberKind
	Declarer string
	Writable bool
}

func members(t *testing.T, d *discovery.Discoverer, typ reflect.Type) []summary {
	t.Helper()

	ti, err := d.Describe(typ)
	require.NoError(t, err)

	var out []summary
	for a := range ti.ReadAccessors() {
		out = append(out, summary{Name: a.Name(), Kind: a.Kind(), Declarer: a.Declarer(), Writable: a.Writable()})
	}
	return out
}

func methodNames(t *testing.T, d *discovery.Discoverer, typ reflect.Type) []string {
	t.Helper()

	ti, err := d.Describe(typ)
	require.NoError(t, err)

	var out []string
	for m := range ti.NoArgMethods() {
		out = append(out, m.Name())
	}
	return out
}

func accessor(t *testing.T, typ reflect.Type, name string) domain.ReadAccessor {
	t.Helper()

	ti, err := discovery.New().Describe(typ)
	require.NoError(t, err)
	a, ok := ti.ReadAccessor(name)
	require.True(t, ok, "accessor %s", name)
	return a
}

func TestDescribe_ReadAccessors(t *testing.T) {
	d := discovery.New()

	tests := []struct {
		name string
		typ  reflect.Type
		want []summary
	}{
		{
			name: "fields only",
			typ:  reflect.TypeFor[FieldsOnly](),
			want: []summary{
				{Name: "A", Kind: domain.KindField, Declarer: "FieldsOnly", Writable: true},
				{Name: "B", Kind: domain.KindField, Declarer: "FieldsOnly", Writable: true},
			},
		},
		{
			name: "read write declaration wins over embedded read only",
			typ:  reflect.TypeFor[Person](),
			want: []summary{
				{Name: "Name", Kind: domain.KindProperty, Declarer: "Person", Writable: true},
			},
		},
		{
			name: "property from embedded interface appears once",
			typ:  reflect.TypeFor[Tagged](),
			want: []summary{
				{Name: "Label", Kind: domain.KindProperty, Declarer: "Tagged"},
				{Name: "ID", Kind: domain.KindField, Declarer: "Tagged", Writable: true},
			},
		},
		{
			name: "indexed getter is excluded",
			typ:  reflect.TypeFor[List](),
			want: []summary{
				{Name: "Len", Kind: domain.KindProperty, Declarer: "List"},
			},
		},
		{
			name: "properties precede fields",
			typ:  reflect.TypeFor[Derived](),
			want: []summary{
				{Name: "Y", Kind: domain.KindProperty, Declarer: "Derived", Writable: true},
				{Name: "X", Kind: domain.KindField, Declarer: "Base", Writable: true},
			},
		},
		{
			name: "ambiguous promotion picks the read write declaration",
			typ:  reflect.TypeFor[Ambiguous](),
			want: []summary{
				{Name: "Name", Kind: domain.KindProperty, Declarer: "RWName", Writable: true},
			},
		},
		{
			name: "shadowed fields are not deduplicated",
			typ:  reflect.TypeFor[Shadow](),
			want: []summary{
				{Name: "X", Kind: domain.KindField, Declarer: "Shadow", Writable: true},
				{Name: "X", Kind: domain.KindField, Declarer: "Base", Writable: true},
			},
		},
		{
			name: "pointer is described through its element",
			typ:  reflect.TypeFor[**Derived](),
			want: []summary{
				{Name: "Y", Kind: domain.KindProperty, Declarer: "Derived", Writable: true},
				{Name: "X", Kind: domain.KindField, Declarer: "Base", Writable: true},
			},
		},
		{
			name: "read write property of embedded type wins over shadowing getter",
			typ:  reflect.TypeFor[ShadowedCode](),
			want: []summary{
				{Name: "Code", Kind: domain.KindProperty, Declarer: "Coded", Writable: true},
			},
		},
		{
			name: "field behind unexported embedded pointer is read only",
			typ:  reflect.TypeFor[Sealed](),
			want: []summary{
				{Name: "Y", Kind: domain.KindField, Declarer: "Sealed", Writable: true},
				{Name: "W", Kind: domain.KindField, Declarer: "badge"},
			},
		},
		{
			name: "write only setters are not readable",
			typ:  reflect.TypeFor[Counter](),
			want: []summary{
				{Name: "Count", Kind: domain.KindProperty, Declarer: "Counter"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, members(t, d, tt.typ))
		})
	}
}

func TestDescribe_InterfaceUnion(t *testing.T) {
	d := discovery.New(discovery.WithInterfaces(
		reflect.TypeFor[Identified](),
		reflect.TypeFor[Named](),
		reflect.TypeFor[int](),
	))

	got := members(t, d, reflect.TypeFor[Entity]())

	assert.Equal(t, []summary{
		{Name: "ID", Kind: domain.KindProperty, Declarer: "Entity"},
		{Name: "Name", Kind: domain.KindProperty, Declarer: "Entity", Writable: true},
	}, got)
}

func TestDescribe_NoArgMethods(t *testing.T) {
	d := discovery.New()

	assert.Equal(t, []string{"Count", "Fail", "Pair"}, methodNames(t, d, reflect.TypeFor[Counter]()))
	assert.Equal(t, []string{"Len"}, methodNames(t, d, reflect.TypeFor[List]()))
	assert.Equal(t, []string{"ID", "Name"}, methodNames(t, d, reflect.TypeFor[Entity]()))
	assert.Empty(t, methodNames(t, d, reflect.TypeFor[FieldsOnly]()))
}

func TestDescribe_Idempotent(t *testing.T) {
	d := discovery.New()
	typ := reflect.TypeFor[Tagged]()

	assert.Equal(t, members(t, d, typ), members(t, d, typ))
	assert.Equal(t, methodNames(t, d, typ), methodNames(t, d, typ))
}

func TestDescribe_NilType(t *testing.T) {
	_, err := discovery.New().Describe(nil)
	require.ErrorContains(t, err, domain.ErrNilType.Error())
}

func TestDescribe_CustomSetterPrefix(t *testing.T) {
	d := discovery.New(discovery.WithConventions(domain.Conventions{SetterPrefix: "Put"}))

	got := members(t, d, reflect.TypeFor[Derived]())
	require.Len(t, got, 2)
	assert.False(t, got[0].Writable)
}

func TestReadAccessor_Get(t *testing.T) {
	t.Run("field by value and pointer", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[FieldsOnly](), "B")
		f := FieldsOnly{B: "hello"}

		got, err := a.Get(f)
		require.NoError(t, err)
		assert.Equal(t, "hello", got)

		pf := &f
		got, err = a.Get(&pf)
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("promoted field", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[Derived](), "X")

		got, err := a.Get(Derived{Base: Base{X: 7}})
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("property on value instance", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[Derived](), "Y")

		got, err := a.Get(Derived{y: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("property promoted from embedded interface", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[Tagged](), "Label")

		got, err := a.Get(&Tagged{Labeller: fixedLabel("urgent")})
		require.NoError(t, err)
		assert.Equal(t, "urgent", got)
	})

	t.Run("ambiguous property calls the declaring receiver", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[Ambiguous](), "Name")

		got, err := a.Get(Ambiguous{ROName: ROName{n: "ro"}, RWName: RWName{n: "rw"}})
		require.NoError(t, err)
		assert.Equal(t, "rw", got)
	})

	t.Run("shadowed property reads the selected declaration", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[ShadowedCode](), "Code")
		assert.Equal(t, reflect.TypeFor[int](), a.Type())

		got, err := a.Get(ShadowedCode{Coded: Coded{n: 5}})
		require.NoError(t, err)
		assert.Equal(t, 5, got)
		assert.Equal(t, a.Type(), reflect.TypeOf(got))
	})

	t.Run("field behind unexported embedded pointer", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[Sealed](), "W")

		got, err := a.Get(Sealed{badge: &badge{W: 4}})
		require.NoError(t, err)
		assert.Equal(t, 4, got)

		_, err = a.Get(Sealed{})
		require.ErrorContains(t, err, domain.ErrNilEmbedded.Error())
	})

	t.Run("interface owner", func(t *testing.T) {
		ti, err := discovery.New().Describe(reflect.TypeFor[Labeller]())
		require.NoError(t, err)
		a, ok := ti.ReadAccessor("Label")
		require.True(t, ok)

		got, err := a.Get(fixedLabel("x"))
		require.NoError(t, err)
		assert.Equal(t, "x", got)

		_, err = a.Get(42)
		require.ErrorContains(t, err, domain.ErrTypeMismatch.Error())
	})

	t.Run("nil instance", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[FieldsOnly](), "A")

		_, err := a.Get(nil)
		require.ErrorContains(t, err, domain.ErrNilInstance.Error())

		_, err = a.Get((*FieldsOnly)(nil))
		require.ErrorContains(t, err, domain.ErrNilInstance.Error())
	})

	t.Run("type mismatch", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[FieldsOnly](), "A")

		_, err := a.Get("not a struct")
		require.ErrorContains(t, err, domain.ErrTypeMismatch.Error())
	})

	t.Run("nil embedded pointer", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[Outer](), "X")

		_, err := a.Get(Outer{})
		require.ErrorContains(t, err, domain.ErrNilEmbedded.Error())
	})

	t.Run("panicking getter", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[Boom](), "Value")

		_, err := a.Get(Boom{})
		require.ErrorContains(t, err, domain.ErrGetterPanicked.Error())
	})
}

func TestWriteAccessor_Set(t *testing.T) {
	writer := func(t *testing.T, typ reflect.Type, name string) domain.WriteAccessor {
		t.Helper()
		w, ok := accessor(t, typ, name).(domain.WriteAccessor)
		require.True(t, ok)
		return w
	}

	t.Run("field with numeric conversion", func(t *testing.T) {
		w := writer(t, reflect.TypeFor[FieldsOnly](), "A")
		var f FieldsOnly

		require.NoError(t, w.Set(&f, int32(5)))
		assert.Equal(t, 5, f.A)

		require.NoError(t, w.Set(&f, nil))
		assert.Equal(t, 0, f.A)

		err := w.Set(&f, "five")
		require.ErrorContains(t, err, domain.ErrIncompatibleType.Error())
	})

	t.Run("value instance is not settable", func(t *testing.T) {
		w := writer(t, reflect.TypeFor[FieldsOnly](), "A")

		err := w.Set(FieldsOnly{}, 1)
		require.ErrorContains(t, err, domain.ErrNotSettable.Error())
	})

	t.Run("nil embedded pointer is allocated", func(t *testing.T) {
		w := writer(t, reflect.TypeFor[Outer](), "X")
		var o Outer

		require.NoError(t, w.Set(&o, 3))
		require.NotNil(t, o.Base)
		assert.Equal(t, 3, o.X)
	})

	t.Run("property setter", func(t *testing.T) {
		w := writer(t, reflect.TypeFor[Person](), "Name")
		var p Person

		require.NoError(t, w.Set(&p, "ada"))
		assert.Equal(t, "ada", p.name)
	})

	t.Run("promoted setter on ambiguous property", func(t *testing.T) {
		a := accessor(t, reflect.TypeFor[Ambiguous](), "Name")
		w, ok := a.(domain.WriteAccessor)
		require.True(t, ok)
		var v Ambiguous

		require.NoError(t, w.Set(&v, "grace"))
		got, err := a.Get(&v)
		require.NoError(t, err)
		assert.Equal(t, "grace", got)
	})

	t.Run("shadowed property setter", func(t *testing.T) {
		w := writer(t, reflect.TypeFor[ShadowedCode](), "Code")
		var v ShadowedCode

		require.NoError(t, w.Set(&v, 9))
		assert.Equal(t, 9, v.Coded.Code())
	})

	t.Run("read only property", func(t *testing.T) {
		w := writer(t, reflect.TypeFor[List](), "Len")

		err := w.Set(&List{}, 1)
		require.ErrorContains(t, err, domain.ErrNotSettable.Error())
	})
}

func TestMethod_Call(t *testing.T) {
	ti, err := discovery.New().Describe(reflect.TypeFor[Counter]())
	require.NoError(t, err)

	m, ok := ti.NoArgMethod("Pair")
	require.True(t, ok)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[error]()}, m.Results())

	got, err := m.Call(Counter{n: 4})
	require.NoError(t, err)
	assert.Equal(t, []any{4, nil}, got)

	_, err = m.Call(nil)
	require.ErrorContains(t, err, domain.ErrNilInstance.Error())
}
