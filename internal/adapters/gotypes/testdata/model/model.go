package model

import "time"

type Base struct {
	X int
	y int
}

func (b *Base) Y() int          { return b.y }
func (b *Base) SetY(v int)      { b.y = v }
func (b Base) Describe() string { return "base" }

type Derived struct {
	Base
	Created time.Time
}

type Named struct{ name string }

func (n Named) Name() string { return n.name }

type Labelled struct{ name string }

func (l *Labelled) Name() string     { return l.name }
func (l *Labelled) SetName(v string) { l.name = v }

type Ambiguous struct {
	Named
	*Labelled
}

type List struct{ items []string }

func (l *List) At(i int) string { return l.items[i] }
func (l *List) Len() int        { return len(l.items) }
func (l *List) Reset()          { l.items = nil }

type Identified interface {
	ID() int
}

type Entity interface {
	Identified
	Label() string
}

type Holder struct {
	Identified
	Note string
}

type Secret struct {
	Code string
}

func (s Secret) SetToken(string) {}

func (s Secret) Check() (bool, error) { return true, nil }

type Box[T any] struct {
	Value T
}

type alias = Secret

type hidden struct {
	Visible int
}

type Counter struct{ n int }

func (c *Counter) Code() int     { return c.n }
func (c *Counter) SetCode(v int) { c.n = v }

type Shadowed struct {
	Counter
}

func (s *Shadowed) Code() string { return "shadowed" }
