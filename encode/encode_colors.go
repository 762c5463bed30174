package encode

import (
	"github.com/signadot/rtdbview/ir"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type rgb struct{ r, g, b int }

// palette colors keys, leaves and container punctuation. Anything else is
// left uncolored.
var palette = map[Colorable]rgb{
	{ir.ObjectType, FieldColor}: {128, 168, 196},
	{ir.ObjectType, SepColor}:   {196, 128, 128},
	{ir.ArrayType, SepColor}:    {255, 0, 196},
	{ir.StringType, ValueColor}: {8, 196, 16},
	{ir.NumberType, ValueColor}: {128, 216, 236},
	{ir.BoolType, ValueColor}:   {0, 196, 196},
	{ir.NullType, ValueColor}:   {168, 0, 196},
}

type Colors struct {
	Default func(string) string
	Map     map[Colorable]func(string) string
}

// NewColors returns the default palette. Colors are emitted whether or not
// the output is a terminal; callers decide when to use them.
func NewColors() *Colors {
	res := &Colors{
		Default: func(s string) string { return s },
		Map:     make(map[Colorable]func(string) string, len(palette)),
	}
	for able, c := range palette {
		col := color.RGB(c.r, c.g, c.b)
		col.EnableColor()
		res.Map[able] = func(s string) string {
			return col.Sprint(s)
		}
	}
	return res
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	return c.Default
}
