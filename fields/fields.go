package fields

import (
	"fmt"
	"strings"
)

// Field is one unit of decoded, displayable transaction content. Calling
// Describe on it returns a human-readable representation. Layout variants
// (List, Preview) are recursive and require attention to formatting.
//
// Every Field carries a label and a non-empty fallback text so a minimal
// text-only renderer always has something to show.
type Field interface {
	GetType() string
	GetLabel() string
	GetFallbackText() string
	Describe(ctx *Context) string
}

// Context is a storage for out-of-band data a Field may need while being
// described, e.g. known contract addresses for annotations.
type Context struct {
	Ctx map[string]any
}

// KnownAddressesKey indexes a map[uint64]map[string]string of
// chainID -> address -> type tag inside a Context.
const KnownAddressesKey = "KnownAddresses"

func NewContext(known map[uint64]map[string]string) *Context {
	return &Context{
		Ctx: map[string]any{
			KnownAddressesKey: known,
		},
	}
}

func ContextGet[T any](ctx *Context, key string) (T, error) {
	if ctx == nil {
		return *new(T), fmt.Errorf("context element %s not found", key)
	}
	raw, ok := ctx.Ctx[key]
	if !ok {
		return *new(T), fmt.Errorf("context element %s not found", key)
	}
	elem, ok := raw.(T)
	if !ok {
		return *new(T), fmt.Errorf("context element %s type mismatch (expected: %T, was: %T)", key, elem, raw)
	}

	return elem, nil
}

// Common carries the attributes shared by every Field variant.
type Common struct {
	Label        string
	FallbackText string
}

// newCommon defaults the fallback text to the label so constructed fields
// always carry a non-empty fallback.
func newCommon(label, fallback string) Common {
	if fallback == "" {
		fallback = label
	}

	return Common{Label: label, FallbackText: fallback}
}

func (c Common) GetLabel() string {
	return c.Label
}

func (c Common) GetFallbackText() string {
	return c.FallbackText
}

type Text struct {
	Common
	Text string
}

func NewText(label, text string) Text {
	return Text{Common: newCommon(label, text), Text: text}
}

func (t Text) GetType() string {
	return "Text"
}

func (t Text) Describe(_ *Context) string {
	return fmt.Sprintf("%s: %s", t.Label, t.Text)
}

type Address struct {
	Common
	Address string
	// Name is an optional human-readable name for the address.
	Name string
}

func NewAddress(label, address string) Address {
	return Address{Common: newCommon(label, address), Address: address}
}

func (a Address) GetType() string {
	return "Address"
}

func (a Address) Describe(ctx *Context) string {
	if note := a.Annotation(ctx); note != "" {
		return fmt.Sprintf("%s: %s (%s)", a.Label, a.Address, note)
	}

	return fmt.Sprintf("%s: %s", a.Label, a.Address)
}

type Amount struct {
	Common
	Amount string
	// Abbreviation is an optional unit suffix, e.g. a token symbol.
	Abbreviation string
}

func NewAmount(label, amount string) Amount {
	return Amount{Common: newCommon(label, amount), Amount: amount}
}

func (a Amount) GetType() string {
	return "Amount"
}

func (a Amount) Describe(_ *Context) string {
	if a.Abbreviation != "" {
		return fmt.Sprintf("%s: %s %s", a.Label, a.Amount, a.Abbreviation)
	}

	return fmt.Sprintf("%s: %s", a.Label, a.Amount)
}

type Number struct {
	Common
	Value string
}

func NewNumber(label, value string) Number {
	return Number{Common: newCommon(label, value), Value: value}
}

func (n Number) GetType() string {
	return "Number"
}

func (n Number) Describe(_ *Context) string {
	return fmt.Sprintf("%s: %s", n.Label, n.Value)
}

// List groups an ordered sequence of sub-fields under one label.
type List struct {
	Common
	Fields []Field
}

func NewList(label, fallback string, fs ...Field) List {
	return List{Common: newCommon(label, fallback), Fields: fs}
}

func (l List) GetType() string {
	return "List"
}

func (l List) Describe(ctx *Context) string {
	description := strings.Builder{}
	description.WriteString(l.Label)
	description.WriteString(":")
	for _, f := range l.Fields {
		description.WriteString("\n")
		description.WriteString(indentString(f.Describe(ctx)))
	}

	return description.String()
}

// Preview pairs a condensed summary with an optional expanded detail view.
type Preview struct {
	Common
	Title     string
	Subtitle  string
	Condensed *List
	Expanded  *List
}

func NewPreview(title, subtitle string, condensed, expanded *List) Preview {
	return Preview{
		Common:    newCommon(title, subtitle),
		Title:     title,
		Subtitle:  subtitle,
		Condensed: condensed,
		Expanded:  expanded,
	}
}

func (p Preview) GetType() string {
	return "Preview"
}

func (p Preview) Describe(ctx *Context) string {
	description := strings.Builder{}
	description.WriteString(p.Label)
	description.WriteString(": ")
	description.WriteString(p.Subtitle)
	if p.Condensed != nil {
		description.WriteString("\n")
		description.WriteString(indentString(p.Condensed.Describe(ctx)))
	}
	if p.Expanded != nil {
		description.WriteString("\n")
		description.WriteString(indentString(p.Expanded.Describe(ctx)))
	}

	return description.String()
}

const Indent = "  "

func indentString(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Indent + line
	}

	return strings.Join(lines, "\n")
}
