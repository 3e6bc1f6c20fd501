// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optargs

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-optargs/optargs/internal/value"
)

// Action - what a matched option does with its bound argument(s).
type Action int

const (
	// None - the match is only reported through the Parser; values are
	// bound per Arity and exposed through OptArg/Values but nothing is
	// written. This is the classic getopt switch style.
	None Action = iota
	// SetTrue - set the *bool destination to true.
	SetTrue
	// SetFalse - set the *bool destination to false.
	SetFalse
	// Toggle - flip the *bool destination.
	Toggle
	// Increment - add one to the *int destination.
	Increment
	// Decrement - subtract one from the *int destination.
	Decrement
	// Store - write the converted value to the destination, overwriting.
	Store
	// Append - append the converted value(s) to the slice destination.
	Append
	// Call - invoke OnValue with the converted value(s).
	Call
	// CallVoid - invoke OnCall with nothing.
	CallVoid
	// CallParse - invoke OnParse with the Parser; the handler consumes
	// whatever tokens it wants through NextArg/PeekArg.
	CallParse
)

// Arity - how many option-arguments an option consumes.
type Arity int

const (
	// NoArg - no option-argument.
	NoArg Arity = 0
	// OneArg - exactly one, attached or from the following token.
	OneArg Arity = 1
	// OptionalArg - one if attached to the same token, otherwise the
	// caller supplied Default. Never consumes the following token.
	OptionalArg Arity = -1
)

// Type - conversion target for option-arguments.
type Type int

const (
	// String - no conversion; Min/Max bound the text length.
	String Type = iota
	// Int - int.
	Int
	// Uint - uint.
	Uint
	// Int64 - int64.
	Int64
	// Uint64 - uint64.
	Uint64
	// Float64 - float64.
	Float64
	// Bytes - SI/IEC byte size ("42 MB", "64KiB") converted to int64.
	Bytes
	// Duration - time.ParseDuration value; Min/Max bound seconds.
	Duration
)

func (t Type) kind() value.Kind {
	switch t {
	case Int:
		return value.Int
	case Uint:
		return value.Uint
	case Int64:
		return value.Int64
	case Uint64:
		return value.Uint64
	case Float64:
		return value.Float64
	case Bytes:
		return value.Bytes
	case Duration:
		return value.Duration
	}
	return value.String
}

// Hidden - assign to Opt.Description to keep an entry out of help output.
const Hidden = "\x00"

// Dash - identity reported by the Parser for the standalone "-" token,
// conventionally standing for stdin/stdout. The engine consumes the token
// and leaves its meaning to the caller.
const Dash = '-'

// Opt - one option or subcommand declaration.
//
// ID is the identity reported by the Parser: an alphanumeric ASCII value
// ('v') doubles as the short name, any other positive value declares an
// option without a short form, and a negative value declares a subcommand.
// Zero is invalid.
//
// An Opt is data only; tables are built from Opt literals with New. The
// engine writes through Dest and DestLen but never retains either past the
// call that used them.
type Opt struct {
	ID     int
	Name   string // long name, unique per table, at least two characters
	Action Action
	Arity  Arity
	Type   Type

	// Dest - caller owned typed slot. *bool for SetTrue/SetFalse/Toggle,
	// *int for Increment/Decrement, a pointer matching Type for Store
	// (*string, *int, ...) and a slice pointer for Append (*[]string, ...).
	Dest interface{}

	// Min and Max bound the converted value, or the text length for
	// String. Both zero disables the check, a zero Max means unbounded
	// above.
	Min float64
	Max float64

	// Delims - set of runes splitting one option-argument into a value
	// list. ListMin/ListMax bound the number of values per occurrence
	// (zero means unbounded).
	Delims  string
	ListMin int
	ListMax int

	// Cap - with Append, the total number of values the destination
	// accepts across occurrences. Exceeding it is an error, never a
	// silent truncation. Zero means unbounded.
	Cap int

	// DestLen - optional counter incremented once per stored value.
	DestLen *int

	// Default - bound without conversion when an OptionalArg option is
	// used with no attached value. Its dynamic type must match Type.
	// Nil binds nothing.
	Default interface{}

	ArgName     string // help placeholder, defaulted from Type
	Description string // free text; Hidden suppresses the help entry

	// Exactly one of the following per call action.
	OnValue func(values []interface{}) error // Call
	OnCall  func() error                     // CallVoid
	OnParse func(p *Parser) error            // CallParse

	// Sub - child table, required for subcommands (ID < 0).
	Sub *OptSet
	// Run - optional handler invoked by ParseDispatch after a transfer.
	Run CommandFn
}

// isShortName - short names are the alphanumeric ASCII range, everything
// else positive is a "no short name" identity code.
func isShortName(id int) bool {
	return (id >= '0' && id <= '9') || (id >= 'a' && id <= 'z') || (id >= 'A' && id <= 'Z')
}

// canonical - table key: long name when present, else the short character,
// else the decimal identity.
func (o *Opt) canonical() string {
	if o.Name != "" {
		return o.Name
	}
	if isShortName(o.ID) {
		return string(rune(o.ID))
	}
	return strconv.Itoa(o.ID)
}

// label - user facing spelling for diagnostics and panics.
func (o *Opt) label() string {
	if o.ID < 0 {
		return o.Name
	}
	if o.Name != "" {
		return "--" + o.Name
	}
	if isShortName(o.ID) {
		return "-" + string(rune(o.ID))
	}
	return "#" + strconv.Itoa(o.ID)
}

// dashed - turn a used name back into its command line spelling.
func dashed(used string) string {
	if utf8.RuneCountInString(used) == 1 {
		return "-" + used
	}
	return "--" + used
}

// takesValue - actions that consume an option-argument as a value.
func (o *Opt) takesValue() bool {
	switch o.Action {
	case Store, Append, Call:
		return true
	}
	return false
}

// normalize - fill derived defaults. Value consuming actions imply OneArg
// unless the caller asked for OptionalArg.
func (o *Opt) normalize() {
	if o.takesValue() && o.Arity == NoArg {
		o.Arity = OneArg
	}
}

// validate - definition errors are programmer errors and panic.
func (o *Opt) validate() {
	if o.ID == 0 {
		panic(fmt.Sprintf("Option '%s' has no identity code", o.Name))
	}
	if o.Name != "" {
		if strings.HasPrefix(o.Name, "-") {
			panic(fmt.Sprintf("Option name '%s' starts with a dash", o.Name))
		}
		if strings.ContainsAny(o.Name, "= ") {
			panic(fmt.Sprintf("Option name '%s' contains '=' or a space", o.Name))
		}
	}
	if o.ID < 0 {
		o.validateSub()
		return
	}
	if o.Name == "" && !isShortName(o.ID) {
		panic(fmt.Sprintf("Option #%d has neither a short nor a long name", o.ID))
	}
	if o.Name != "" && utf8.RuneCountInString(o.Name) < 2 {
		panic(fmt.Sprintf("Option name '%s' is shorter than two characters", o.Name))
	}
	if o.Sub != nil || o.Run != nil {
		panic(fmt.Sprintf("Option '%s' declares subcommand fields", o.label()))
	}
	o.validateAction()
	o.validateValues()
}

func (o *Opt) validateSub() {
	if o.Name == "" {
		panic(fmt.Sprintf("Subcommand #%d has no name", o.ID))
	}
	if o.Sub == nil {
		panic(fmt.Sprintf("Subcommand '%s' has no child table", o.Name))
	}
	if o.Action != None || o.Dest != nil || o.Default != nil ||
		o.OnValue != nil || o.OnCall != nil || o.OnParse != nil ||
		o.Delims != "" || o.Arity != NoArg || o.DestLen != nil {
		panic(fmt.Sprintf("Subcommand '%s' declares option behavior", o.Name))
	}
}

func (o *Opt) validateAction() {
	switch o.Action {
	case None:
		if o.Dest != nil {
			panic(fmt.Sprintf("Option '%s' has a destination but no action", o.label()))
		}
	case SetTrue, SetFalse, Toggle:
		if _, ok := o.Dest.(*bool); !ok {
			panic(fmt.Sprintf("Option '%s' needs a *bool destination", o.label()))
		}
	case Increment, Decrement:
		if _, ok := o.Dest.(*int); !ok {
			panic(fmt.Sprintf("Option '%s' needs an *int destination", o.label()))
		}
	case Store:
		if !destMatches(o.Type, o.Dest) {
			panic(fmt.Sprintf("Option '%s' destination doesn't match its type", o.label()))
		}
		if o.Delims != "" {
			panic(fmt.Sprintf("Option '%s' splits a list into a scalar destination", o.label()))
		}
	case Append:
		if !destMatchesSlice(o.Type, o.Dest) {
			panic(fmt.Sprintf("Option '%s' destination doesn't match its type", o.label()))
		}
	case Call:
		if o.OnValue == nil {
			panic(fmt.Sprintf("Option '%s' has no OnValue handler", o.label()))
		}
		if o.Dest != nil {
			panic(fmt.Sprintf("Option '%s' mixes a handler and a destination", o.label()))
		}
	case CallVoid:
		if o.OnCall == nil {
			panic(fmt.Sprintf("Option '%s' has no OnCall handler", o.label()))
		}
		if o.Dest != nil || o.Arity != NoArg {
			panic(fmt.Sprintf("Option '%s' takes no argument and no destination", o.label()))
		}
	case CallParse:
		if o.OnParse == nil {
			panic(fmt.Sprintf("Option '%s' has no OnParse handler", o.label()))
		}
		if o.Dest != nil || o.Arity != NoArg || o.Delims != "" {
			panic(fmt.Sprintf("Option '%s' consumes arguments manually", o.label()))
		}
	default:
		panic(fmt.Sprintf("Option '%s' has an unknown action", o.label()))
	}
	if o.OnValue != nil && o.Action != Call ||
		o.OnCall != nil && o.Action != CallVoid ||
		o.OnParse != nil && o.Action != CallParse {
		panic(fmt.Sprintf("Option '%s' handler doesn't match its action", o.label()))
	}
}

func (o *Opt) validateValues() {
	if o.Min != 0 && o.Max != 0 && o.Min > o.Max {
		panic(fmt.Sprintf("Option '%s' min bound above its max bound", o.label()))
	}
	if o.Delims != "" && o.Action != Append && o.Action != Call && o.Action != None {
		panic(fmt.Sprintf("Option '%s' has delimiters but no list destination", o.label()))
	}
	if o.Delims != "" && o.Arity == NoArg {
		panic(fmt.Sprintf("Option '%s' has delimiters but takes no argument", o.label()))
	}
	if (o.ListMin != 0 || o.ListMax != 0) && o.Delims == "" {
		panic(fmt.Sprintf("Option '%s' has list bounds but no delimiters", o.label()))
	}
	if o.ListMin != 0 && o.ListMax != 0 && o.ListMin > o.ListMax {
		panic(fmt.Sprintf("Option '%s' list min above its list max", o.label()))
	}
	if o.Cap != 0 && o.Action != Append {
		panic(fmt.Sprintf("Option '%s' has a capacity but doesn't append", o.label()))
	}
	if o.DestLen != nil && o.Action != Store && o.Action != Append {
		panic(fmt.Sprintf("Option '%s' counts values but doesn't store them", o.label()))
	}
	if o.Default != nil {
		if o.Arity != OptionalArg {
			panic(fmt.Sprintf("Option '%s' has a default but a required argument", o.label()))
		}
		if o.takesValue() && !defaultMatches(o.Type, o.Default) {
			panic(fmt.Sprintf("Option '%s' default doesn't match its type", o.label()))
		}
	}
}

func destMatches(t Type, d interface{}) bool {
	switch t {
	case Int:
		_, ok := d.(*int)
		return ok
	case Uint:
		_, ok := d.(*uint)
		return ok
	case Int64, Bytes:
		_, ok := d.(*int64)
		return ok
	case Uint64:
		_, ok := d.(*uint64)
		return ok
	case Float64:
		_, ok := d.(*float64)
		return ok
	case Duration:
		_, ok := d.(*time.Duration)
		return ok
	}
	_, ok := d.(*string)
	return ok
}

func destMatchesSlice(t Type, d interface{}) bool {
	switch t {
	case Int:
		_, ok := d.(*[]int)
		return ok
	case Uint:
		_, ok := d.(*[]uint)
		return ok
	case Int64, Bytes:
		_, ok := d.(*[]int64)
		return ok
	case Uint64:
		_, ok := d.(*[]uint64)
		return ok
	case Float64:
		_, ok := d.(*[]float64)
		return ok
	case Duration:
		_, ok := d.(*[]time.Duration)
		return ok
	}
	_, ok := d.(*[]string)
	return ok
}

func defaultMatches(t Type, v interface{}) bool {
	switch t {
	case Int:
		_, ok := v.(int)
		return ok
	case Uint:
		_, ok := v.(uint)
		return ok
	case Int64, Bytes:
		_, ok := v.(int64)
		return ok
	case Uint64:
		_, ok := v.(uint64)
		return ok
	case Float64:
		_, ok := v.(float64)
		return ok
	case Duration:
		_, ok := v.(time.Duration)
		return ok
	}
	_, ok := v.(string)
	return ok
}

// synopsis - left help column: names plus the argument placeholder.
func (o *Opt) synopsis() string {
	if o.ID < 0 {
		if o.ArgName != "" {
			return o.Name + " " + o.ArgName
		}
		return o.Name
	}
	names := ""
	if isShortName(o.ID) {
		names = "-" + string(rune(o.ID))
	}
	if o.Name != "" {
		if names != "" {
			names += ", "
		}
		names += "--" + o.Name
	}
	switch o.Arity {
	case OneArg:
		return names + " " + o.argPlaceholder()
	case OptionalArg:
		return names + " [" + o.argPlaceholder() + "]"
	}
	return names
}

func (o *Opt) argPlaceholder() string {
	if o.ArgName != "" {
		return o.ArgName
	}
	if o.Type == String {
		return "ARG"
	}
	return strings.ToUpper(o.Type.kind().String())
}
