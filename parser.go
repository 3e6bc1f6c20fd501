// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optargs

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-optargs/optargs/internal/sliceiterator"
	"github.com/go-optargs/optargs/text"
)

// Parser - one parse session over one argument vector. Create with
// OptSet.Parser, drive with Scan, inspect the current match with ID, Name,
// OptArg and Values:
//
//	p := set.Parser(os.Args[1:])
//	for p.Scan() {
//		switch p.ID() {
//		case 'v':
//			verbose++
//		case optargs.Dash:
//			readStdin = true
//		}
//	}
//	if err := p.Err(); err != nil {
//		...
//	}
//	files := p.Args()
//
// The Parser owns the argument slice it was given: once the session ends
// the slice has been compacted so that its leading elements are the
// operands, in command line order. Args returns that prefix.
type Parser struct {
	set  *OptSet
	args []string
	iter *sliceiterator.Iterator

	keep     []int
	operands []string
	called   map[string]string

	noMoreOpts bool
	short      string // unconsumed cluster remainder
	shortTok   string // original cluster token, for diagnostics
	shortPos   int    // 1 based position of the next cluster character

	id     int
	name   string
	optarg string
	vals   []interface{}

	subOpt *Opt
	rest   []string

	failures []error
	err      error
	done     bool
	packed   bool
}

// Parser - start a session over args. The session reads and finally
// compacts args in place; hand in a copy if the original order matters to
// the caller afterwards.
func (set *OptSet) Parser(args []string) *Parser {
	Logger.Printf("new session over %v", args)
	return &Parser{
		set:    set,
		args:   args,
		iter:   sliceiterator.New(args),
		called: map[string]string{},
	}
}

// Scan - advance to the next match. Returns true when an option, the dash
// identity or a subcommand was matched, false when the vector is drained,
// a halt-mode error surfaced or a transfer already ended the session.
func (p *Parser) Scan() bool {
	if p.done {
		return false
	}
	p.id, p.name, p.optarg, p.vals = 0, "", "", nil
	for {
		if p.short != "" {
			matched, err := p.scanShort()
			if err != nil {
				if p.fail(err) {
					return false
				}
				continue
			}
			if matched {
				return true
			}
			continue
		}
		if !p.iter.Next() {
			p.finish()
			return false
		}
		tok := p.iter.Value()
		if p.noMoreOpts {
			p.keep = append(p.keep, p.iter.Index())
			continue
		}
		switch classifyToken(tok) {
		case tokenTerminator:
			Logger.Printf("terminator at %d", p.iter.Index())
			p.noMoreOpts = true
		case tokenDash:
			p.id, p.name = Dash, "-"
			Logger.Printf("dash at %d", p.iter.Index())
			return true
		case tokenLong:
			matched, err := p.matchLong(tok)
			if err != nil {
				if p.fail(err) {
					return false
				}
				continue
			}
			if matched {
				return true
			}
		case tokenCluster:
			p.short, p.shortTok, p.shortPos = tok[1:], tok, 1
		default:
			matched, err := p.matchOperand(tok)
			if err != nil {
				if p.fail(err) {
					return false
				}
				continue
			}
			if matched {
				return true
			}
		}
	}
}

// scanShort - consume the next cluster character. A value taking member
// ends the cluster: any remaining text is its attached argument, taken
// literally, '=' included.
func (p *Parser) scanShort() (bool, error) {
	r, size := utf8.DecodeRuneInString(p.short)
	rest := p.short[size:]
	pos := p.shortPos
	opt := p.set.byShort[int(r)]
	if opt == nil {
		p.short, p.shortPos = rest, pos+1
		return false, fmt.Errorf(text.ErrorUnknownShortOption+"%w", r, pos, p.shortTok, ErrorUnknownOption)
	}
	used := string(r)
	if opt.Arity == NoArg {
		p.short, p.shortPos = rest, pos+1
		if err := p.applyMatch(opt, used, "", false); err != nil {
			return false, err
		}
		return true, nil
	}
	p.short = ""
	if rest != "" {
		if err := p.applyMatch(opt, used, rest, true); err != nil {
			return false, err
		}
		return true, nil
	}
	if opt.Arity == OneArg {
		if !p.iter.Next() {
			return false, fmt.Errorf(text.ErrorMissingArgument+"%w", dashed(used), ErrorMissingArgument)
		}
		if err := p.applyMatch(opt, used, p.iter.Value(), true); err != nil {
			return false, err
		}
		return true, nil
	}
	// OptionalArg with nothing attached binds the default.
	if err := p.applyMatch(opt, used, "", false); err != nil {
		return false, err
	}
	return true, nil
}

// matchLong - exact name match; "--name=value" carries the argument in the
// token, otherwise a required argument comes from the following token,
// whatever it looks like.
func (p *Parser) matchLong(tok string) (bool, error) {
	name, attached, hasAttached := splitLong(tok)
	opt := p.set.lookupLong(name)
	if opt == nil {
		return false, fmt.Errorf(text.ErrorUnknownOption+"%w", tok, ErrorUnknownOption)
	}
	if hasAttached {
		if opt.Arity == NoArg {
			return false, fmt.Errorf(text.ErrorUnexpectedArgument+"%w", dashed(name), ErrorUnexpectedArgument)
		}
		if err := p.applyMatch(opt, name, attached, true); err != nil {
			return false, err
		}
		return true, nil
	}
	if opt.Arity == OneArg {
		if !p.iter.Next() {
			return false, fmt.Errorf(text.ErrorMissingArgument+"%w", dashed(name), ErrorMissingArgument)
		}
		if err := p.applyMatch(opt, name, p.iter.Value(), true); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := p.applyMatch(opt, name, "", false); err != nil {
		return false, err
	}
	return true, nil
}

// matchOperand - with subcommands in the table an operand must name one;
// without, it is kept for Args.
func (p *Parser) matchOperand(tok string) (bool, error) {
	if p.set.hasSubs {
		sub := p.set.lookupSub(tok)
		if sub == nil {
			return false, fmt.Errorf(text.ErrorUnknownSubcommand+"%w", tok, ErrorUnknownSubcommand)
		}
		Logger.Printf("transfer to '%s' at %d", tok, p.iter.Index())
		p.id, p.name = sub.ID, tok
		p.subOpt = sub
		p.rest = p.iter.Rest()
		p.called[sub.canonical()] = tok
		p.finish()
		return true, nil
	}
	p.keep = append(p.keep, p.iter.Index())
	return false, nil
}

// applyMatch - bind, dispatch, then publish the match. Publishing last
// keeps failed matches invisible: no Parser state and no destination
// changes when binding or the action errored.
func (p *Parser) applyMatch(opt *Opt, used, raw string, has bool) error {
	vals, err := p.bindValues(opt, used, raw, has)
	if err != nil {
		return err
	}
	if err := p.dispatch(opt, used, vals); err != nil {
		return err
	}
	p.id, p.name, p.optarg, p.vals = opt.ID, used, raw, vals
	p.called[opt.canonical()] = used
	Logger.Printf("matched '%s' optarg=%q values=%v", used, raw, vals)
	return nil
}

// fail - route an error per the table's error mode. Returns true when the
// session must halt. A help request halts in either mode and is not a
// diagnostic.
func (p *Parser) fail(err error) bool {
	if p.set.errorMode == ContinueOnError && !errors.Is(err, ErrorHelpCalled) {
		fmt.Fprintln(Writer, err)
		p.failures = append(p.failures, err)
		return false
	}
	p.err = err
	p.finish()
	return true
}

// finish - end the session: compact kept operands to the front of the
// argument slice, in order, and settle Err. Runs once.
func (p *Parser) finish() {
	if p.packed {
		return
	}
	p.packed, p.done = true, true
	w := 0
	for _, i := range p.keep {
		p.args[w] = p.args[i]
		w++
	}
	p.operands = p.args[:w]
	if p.err == nil && len(p.failures) > 0 {
		p.err = fmt.Errorf(text.ErrorParsingAggregate+"%w%w",
			len(p.failures), errors.Join(p.failures...), ErrorParsing)
	}
	Logger.Printf("session done, %d operands, err=%v", w, p.err)
}

// ID - identity code of the current match: the declared ID for options,
// Dash for the standalone dash, the (negative) subcommand code after a
// transfer, zero otherwise.
func (p *Parser) ID() int { return p.id }

// Name - the name the current match was spelled with, without dashes.
func (p *Parser) Name() string { return p.name }

// OptArg - raw option-argument text of the current match, before any
// split or conversion. Empty when none was bound.
func (p *Parser) OptArg() string { return p.optarg }

// Values - converted value list of the current match. One element for a
// plain argument, several after a delimiter split, empty for flag style
// matches.
func (p *Parser) Values() []interface{} { return p.vals }

// Called - whether the named option or subcommand matched during this
// session. Accepts long names and single character short names.
func (p *Parser) Called(name string) bool {
	o := p.set.find(name)
	if o == nil {
		return false
	}
	_, ok := p.called[o.canonical()]
	return ok
}

// CalledAs - the spelling the named option was last matched under, or ""
// if it never matched.
func (p *Parser) CalledAs(name string) string {
	o := p.set.find(name)
	if o == nil {
		return ""
	}
	return p.called[o.canonical()]
}

// Sub - child table of the subcommand that ended the session, or nil.
func (p *Parser) Sub() *OptSet {
	if p.subOpt == nil {
		return nil
	}
	return p.subOpt.Sub
}

// Remaining - arguments following the subcommand, sharing backing storage
// with the session's argument slice. Nil unless a transfer happened.
func (p *Parser) Remaining() []string { return p.rest }

// Args - the operands, compacted to the front of the argument slice in
// command line order. Nil until the session has ended; after a halt-mode
// error it holds the operands seen before the error.
func (p *Parser) Args() []string {
	if !p.packed {
		return nil
	}
	return p.operands
}

// Err - the session error: the halting error in halt mode, the printed
// aggregate in continue mode, nil otherwise. Settled once Scan has
// returned false.
func (p *Parser) Err() error { return p.err }

// NextArg - consume and return the next raw token. For CallParse handlers
// that take their arguments by hand; consumed tokens are not operands.
func (p *Parser) NextArg() (string, bool) {
	if !p.iter.Next() {
		return "", false
	}
	return p.iter.Value(), true
}

// PeekArg - the next raw token without consuming it.
func (p *Parser) PeekArg() (string, bool) {
	return p.iter.Peek()
}
