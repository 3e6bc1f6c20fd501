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
	"time"

	"github.com/go-optargs/optargs/text"
)

// dispatch - run the matched option's action over the bound values. Flag
// actions ignore values; value actions with an empty list (OptionalArg,
// no default) write nothing.
func (p *Parser) dispatch(o *Opt, used string, vals []interface{}) error {
	switch o.Action {
	case SetTrue:
		*o.Dest.(*bool) = true
	case SetFalse:
		*o.Dest.(*bool) = false
	case Toggle:
		d := o.Dest.(*bool)
		*d = !*d
	case Increment:
		d := o.Dest.(*int)
		*d++
	case Decrement:
		d := o.Dest.(*int)
		*d--
	case Store:
		if len(vals) == 0 {
			return nil
		}
		storeValue(o.Dest, vals[0])
		bump(o.DestLen, 1)
	case Append:
		if len(vals) == 0 {
			return nil
		}
		if o.Cap > 0 && destCount(o.Dest)+len(vals) > o.Cap {
			return fmt.Errorf(text.ErrorAppendCapacity+"%w", dashed(used), o.Cap, ErrorCapacity)
		}
		appendValues(o.Dest, vals)
		bump(o.DestLen, len(vals))
	case Call:
		if err := o.OnValue(vals); err != nil {
			return actionError(dashed(used), err)
		}
	case CallVoid:
		if err := o.OnCall(); err != nil {
			return actionError(dashed(used), err)
		}
	case CallParse:
		if err := o.OnParse(p); err != nil {
			return actionError(dashed(used), err)
		}
	}
	return nil
}

func actionError(label string, err error) error {
	if errors.Is(err, ErrorHelpCalled) {
		return err
	}
	return fmt.Errorf(text.ErrorActionFailed+"%w%w", label, err, ErrorAction)
}

func storeValue(dest, v interface{}) {
	switch d := dest.(type) {
	case *string:
		*d = v.(string)
	case *int:
		*d = v.(int)
	case *uint:
		*d = v.(uint)
	case *int64:
		*d = v.(int64)
	case *uint64:
		*d = v.(uint64)
	case *float64:
		*d = v.(float64)
	case *time.Duration:
		*d = v.(time.Duration)
	}
}

func appendValues(dest interface{}, vals []interface{}) {
	switch d := dest.(type) {
	case *[]string:
		for _, v := range vals {
			*d = append(*d, v.(string))
		}
	case *[]int:
		for _, v := range vals {
			*d = append(*d, v.(int))
		}
	case *[]uint:
		for _, v := range vals {
			*d = append(*d, v.(uint))
		}
	case *[]int64:
		for _, v := range vals {
			*d = append(*d, v.(int64))
		}
	case *[]uint64:
		for _, v := range vals {
			*d = append(*d, v.(uint64))
		}
	case *[]float64:
		for _, v := range vals {
			*d = append(*d, v.(float64))
		}
	case *[]time.Duration:
		for _, v := range vals {
			*d = append(*d, v.(time.Duration))
		}
	}
}

func destCount(dest interface{}) int {
	switch d := dest.(type) {
	case *[]string:
		return len(*d)
	case *[]int:
		return len(*d)
	case *[]uint:
		return len(*d)
	case *[]int64:
		return len(*d)
	case *[]uint64:
		return len(*d)
	case *[]float64:
		return len(*d)
	case *[]time.Duration:
		return len(*d)
	}
	return 0
}

func bump(n *int, by int) {
	if n != nil {
		*n += by
	}
}
