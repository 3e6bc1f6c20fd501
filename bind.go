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

	"github.com/go-optargs/optargs/internal/value"
	"github.com/go-optargs/optargs/text"
)

// bindValues - turn the raw option-argument into the match's value list:
// optional delimiter split, then conversion and bounds per value. All or
// nothing; an error here leaves every destination untouched.
func (p *Parser) bindValues(o *Opt, used, raw string, has bool) ([]interface{}, error) {
	if !has {
		if o.Arity == OptionalArg && o.Default != nil {
			return []interface{}{o.Default}, nil
		}
		return nil, nil
	}
	kind := o.Type.kind()
	parts := []string{raw}
	if o.Delims != "" {
		parts = value.Split(raw, o.Delims)
		if o.ListMin > 0 && len(parts) < o.ListMin {
			return nil, fmt.Errorf(text.ErrorListTooFewValues+"%w",
				dashed(used), o.ListMin, len(parts), ErrorListCount)
		}
		if o.ListMax > 0 && len(parts) > o.ListMax {
			return nil, fmt.Errorf(text.ErrorListTooManyValues+"%w",
				dashed(used), o.ListMax, len(parts), ErrorListCount)
		}
	}
	vals := make([]interface{}, 0, len(parts))
	for _, part := range parts {
		v, err := value.Convert(kind, part)
		if err != nil {
			return nil, fmt.Errorf(text.ErrorConvertArgument+"%w",
				dashed(used), part, kind, ErrorConversion)
		}
		if viol := value.CheckBounds(kind, v, o.Min, o.Max); viol != nil {
			return nil, boundsError(used, part, viol)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func boundsError(used, part string, viol *value.Violation) error {
	tmpl := text.ErrorArgumentAboveMax
	switch {
	case viol.Length && viol.Below:
		tmpl = text.ErrorArgumentTooShort
	case viol.Length:
		tmpl = text.ErrorArgumentTooLong
	case viol.Below:
		tmpl = text.ErrorArgumentBelowMin
	}
	return fmt.Errorf(tmpl+"%w", dashed(used), part, viol.Limit, ErrorRange)
}
