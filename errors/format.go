// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strings"
)

// A Formatter formats error messages.
type Formatter interface {
	// FormatError is implemented by errors to print a single error message.
	// It should return the next error in the error chain, if any.
	FormatError(p Printer) (next error)
}

// A Printer creates formatted error messages. It enforces that
// detailed information is written last.
//
// In this package, Printer is implemented by the adaptor that Format
// passes to each FormatError call. Localization packages may provide
// their own implementation to support localized error messages
// (see for instance golang.org/x/text/message).
type Printer interface {
	// Print appends args to the message output.
	// String arguments are not localized, even within a localized context.
	Print(args ...interface{})

	// Printf writes a formatted string.
	Printf(format string, args ...interface{})

	// Detail reports whether error detail is requested.
	// After the first call to Detail, all text written to the Printer
	// is formatted as additional detail, or ignored when
	// detail has not been requested.
	// If Detail returns false, the caller can avoid printing the detail at all.
	Detail() bool
}

// Format implements fmt.Formatter-style printing for any error that
// implements Formatter. It walks the FormatError chain, joining each link's
// message with ": " for %v and %s, or printing each link's detail under a
// "--- " separator for %+v.
func Format(err Formatter, s fmt.State, verb rune) {
	detail := verb == 'v' && s.Flag('+')
	p := &statePrinter{s: s, wantDetail: detail}
	cur := Formatter(err)
	first := true
	for {
		p.inDetail = false
		if !first && p.wantDetail {
			p.Print("\n--- ")
		} else if !first {
			p.Print(": ")
		}
		first = false
		next := cur.FormatError(p)
		if next == nil {
			return
		}
		nf, ok := next.(Formatter)
		if !ok {
			p.inDetail = false
			if p.wantDetail {
				p.Print("\n--- ")
			} else {
				p.Print(": ")
			}
			p.Print(next.Error())
			return
		}
		cur = nf
	}
}

// statePrinter adapts a fmt.State into a Printer.
type statePrinter struct {
	s          fmt.State
	wantDetail bool
	inDetail   bool
}

func (p *statePrinter) Print(args ...interface{}) {
	if p.inDetail && !p.wantDetail {
		return
	}
	p.write(fmt.Sprint(args...))
}

func (p *statePrinter) Printf(format string, args ...interface{}) {
	if p.inDetail && !p.wantDetail {
		return
	}
	p.write(fmt.Sprintf(format, args...))
}

// write indents continuation lines of detail text by four spaces, matching
// errors/fmt's errPP.Write behavior for the non-fmt-adaptor call path.
func (p *statePrinter) write(s string) {
	if p.inDetail {
		s = strings.ReplaceAll(s, "\n", "\n    ")
	}
	fmt.Fprint(p.s, s)
}

func (p *statePrinter) Detail() bool {
	if p.wantDetail {
		fmt.Fprint(p.s, "\n    ")
	}
	p.inDetail = true
	return p.wantDetail
}
