// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"path/filepath"
	"runtime"
)

// Stack is the caller information carried by an error for %+v detail
// printing. It is just a Frame; the separate name exists because
// errors.go's errorString/errorAnnotation/errorPredicate store "where this
// error was created," which reads better as a Stack field than a Frame one.
type Stack = Frame

// NewStack captures the call stack at the call site two frames up from
// here: the function that called New, Annotate, or NewPredicate.
func NewStack() Stack {
	return Caller(2)
}

// A Frame contains part of a call stack.
type Frame struct {
	// Make room for three PCs: the one we were asked for, what it called,
	// and possibly a PC for skipPleaseUseCallersFrames. See:
	// https://go.googlesource.com/go/+/032678e0fb/src/runtime/extern.go#169
	frames [3]uintptr
}

// Caller reports a Frame about function invocations on the calling goroutine's
// stack. The argument skip is the number of stack frames to ascend, with 0
// identifying the caller of Caller.
func Caller(skip int) Frame {
	var s Frame
	runtime.Callers(skip+1, s.frames[:])
	return s
}

// Location reports the file and line of a frame.
func (f Frame) Location() (file string, line int) {
	frames := runtime.CallersFrames(f.frames[:])
	if _, ok := frames.Next(); !ok {
		return "", 0
	}
	fr, ok := frames.Next()
	if !ok {
		return "", 0
	}
	return fr.File, fr.Line
}

// FormatError prints the stack as error detail: the basename and line of
// the call site, indented to line up under the message it annotates.
func (f Frame) FormatError(p Printer) (next error) {
	if p.Detail() {
		file, line := f.Location()
		if file != "" {
			p.Printf("%s:%d", filepath.Base(file), line)
		}
	}
	return nil
}
