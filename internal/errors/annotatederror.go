// Package errors provides error wrapping with slog annotations and source
// locations. It re-exports the standard library helpers so callers only need
// one errors import.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

type annotatedError struct {
	msg    string
	err    error
	attrs  []slog.Attr
	source string
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// callerSource resolves the file:line of the caller skip frames up.
func callerSource(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+1, pcs[:]) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// New returns an error with the given message annotated with the caller's
// source location.
func New(text string) error {
	return &annotatedError{msg: text, source: callerSource(2)}
}

// NewSentinel returns an error suitable for package-level sentinels. It
// carries no source location since the declaration site is not interesting.
func NewSentinel(text string) error {
	return &annotatedError{msg: text}
}

// Wrap annotates err with a message, the caller's source location, and
// optional slog attributes that [SlogError] surfaces in log output.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, err: err, attrs: attrs, source: callerSource(2)}
}

// DecoratePanic converts a recovered panic value into an error whose source
// location points at the panic site rather than the deferred handler.
func DecoratePanic(excp any) error {
	var pcs [64]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var source string
	seenPanic := false
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.") {
			if frame.Function == "runtime.gopanic" {
				seenPanic = true
			}
		} else if seenPanic {
			source = fmt.Sprintf("%s:%d", frame.File, frame.Line)
			break
		}
		if !more {
			break
		}
	}
	return &annotatedError{msg: fmt.Sprintf("panic: %v", excp), source: source}
}

// SlogError renders err as a structured attribute with the wrap-site source
// and all annotations collected from the error chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}
	var (
		annotations []slog.Attr
		source      string
	)
	collect(err, &annotations, &source)

	args := []any{slog.String("message", err.Error())}
	if source != "" {
		args = append(args, slog.String("source", source))
	}
	if len(annotations) > 0 {
		groupAttrs := make([]any, 0, len(annotations))
		for _, attr := range annotations {
			groupAttrs = append(groupAttrs, attr)
		}
		args = append(args, slog.Group("annotations", groupAttrs...))
	}
	return slog.Group("error", args...)
}

// collect walks the error tree gathering annotations. The outermost source
// location wins since it is closest to where the failure was handled.
func collect(err error, annotations *[]slog.Attr, source *string) {
	if err == nil {
		return
	}
	if ae, ok := err.(*annotatedError); ok {
		if *source == "" && ae.source != "" {
			*source = ae.source
		}
		*annotations = append(*annotations, ae.attrs...)
		collect(ae.err, annotations, source)
		return
	}
	switch unwrapped := err.(type) {
	case interface{ Unwrap() error }:
		collect(unwrapped.Unwrap(), annotations, source)
	case interface{ Unwrap() []error }:
		for _, inner := range unwrapped.Unwrap() {
			collect(inner, annotations, source)
		}
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error wrapping the given errors, discarding nils.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}
