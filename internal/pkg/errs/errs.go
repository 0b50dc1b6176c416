package errs

import (
	"fmt"
	"io"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark tags err with markErr. The result keeps err's message and matches both
// under errors.Is and Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

// Reasonf builds an error whose message is the human readable reason and which
// matches markErr under errors.Is.
func Reasonf(markErr error, format string, args ...any) error {
	return &marked{cause: cr.NewWithDepth(1, fmt.Sprintf(format, args...)), mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (e *marked) Error() string { return e.cause.Error() }

func (e *marked) Unwrap() []error { return []error{e.cause, e.mark} }

// Format prints the cause so %+v still carries its stack.
func (e *marked) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", e.cause)
		return
	}
	_, _ = io.WriteString(s, e.Error())
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
