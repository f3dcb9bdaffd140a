package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logrus_test "github.com/sirupsen/logrus/hooks/test"
)

// ExpectedLogEntry contains a log message and log level which is expected to be
// emitted by the logging system.
type ExpectedLogEntry struct {
	// The message to be matched exactly. Conflicts with MessageRegex.
	Message string

	// The message to be matched as regex. Conflicts with Message.
	MessageRegex string

	// The logging level to be matched.
	Level logrus.Level

	// Fields which must be present on the entry with the given values,
	// compared with fmt.Sprint.
	Fields map[string]string
}

func (ex ExpectedLogEntry) assertMatches(e logrus.Entry) error {
	if e.Level != ex.Level {
		return fmt.Errorf("level: found %s, expected %s", e.Level, ex.Level)
	}

	switch {
	case ex.Message != "" && ex.MessageRegex != "":
		return fmt.Errorf("ExpectedLogEntry has both Message and MessageRegex set")
	case ex.Message != "":
		if e.Message != ex.Message {
			return fmt.Errorf("message: found `%s`, expected `%s`", e.Message, ex.Message)
		}
	case ex.MessageRegex != "":
		matched, err := regexp.MatchString(ex.MessageRegex, e.Message)
		if err != nil {
			return err
		}
		if !matched {
			return fmt.Errorf("message: found `%s`, expected to match `%s`", e.Message, ex.MessageRegex)
		}
	default:
		return fmt.Errorf("ExpectedLogEntry has neither Message or MessageRegex set")
	}

	for k, want := range ex.Fields {
		got, ok := e.Data[k]
		if !ok {
			return fmt.Errorf("field %s: not found", k)
		}
		if fmt.Sprint(got) != want {
			return fmt.Errorf("field %s: found `%v`, expected `%s`", k, got, want)
		}
	}

	return nil
}

// NewCapturingLogger creates a logging hook and entry suitable for passing to
// functions and asserting on.
func NewCapturingLogger() (*logrus_test.Hook, *logrus.Entry) {
	logger, h := logrus_test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	log := logrus.NewEntry(logger)
	return h, log
}

// AssertLoggingOutput compares the logs on `h` with the expected entries in
// `expected`. It returns a slice of errors encountered, with a zero length if
// no assertions failed.
func AssertLoggingOutput(h *logrus_test.Hook, expected []ExpectedLogEntry) []error {
	entries := h.AllEntries()
	errs := make([]error, 0, len(entries))

	if len(entries) != len(expected) {
		return append(errs, fmt.Errorf("got %d logs, expected %d", len(entries), len(expected)))
	}

	for i, e := range entries {
		if err := expected[i].assertMatches(*e); err != nil {
			errs = append(errs, errors.Wrapf(err, "log #%d", i))
		}
	}

	return errs
}
