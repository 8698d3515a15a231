package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnexpectedStatus = errors.New("unexpected response status")

// DecodeError reports a question-bank document that could not be parsed.
type DecodeError struct {
	Source string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid data format in %s: %s", e.Source, e.Reason)
}

// NewSource picks an HTTP source for http(s) locations and a file source otherwise.
func NewSource(name, location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(name, location, nil)
	}
	return NewFileSource(name, location)
}

type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// DecodeDocument parses a source body into its raw question records.
func DecodeDocument(source string, body []byte) ([]json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Source: source, Reason: err.Error()}
	}

	raw, ok := envelope["questions"]
	if !ok {
		return nil, &DecodeError{Source: source, Reason: "missing questions array"}
	}

	var questions []json.RawMessage
	if err := json.Unmarshal(raw, &questions); err != nil || questions == nil {
		return nil, &DecodeError{Source: source, Reason: "questions is not an array"}
	}

	return questions, nil
}
