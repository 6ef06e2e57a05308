package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks requests the caller must fix. It is never
	// turned into a fallback result.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSchemaViolation is returned when the model produced JSON that does
	// not describe a receipt. It wraps ErrInvalidInput.
	ErrSchemaViolation = fmt.Errorf("%w: model response failed receipt schema", ErrInvalidInput)

	// ErrTransientFailure is returned by the gateway once every attempt failed.
	ErrTransientFailure = errors.New("llm gateway exhausted retries")

	// ErrMalformedResponse marks model content that is not a JSON object.
	ErrMalformedResponse = errors.New("model response is not a JSON object")
)

func invalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
