package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnknownStage = errors.New("unknown step")
	ErrEval         = errors.New("evaluation failed")
	ErrConfig       = errors.New("invalid config")
)

// evalErrorf builds the error value that element callbacks panic with.
// Eval recovers it and returns it as a plain error.
func evalErrorf(format string, args ...any) error {
	return fmt.Errorf("pipeline: %w: %s", ErrEval, fmt.Sprintf(format, args...))
}

func syntaxErrorf(format string, args ...any) error {
	return fmt.Errorf("pipeline: %w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}
