package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Movie is one row of the movies table. ID is assigned by the store.
type Movie struct {
	ID    int64
	Name  string
	Score int
}

// ValidationError reports form input that cannot be saved.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParseScore converts the Score field text. Empty input is 0.
func ParseScore(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, nil
	}

	score, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ValidationError{
			Field: "score",
			Value: text,
			Err:   fmt.Errorf("must be a whole number"),
		}
	}
	return score, nil
}
