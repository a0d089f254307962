package common

import (
	"errors"
	"fmt"

	"github.com/filmstash/filmstash/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func NewError(a ...any) error {
	msg := fmt.Sprintln(a...)
	return errors.New(msg)
}

// Combine merges multiple errors into one, skipping nils.
func Combine(errs ...error) error {
	var errMsg string
	for _, err := range errs {
		if err != nil {
			errMsg += err.Error() + "\n"
		}
	}
	if errMsg != "" {
		return errors.New(errMsg)
	}
	return nil
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
