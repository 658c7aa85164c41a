package fill

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed matches every GenerationError with errors.Is.
var ErrGenerationFailed = errors.New("generation failed")

type Reason string

const (
	ReasonPlacementExhausted Reason = "placement exhausted"
	ReasonManualConflict     Reason = "manual placement conflict"
	ReasonSphereExplosion    Reason = "sphere explosion"
	ReasonInaccessibleItems  Reason = "inaccessible items"
)

// GenerationError is the single failure kind of a generation attempt.
// Reason tells the failures apart.
type GenerationError struct {
	Reason Reason
	Msg    string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %s: %s", e.Reason, e.Msg)
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// Fail builds a GenerationError.
func Fail(reason Reason, format string, args ...any) error {
	return &GenerationError{Reason: reason, Msg: fmt.Sprintf(format, args...)}
}

// IsReason reports whether err is a GenerationError with the given reason.
func IsReason(err error, reason Reason) bool {
	var ge *GenerationError
	return errors.As(err, &ge) && ge.Reason == reason
}
