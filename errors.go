package crunch

import (
	"errors"
	"fmt"
)

var (
	// ErrImageEmpty is returned when an image has no pixel with alpha above the threshold
	ErrImageEmpty = errors.New("image has no opaque pixels")

	// ErrInputSpriteTooLarge is returned when a padded sprite overflows int arithmetic or
	// the sprites do not fit any canvas size within the retry budget
	ErrInputSpriteTooLarge = errors.New("input sprite too large")

	// ErrIO wraps filesystem failures while writing the atlas or its directory
	ErrIO = errors.New("io error")

	// ErrImage wraps raster decode and encode failures
	ErrImage = errors.New("image error")

	// ErrDuplicateDescriptor is reported for a sprite whose descriptor file name
	// is already used by an earlier sprite of the same run
	ErrDuplicateDescriptor = errors.New("duplicate descriptor")

	// ErrSessionConsumed is returned when a session is used after Pack
	ErrSessionConsumed = errors.New("pack session already consumed")
)

// SpriteError attaches the identity of a source image to an error.
type SpriteError struct {
	Name string
	Err  error
}

func (e *SpriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SpriteError) Unwrap() error {
	return e.Err
}

func ioError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}

func imageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrImage, err)
}
