package texture

import "errors"

// Configuration-time errors. Once a Texture exists, sampling is total.
var (
	// ErrEmptyTexture indicates a texture source with no rows or columns.
	ErrEmptyTexture = errors.New("texture: empty texture source")

	// ErrDimensionMismatch indicates night grid dimensions differ from day.
	ErrDimensionMismatch = errors.New("texture: night dimensions do not match day")

	// ErrUnknownTemplate indicates an unrecognized built-in template name.
	ErrUnknownTemplate = errors.New("texture: unknown template")
)
