package domain

import (
	"errors"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

var (
	ErrNotFound = errors.New("project not found")

	// ErrInvalidConfig is docgen's validation error, re-exported so callers of
	// the project service need not import docgen to match it.
	ErrInvalidConfig = docgen.ErrInvalidConfig

	ErrIDExhausted = errors.New("failed to generate unique project id")
)
