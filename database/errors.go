// errors.go - Translates driver-level failures into errors the handlers can map

package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound - no row matched the key
	ErrNotFound = errors.New("record not found")
	// ErrConflict - a uniqueness constraint was violated
	ErrConflict = errors.New("duplicate record")
)

// wrapError converts raw GORM/driver errors into the store's error taxonomy.
// Anything that is neither a missing row nor a duplicate key comes back as a
// wrapped database error carrying the driver message.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	// The sqlite driver predates TranslateError for some constraint shapes.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrConflict
	}
	return fmt.Errorf("database error: %w", err)
}
