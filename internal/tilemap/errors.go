package tilemap

import "fmt"

// Validation error codes returned by New.
const (
	CodeMissingTileSize   = "MISSING_TILE_SIZE"
	CodeBadTileSize       = "BAD_TILE_SIZE"
	CodeNegativeDimension = "NEGATIVE_DIMENSION"
	CodeBadTileID         = "BAD_TILE_ID"
)

// ValidationError contains details about malformed map data.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) ValidationError {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
