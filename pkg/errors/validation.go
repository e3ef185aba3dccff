package errors

import (
	"path/filepath"
	"unicode"
)

// ValidatePath validates a file path given on the command line or in a
// config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(kind, path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "%s path cannot be empty", kind)
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "%s path too long (max %d characters)", kind, maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "%s path contains invalid characters", kind)
		}
	}

	return nil
}

// ValidateDistinctPaths rejects an output path that resolves to the input
// file, so the source document is never overwritten by its own panel.
func ValidateDistinctPaths(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "resolve input path %q", input)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "resolve output path %q", output)
	}
	if in == out {
		return New(ErrCodeInvalidPath, "output path %q is the input file", output)
	}
	return nil
}
