package media

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyFilename error = errors.New("empty filename")

// Extension returns the text after the last dot of filename. A name without
// a dot is its own extension.
func Extension(filename string) string {
	return filename[strings.LastIndex(filename, ".")+1:]
}

// objectName generates a unique name that keeps the extension of filename.
func objectName(filename string) string {
	name := uuid.NewString()
	if ext := Extension(filename); ext != "" {
		name += "." + ext
	}
	return name
}
