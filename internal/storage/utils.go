package storage

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateFileName generates a UUID-based file name keeping the given extension
func GenerateFileName(extension string) string {
	extension = strings.ToLower(extension)
	if extension != "" && extension[0] != '.' {
		extension = "." + extension
	}
	return uuid.New().String() + extension
}

// sizeWriter counts the bytes written to it
type sizeWriter struct {
	size int64
}

func (sw *sizeWriter) Write(p []byte) (int, error) {
	sw.size += int64(len(p))
	return len(p), nil
}

// Size returns the total number of bytes written
func (sw *sizeWriter) Size() int64 {
	return sw.size
}

// NewSizeWriter creates a new sizeWriter instance
func NewSizeWriter() *sizeWriter {
	return &sizeWriter{}
}
