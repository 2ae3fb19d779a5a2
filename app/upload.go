// Package app validates uploaded image files before analysis.
package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const MaxFileSize = 5 * 1024 * 1024 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type invalidFileTypeError struct {
	Extension string
}

func (e invalidFileTypeError) Error() string {
	return fmt.Sprintf("Invalid file type. Allowed types: %s", strings.Join(allowedExtensionList(), ", "))
}

type fileTooLargeError struct {
	Size int
}

func (e fileTooLargeError) Error() string {
	return fmt.Sprintf("File too large. Maximum size is %dMB", MaxFileSize/(1024*1024))
}

// ValidateUpload checks the filename extension and payload size against the
// upload policy. The extension is trusted at face value; file content is not
// sniffed.
func ValidateUpload(filename string, payload []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return invalidFileTypeError{Extension: ext}
	}
	if len(payload) > MaxFileSize {
		return fileTooLargeError{Size: len(payload)}
	}
	return nil
}

func allowedExtensionList() []string {
	out := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
