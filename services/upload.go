package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	MaxTagSheetSize = 5 * 1024 * 1024 // 5MB
	TagSheetExt     = ".xlsx"
)

// xlsx workbooks are zip archives
var zipMagic = []byte("PK\x03\x04")

var ErrInvalidUpload = errors.New("invalid upload")

// ValidateTagSheetUpload checks that an uploaded file is an xlsx workbook
// within size limits
func ValidateTagSheetUpload(fileHeader *multipart.FileHeader) error {
	// Check file size
	if fileHeader.Size > MaxTagSheetSize {
		return fmt.Errorf("%w: el archivo supera el máximo de 5MB", ErrInvalidUpload)
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != TagSheetExt {
		return fmt.Errorf("%w: solo se admiten archivos .xlsx", ErrInvalidUpload)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Check the archive signature
	header := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(file, header); err != nil || !bytes.Equal(header, zipMagic) {
		return fmt.Errorf("%w: el archivo no es un libro xlsx válido", ErrInvalidUpload)
	}

	return nil
}
