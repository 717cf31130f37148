package models

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
)

// SupportedExtensions is the accept list of the upload control.
var SupportedExtensions = []string{".pdf", ".docx"}

// UploadedFile lives for a single request and is never stored.
type UploadedFile struct {
	ID      uuid.UUID
	Name    string
	Content []byte
	Type    FileType
}

// DetectFileType maps a file name to a supported type by its extension.
func DetectFileType(name string) (FileType, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FileTypePDF, true
	case ".docx":
		return FileTypeDOCX, true
	default:
		return "", false
	}
}

func NewUploadedFile(name string, content []byte) *UploadedFile {
	fileType, _ := DetectFileType(name)
	return &UploadedFile{
		ID:      uuid.New(),
		Name:    name,
		Content: content,
		Type:    fileType,
	}
}
