package files

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

var (
	ErrTooLarge    = errors.New("file too large")
	ErrUnsupported = errors.New("unsupported file type")
)

// ReadAllLimit reads at most max bytes and fails with ErrTooLarge past that.
func ReadAllLimit(r io.Reader, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, ErrTooLarge
	}
	return b, nil
}

var (
	imageExts    = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	documentExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
)

func IsImage(filename string) bool {
	return imageExts[strings.ToLower(filepath.Ext(filename))]
}

func IsDocument(filename string) bool {
	return documentExts[strings.ToLower(filepath.Ext(filename))]
}

// CheckDocument sniffs the content as well as the extension. doc and docx
// sniff as OLE or zip containers.
func CheckDocument(filename string, b []byte) error {
	if !IsDocument(filename) {
		return ErrUnsupported
	}
	switch ct := http.DetectContentType(b); {
	case ct == "application/pdf",
		ct == "application/zip",
		ct == "application/octet-stream":
		return nil
	}
	return ErrUnsupported
}
