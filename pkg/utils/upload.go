package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFiles writes multipart files into dir and returns the
// generated filenames. Only bare filenames are stored; serving them is
// left to the static file layer.
func SaveUploadedFiles(files []*multipart.FileHeader, dir string) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	var filenames []string
	for _, fh := range files {
		name := uuid.New().String() + filepath.Ext(fh.Filename)

		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open uploaded file %s: %w", fh.Filename, err)
		}

		dst, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("create file %s: %w", name, err)
		}

		if _, err := io.Copy(dst, src); err != nil {
			src.Close()
			dst.Close()
			return nil, fmt.Errorf("write file %s: %w", name, err)
		}

		src.Close()
		dst.Close()
		filenames = append(filenames, name)
	}

	return filenames, nil
}
