package helpers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveFile stores the uploaded blob of the multipart field under
// dir and returns its reference path. An absent field is not an
// error: the path is empty and the caller keeps going.
func SaveFile(req *http.Request, field string, dir string) (string, error) {
	file, header, err := req.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, UploadName(header.Filename))

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return path, nil
}

// UploadName keeps the original extension behind a random name,
// so two uploads of the same file never collide
func UploadName(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}
