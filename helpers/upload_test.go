package helpers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadName(t *testing.T) {
	name := UploadName("holiday.png")
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("UploadName(%q) = %q, extension lost", "holiday.png", name)
	}

	if name == UploadName("holiday.png") {
		t.Error("two uploads of the same file got the same name")
	}
}

func TestSaveFile(t *testing.T) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	part, err := writer.CreateFormFile("postImage", "pic.jpg")
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	part.Write([]byte("not really a jpeg"))
	writer.Close()

	req := httptest.NewRequest("POST", "/create-post", buffer)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	dir := t.TempDir()
	path, err := SaveFile(req, "postImage", dir)
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("SaveFile() stored under %v, want %v", filepath.Dir(path), dir)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(content) != "not really a jpeg" {
		t.Errorf("stored content = %q", content)
	}
}

func TestSaveFileMissingField(t *testing.T) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	writer.WriteField("bio", "hello")
	writer.Close()

	req := httptest.NewRequest("POST", "/receive-data", buffer)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	path, err := SaveFile(req, "profilePic", t.TempDir())
	if err != nil {
		t.Fatalf("SaveFile() error = %v, want nil for a missing field", err)
	}
	if path != "" {
		t.Errorf("SaveFile() = %q, want empty path for a missing field", path)
	}
}
