package filestore

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Local stores uploaded files on disk and serves them from a static route.
type Local struct {
	SaveDir string
	BaseURL string
}

func NewLocal(saveDir, baseURL string) *Local {
	return &Local{
		SaveDir: saveDir,
		BaseURL: baseURL,
	}
}

// UniqueName derives a collision-safe filename keeping the original extension.
func UniqueName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d-%d%s", time.Now().UnixNano(), rand.Intn(1_000_000), ext)
}

// Save writes the uploaded file under SaveDir with a unique name and returns
// the stored filename plus its public URL.
func (l *Local) Save(fileHeader *multipart.FileHeader) (string, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	if err := os.MkdirAll(l.SaveDir, os.ModePerm); err != nil {
		return "", "", err
	}

	filename := UniqueName(fileHeader.Filename)
	filePath := filepath.Join(l.SaveDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(filePath)
		return "", "", err
	}

	return filename, l.BaseURL + "/" + filename, nil
}
