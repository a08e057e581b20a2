package service

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStorage keeps menu images in a single flat directory. Filenames are
// deterministic per menu item (menu_<id>.<ext>), so re-uploading replaces
// the previous image.
type FileStorage struct {
	uploadDir string
}

func NewFileStorage(uploadDir string) *FileStorage {
	return &FileStorage{uploadDir: uploadDir}
}

// Store writes the file bytes under the item's deterministic name and
// returns that name. An existing file at the same path is overwritten.
func (fs *FileStorage) Store(data []byte, originalName string, menuItemID uuid.UUID) (string, error) {
	if err := os.MkdirAll(fs.uploadDir, 0755); err != nil {
		return "", err
	}

	ext := ""
	if i := strings.LastIndex(originalName, "."); i >= 0 {
		ext = originalName[i:]
	}

	filename := "menu_" + menuItemID.String() + ext
	if err := os.WriteFile(filepath.Join(fs.uploadDir, filename), data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// Load returns the path a filename resolves to. It does not check existence.
func (fs *FileStorage) Load(filename string) string {
	return filepath.Join(fs.uploadDir, filename)
}

func (fs *FileStorage) Exists(filename string) bool {
	if filename == "" {
		return false
	}
	_, err := os.Stat(fs.Load(filename))
	return err == nil
}

// Delete removes the file and reports whether one was actually removed.
// IO errors are logged and reported as false, never raised.
func (fs *FileStorage) Delete(filename string) bool {
	if filename == "" {
		return false
	}
	err := os.Remove(fs.Load(filename))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("gagal menghapus file %s: %v", filename, err)
		}
		return false
	}
	return true
}

func (fs *FileStorage) UploadDir() string {
	return fs.uploadDir
}
