// Package storage manages the local media directories: uploaded videos,
// generated thumbnails and avatars. Filenames are randomized to avoid
// collisions; callers keep only the stored name.
package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"streamzone/pkg/utils"
)

var allowedVideoExts = map[string]bool{
	".mp4": true, ".m4v": true, ".mpeg": true, ".mpg": true,
	".mov": true, ".webm": true, ".ogg": true, ".ogv": true,
	".3gp": true, ".avi": true,
}

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

type Manager struct {
	videosDir string
	imagesDir string

	// serveLocal mirrors the deployment capability flag: when false the
	// streaming endpoint refuses local playback without touching the disk.
	serveLocal bool

	maxVideoSize int64
	maxImageSize int64
}

func New(videosDir, imagesDir string, serveLocal bool, maxVideoMB, maxImageMB int64) (*Manager, error) {
	for _, dir := range []string{videosDir, imagesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.WithMessage(err, "failed to create upload directory")
		}
	}
	return &Manager{
		videosDir:    videosDir,
		imagesDir:    imagesDir,
		serveLocal:   serveLocal,
		maxVideoSize: maxVideoMB << 20,
		maxImageSize: maxImageMB << 20,
	}, nil
}

func (m *Manager) ServeLocal() bool { return m.serveLocal }

func (m *Manager) VideoPath(filename string) string {
	return filepath.Join(m.videosDir, filepath.Base(filename))
}

func (m *Manager) ImagePath(filename string) string {
	return filepath.Join(m.imagesDir, filepath.Base(filename))
}

// SaveVideo stores an uploaded video file under a randomized name and
// returns that name.
func (m *Manager) SaveVideo(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedVideoExts[ext] {
		return "", errors.New("invalid file type, only video files are allowed")
	}
	if fh.Size > m.maxVideoSize {
		return "", errors.New("video file too large")
	}
	name := utils.RandomFilename("video", fh.Filename)
	if err := m.saveFile(fh, m.VideoPath(name)); err != nil {
		return "", err
	}
	return name, nil
}

// SaveImage stores an uploaded image (avatar source) under a randomized name.
func (m *Manager) SaveImage(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return "", errors.New("invalid file type, only image files are allowed")
	}
	if fh.Size > m.maxImageSize {
		return "", errors.New("image file too large")
	}
	name := utils.RandomFilename("image", fh.Filename)
	if err := m.saveFile(fh, m.ImagePath(name)); err != nil {
		return "", err
	}
	return name, nil
}

func (m *Manager) saveFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return errors.WithMessage(err, "failed to open uploaded file")
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.WithMessage(err, "failed to create stored file")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return errors.WithMessage(err, "failed to write stored file")
	}
	return nil
}

// RemoveVideo deletes a stored video file; a missing file is not an error.
func (m *Manager) RemoveVideo(filename string) error {
	return removeIfExists(m.VideoPath(filename))
}

// RemoveImage deletes a stored thumbnail or avatar; a missing file is not an
// error.
func (m *Manager) RemoveImage(filename string) error {
	return removeIfExists(m.ImagePath(filename))
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
