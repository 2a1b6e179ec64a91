// Package streaming serves local media files with HTTP range support so
// players can seek without downloading the whole file.
package streaming

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrFileNotFound is returned before any header is produced when the backing
// file is absent from the serving node.
var ErrFileNotFound = errors.New("media file not found")

// Result describes the response the caller should write: status, headers and
// a body that reads straight from the file, never a full in-memory copy.
// Body is nil for 416 responses.
type Result struct {
	StatusCode    int
	Headers       map[string]string
	Body          io.ReadCloser
	ContentLength int64
}

type limitedFile struct {
	io.Reader
	f *os.File
}

func (l *limitedFile) Close() error { return l.f.Close() }

// StreamFile opens filePath and builds a 200 (full content) or 206 (partial
// content) response honoring rangeHeader ("bytes=<start>-<end>", end
// optional). Unsatisfiable or malformed ranges yield a 416 result.
func StreamFile(filePath, rangeHeader string) (*Result, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithMessage(ErrFileNotFound, filePath)
		}
		return nil, err
	}
	fileSize := info.Size()
	mediaType := contentType(filePath)

	if rangeHeader == "" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		return &Result{
			StatusCode: 200,
			Headers: map[string]string{
				"Content-Length": strconv.FormatInt(fileSize, 10),
				"Content-Type":   mediaType,
				"Accept-Ranges":  "bytes",
			},
			Body:          f,
			ContentLength: fileSize,
		}, nil
	}

	start, end, ok := parseRange(rangeHeader, fileSize)
	if !ok {
		return &Result{
			StatusCode: 416,
			Headers: map[string]string{
				"Content-Range": fmt.Sprintf("bytes */%d", fileSize),
			},
		}, nil
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	chunkSize := end - start + 1
	return &Result{
		StatusCode: 206,
		Headers: map[string]string{
			"Content-Range":  fmt.Sprintf("bytes %d-%d/%d", start, end, fileSize),
			"Accept-Ranges":  "bytes",
			"Content-Length": strconv.FormatInt(chunkSize, 10),
			"Content-Type":   mediaType,
		},
		Body:          &limitedFile{Reader: io.LimitReader(f, chunkSize), f: f},
		ContentLength: chunkSize,
	}, nil
}

// parseRange understands the single-range form "bytes=<start>-<end>" with an
// optional end that defaults to the last byte.
func parseRange(header string, fileSize int64) (start, end int64, ok bool) {
	spec, found := strings.CutPrefix(header, "bytes=")
	if !found {
		return 0, 0, false
	}
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil || start < 0 {
		return 0, 0, false
	}

	end = fileSize - 1
	if trimmed := strings.TrimSpace(parts[1]); trimmed != "" {
		end, err = strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return 0, 0, false
		}
	}
	if end > fileSize-1 {
		end = fileSize - 1
	}
	if start > end || start >= fileSize {
		return 0, 0, false
	}
	return start, end, true
}

func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".ogg", ".ogv":
		return "video/ogg"
	case ".mov":
		return "video/quicktime"
	case ".mpeg", ".mpg":
		return "video/mpeg"
	case ".3gp":
		return "video/3gpp"
	case ".avi":
		return "video/x-msvideo"
	}
	return "application/octet-stream"
}
