package emergelog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	"github.com/livp123/genlogsum/internal/history"
	"github.com/livp123/genlogsum/internal/utils/logger"
	apperrors "github.com/livp123/genlogsum/pkg/errors"
)

// Snapshot is a read-only memory mapping of a complete log file.
// Snapshot 是完整日志文件的只读内存映射。
type Snapshot struct {
	file *os.File
	data mmap.MMap
}

// OpenSnapshot maps path into memory. A missing file is reported as
// ErrFileNotFound.
// OpenSnapshot 将 path 映射到内存，文件不存在时返回 ErrFileNotFound。
func OpenSnapshot(path string) (*Snapshot, error) {
	safePath := filepath.Clean(path)
	f, err := os.Open(safePath) // #nosec G304 // path comes from the operator's own configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewFileError(safePath, err)
		}
		if os.IsPermission(err) {
			return nil, apperrors.NewPermissionError(safePath, err)
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Mapping an empty file fails with EINVAL.
	if info.Size() == 0 {
		return &Snapshot{file: f}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Snapshot{file: f, data: data}, nil
}

// Lines calls fn for every line, without the trailing "\n" or "\r\n".
// Lines 对每一行调用 fn（不含行尾换行符）。
func (s *Snapshot) Lines(fn func(line string)) {
	data := []byte(s.data)
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		fn(string(line))
	}
}

// Close unmaps the file.
// Close 解除文件映射。
func (s *Snapshot) Close() error {
	var err error
	if s.data != nil {
		err = s.data.Unmap()
		s.data = nil
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Scan is the outcome of reading one emerge.log.
// Scan 是读取一个 emerge.log 的结果。
type Scan struct {
	Path     string
	Store    *history.Store
	InFlight []BuildEvent
	Stats    ScanStats
}

// ScanFile reads path from top to bottom with a fresh in-flight set and a fresh
// history.Store.
// ScanFile 使用全新的进行中集合与 history.Store 从头到尾读取 path。
func ScanFile(ctx context.Context, path string) (*Scan, error) {
	log := logger.Get(ctx)

	snap, err := OpenSnapshot(path)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	store := history.NewStore()
	c := NewCorrelator(store, log)
	snap.Lines(c.Process)
	running := c.Finish()

	stats := c.Stats()
	log.Debugf("Scanned %s: %d lines, %d completed, %d malformed, %d in flight",
		path, stats.Lines, stats.Completed, stats.Malformed, len(running))

	return &Scan{
		Path:     path,
		Store:    store,
		InFlight: running,
		Stats:    stats,
	}, nil
}
