// Package resume reads the list of packages Portage still has to merge from
// the "resume" entry of mtimedb.
// Package resume 从 mtimedb 的 "resume" 项读取 Portage 尚待合并的软件包列表。
package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/livp123/genlogsum/internal/utils/logger"
	apperrors "github.com/livp123/genlogsum/pkg/errors"
)

// KindBinary marks a mergelist entry installed from a binary package.
const KindBinary = "binary"

// Entry is one package scheduled to be merged.
// Entry 是一个计划合并的软件包。
type Entry struct {
	Binary   bool
	FullName string // category/name-version
}

type mtimedb struct {
	Resume *struct {
		Mergelist []json.RawMessage `json:"mergelist"`
	} `json:"resume"`
}

// Parse decodes an mtimedb document. Each mergelist item is
// [kind, root, cpv, action]; items whose cpv is not a string are returned as
// skipped errors alongside the valid entries.
// Parse 解码 mtimedb 文档，返回有效条目以及被跳过条目的错误。
func Parse(path string, data []byte) ([]Entry, []error, error) {
	var db mtimedb
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, nil, apperrors.NewResumeError(path, err)
	}
	if db.Resume == nil {
		return nil, nil, apperrors.NewResumeError(path, fmt.Errorf("no resume list"))
	}
	if db.Resume.Mergelist == nil {
		return nil, nil, apperrors.NewResumeError(path, fmt.Errorf("no mergelist"))
	}

	var entries []Entry
	var skipped []error
	for i, raw := range db.Resume.Mergelist {
		var item []interface{}
		if err := json.Unmarshal(raw, &item); err != nil {
			skipped = append(skipped, apperrors.NewResumeError(path, fmt.Errorf("mergelist[%d]: %v", i, err)))
			continue
		}
		if len(item) < 3 {
			skipped = append(skipped, apperrors.NewResumeError(path, fmt.Errorf("mergelist[%d]: %d fields", i, len(item))))
			continue
		}
		cpv, ok := item[2].(string)
		if !ok {
			skipped = append(skipped, apperrors.NewResumeError(path, fmt.Errorf("mergelist[%d]: package is %T", i, item[2])))
			continue
		}
		kind, _ := item[0].(string)
		entries = append(entries, Entry{Binary: kind == KindBinary, FullName: cpv})
	}
	return entries, skipped, nil
}

// Read returns the resume list at path. Reading is best effort: a missing,
// unreadable or invalid file yields an empty list and a warning.
// Read 返回 path 处的恢复列表；出错时返回空列表并记录警告。
func Read(ctx context.Context, path string) []Entry {
	log := logger.Get(ctx)

	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 // path is derived from the configured root
	if err != nil {
		log.Warnf("⚠️  Cannot read resume list %s: %v", path, err)
		return nil
	}

	entries, skipped, err := Parse(path, data)
	if err != nil {
		log.Warnf("⚠️  %v", err)
		return nil
	}
	for _, e := range skipped {
		log.Warnf("⚠️  Skipping resume entry: %v", e)
	}
	log.Debugf("Read %d resume entries from %s", len(entries), path)
	return entries
}
