package history

import (
	"sort"
)

// Store maps a category/name to its Atom. It is owned by a single scan and is
// not safe for concurrent use.
// Store 将 category/name 映射到 Atom，仅由单次扫描持有，非并发安全。
type Store struct {
	atoms map[string]*Atom
}

// NewStore creates an empty Store.
// NewStore 创建空的 Store。
func NewStore() *Store {
	return &Store{atoms: make(map[string]*Atom)}
}

// Record adds a completed build sample for cpn, creating the Atom on first use.
// endTime becomes the Atom's most recent start time.
// Record 为 cpn 添加一个已完成样本，首次使用时创建 Atom；endTime 成为最近的开始时间。
func (s *Store) Record(cpn string, duration, endTime int64) *Atom {
	atom, ok := s.atoms[cpn]
	if !ok {
		atom = NewAtom(cpn, duration, endTime)
		s.atoms[cpn] = atom
		return atom
	}
	atom.Add(duration)
	atom.LastStart = endTime
	return atom
}

// Get returns the Atom of cpn, if any build of it ever completed.
// Get 返回 cpn 对应的 Atom（若曾完成过构建）。
func (s *Store) Get(cpn string) (*Atom, bool) {
	atom, ok := s.atoms[cpn]
	return atom, ok
}

// Touch sets the most recent start time of an existing Atom. Unknown cpns are ignored.
// Touch 设置已有 Atom 的最近开始时间，未知 cpn 将被忽略。
func (s *Store) Touch(cpn string, start int64) {
	if atom, ok := s.atoms[cpn]; ok {
		atom.LastStart = start
	}
}

// Len returns the number of packages with history.
func (s *Store) Len() int {
	return len(s.atoms)
}

// Atoms returns every Atom sorted by cpn.
// Atoms 返回按 cpn 排序的全部 Atom。
func (s *Store) Atoms() []*Atom {
	out := make([]*Atom, 0, len(s.atoms))
	for _, atom := range s.atoms {
		out = append(out, atom)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CPN < out[j].CPN })
	return out
}
