package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"winnow/internal/media"
)

// GroupMap is an insertion-ordered mapping from group key to member files.
// encoding/json sorts plain map keys alphabetically; duplicate groups must
// round-trip in first-seen scan order, so this type carries its own order.
type GroupMap struct {
	keys   []string
	groups map[string][]media.File
}

func NewGroupMap() *GroupMap {
	return &GroupMap{groups: make(map[string][]media.File)}
}

// Set stores a group, appending the key on first sight and replacing the
// members on repeats.
func (m *GroupMap) Set(key string, files []media.File) {
	if m.groups == nil {
		m.groups = make(map[string][]media.File)
	}
	if _, seen := m.groups[key]; !seen {
		m.keys = append(m.keys, key)
	}
	m.groups[key] = files
}

func (m *GroupMap) Get(key string) ([]media.File, bool) {
	if m == nil || m.groups == nil {
		return nil, false
	}
	files, ok := m.groups[key]
	return files, ok
}

// Keys returns the group keys in insertion order.
func (m *GroupMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *GroupMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON writes the groups as a JSON object in insertion order.
func (m *GroupMap) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		filesJSON, err := json.Marshal(m.groups[key])
		if err != nil {
			return nil, err
		}
		buf.Write(filesJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving the key order it appears
// in on disk.
func (m *GroupMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.groups = make(map[string][]media.File)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("group map: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("group map: non-string key %v", keyTok)
		}
		var files []media.File
		if err := dec.Decode(&files); err != nil {
			return fmt.Errorf("group map %q: %w", key, err)
		}
		m.Set(key, files)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
