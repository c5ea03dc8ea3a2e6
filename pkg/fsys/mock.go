package fsys

import (
	"bytes"
	"os"
	"path"
	"strings"
	"sync"
	"time"
)

// Mock implements [FileSystem] in memory for tests. Paths are normalized to
// clean, absolute, slash-separated form. The zero value is not usable;
// create instances with [NewMock].
type Mock struct {
	Files    map[string][]byte
	Dirs     map[string]bool
	Symlinks map[string]string
	Cwd      string

	mu sync.Mutex
}

var _ FileSystem = (*Mock)(nil)

// NewMock returns an empty in-memory filesystem rooted at "/".
func NewMock() *Mock {
	return &Mock{
		Files:    make(map[string][]byte),
		Dirs:     map[string]bool{"/": true},
		Symlinks: make(map[string]string),
		Cwd:      "/",
	}
}

// AddFile registers a file with content, creating parent directories.
func (m *Mock) AddFile(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	m.Files[name] = data
	m.addParents(name)
}

// AddDir registers a directory, creating parents.
func (m *Mock) AddDir(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	m.Dirs[name] = true
	m.addParents(name)
}

// AddSymlink registers a symlink pointing at target.
func (m *Mock) AddSymlink(name, target string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	m.Symlinks[name] = m.normalize(target)
	m.addParents(name)
}

func (m *Mock) addParents(name string) {
	for dir := path.Dir(name); ; dir = path.Dir(dir) {
		m.Dirs[dir] = true

		if dir == "/" {
			break
		}
	}
}

func (m *Mock) normalize(name string) string {
	if !strings.HasPrefix(name, "/") {
		name = m.Cwd + "/" + name
	}

	return path.Clean(name)
}

func (m *Mock) FileExists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.follow(m.normalize(name))
	_, ok := m.Files[name]

	return ok
}

func (m *Mock) DirExists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Dirs[m.follow(m.normalize(name))]
}

func (m *Mock) SymlinkExists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.Symlinks[m.normalize(name)]

	return ok
}

// follow resolves a symlink chain, if any.
func (m *Mock) follow(name string) string {
	for range 16 {
		target, ok := m.Symlinks[name]
		if !ok {
			return name
		}

		name = target
	}

	return name
}

func (m *Mock) Stat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stat(m.follow(m.normalize(name)), 0)
}

func (m *Mock) Lstat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	if _, ok := m.Symlinks[name]; ok {
		return m.stat(name, os.ModeSymlink)
	}

	return m.stat(name, 0)
}

func (m *Mock) stat(name string, extra os.FileMode) (os.FileInfo, error) {
	if data, ok := m.Files[name]; ok {
		return &mockFileInfo{name: path.Base(name), size: int64(len(data)), mode: extra | 0o644}, nil
	}

	if m.Dirs[name] {
		return &mockFileInfo{name: path.Base(name), isDir: true, mode: extra | os.ModeDir | 0o755}, nil
	}

	if extra&os.ModeSymlink != 0 {
		return &mockFileInfo{name: path.Base(name), mode: extra}, nil
	}

	return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
}

func (m *Mock) Chmod(name string, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	if _, ok := m.Files[name]; !ok && !m.Dirs[name] {
		return &os.PathError{Op: "chmod", Path: name, Err: os.ErrNotExist}
	}

	return nil
}

func (m *Mock) Rename(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldname = m.normalize(oldname)
	newname = m.normalize(newname)

	if data, ok := m.Files[oldname]; ok {
		m.Files[newname] = data
		delete(m.Files, oldname)

		return nil
	}

	if m.Dirs[oldname] {
		m.Dirs[newname] = true
		delete(m.Dirs, oldname)

		prefix := oldname + "/"
		for k, v := range m.Files {
			if strings.HasPrefix(k, prefix) {
				m.Files[newname+"/"+strings.TrimPrefix(k, prefix)] = v
				delete(m.Files, k)
			}
		}

		for k := range m.Dirs {
			if strings.HasPrefix(k, prefix) {
				m.Dirs[newname+"/"+strings.TrimPrefix(k, prefix)] = true
				delete(m.Dirs, k)
			}
		}

		return nil
	}

	return &os.PathError{Op: "rename", Path: oldname, Err: os.ErrNotExist}
}

func (m *Mock) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	if _, ok := m.Files[name]; !ok && !m.Dirs[name] {
		if _, ok := m.Symlinks[name]; !ok {
			return &os.PathError{Op: "remove", Path: name, Err: os.ErrNotExist}
		}
	}

	delete(m.Files, name)
	delete(m.Dirs, name)
	delete(m.Symlinks, name)

	return nil
}

func (m *Mock) RemoveAll(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	delete(m.Files, name)
	delete(m.Dirs, name)
	delete(m.Symlinks, name)

	prefix := name + "/"
	for k := range m.Files {
		if strings.HasPrefix(k, prefix) {
			delete(m.Files, k)
		}
	}

	for k := range m.Dirs {
		if strings.HasPrefix(k, prefix) {
			delete(m.Dirs, k)
		}
	}

	for k := range m.Symlinks {
		if strings.HasPrefix(k, prefix) {
			delete(m.Symlinks, k)
		}
	}

	return nil
}

func (m *Mock) Mkdir(name string, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	if !m.Dirs[path.Dir(name)] {
		return &os.PathError{Op: "mkdir", Path: name, Err: os.ErrNotExist}
	}

	if m.Dirs[name] {
		return &os.PathError{Op: "mkdir", Path: name, Err: os.ErrExist}
	}

	m.Dirs[name] = true

	return nil
}

func (m *Mock) MkdirAll(name string, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	m.Dirs[name] = true
	m.addParents(name)

	return nil
}

func (m *Mock) Resolve(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.follow(m.normalize(name)), nil
}

func (m *Mock) Readlink(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.normalize(name)
	if target, ok := m.Symlinks[name]; ok {
		return target, nil
	}

	if _, ok := m.Files[name]; ok || m.Dirs[name] {
		return "", &os.PathError{Op: "readlink", Path: name, Err: os.ErrInvalid}
	}

	return "", &os.PathError{Op: "readlink", Path: name, Err: os.ErrNotExist}
}

func (m *Mock) OpenFile(name string, flag int, _ os.FileMode) (File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = m.follow(m.normalize(name))

	data, exists := m.Files[name]

	if !exists && flag&os.O_CREATE == 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}

	if flag&os.O_TRUNC != 0 {
		data = nil
	}

	f := &mockFile{name: name, fs: m}
	f.buf = bytes.NewBuffer(append([]byte(nil), data...))

	if flag&os.O_APPEND == 0 && flag&os.O_TRUNC == 0 && exists {
		// Reads start at offset zero; the mock does not track positions
		// separately for read-write handles.
		f.reader = bytes.NewReader(data)
	} else {
		f.reader = bytes.NewReader(nil)
	}

	m.Files[name] = data
	m.addParents(name)

	return f, nil
}

type mockFile struct {
	fs     *Mock
	buf    *bytes.Buffer
	reader *bytes.Reader
	name   string
}

func (f *mockFile) Name() string { return f.name }

func (f *mockFile) Read(p []byte) (int, error) { return f.reader.Read(p) }

func (f *mockFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

func (f *mockFile) Write(p []byte) (int, error) { return f.buf.Write(p) }

func (f *mockFile) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	f.fs.Files[f.name] = f.buf.Bytes()

	return nil
}

type mockFileInfo struct {
	modTime time.Time
	name    string
	size    int64
	mode    os.FileMode
	isDir   bool
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() any           { return nil }
