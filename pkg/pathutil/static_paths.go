package pathutil

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/purepath"
)

type PathEncoder interface {
	Encode(key string) string
	Decode(key string) (string, error)
}

// StaticTempPaths provides a way to generate temporary paths that survive
// process restarts. Rather than storing a mapping of key->path in memory, it
// uses a simple bijective encoding to convert keys to path names, so the
// same key always maps to the same path under root.
type StaticTempPaths struct {
	pe   PathEncoder
	sys  fsys.FileSystem
	root purepath.Path
}

func NewStaticTempPaths(root purepath.Path, pe PathEncoder, sys fsys.FileSystem) *StaticTempPaths {
	err := sys.MkdirAll(root.String(), 0o700)
	if err != nil {
		panic(err)
	}

	return &StaticTempPaths{
		root: root,
		pe:   pe,
		sys:  sys,
	}
}

func (p *StaticTempPaths) keyToPath(key string) purepath.Path {
	return p.root.Join(p.pe.Encode(key))
}

func (p *StaticTempPaths) pathToKey(path purepath.Path) string {
	key, err := p.pe.Decode(path.Name())
	if err != nil {
		panic(fmt.Errorf("failed to decode key for %s: %w", path, err))
	}

	return key
}

func (p *StaticTempPaths) Add(_ string, _ purepath.Path) {
}

// GetPath generates a path for the given key or returns previously generated one.
func (p *StaticTempPaths) GetPath(key string) (purepath.Path, error) {
	return p.keyToPath(key), nil
}

func (p *StaticTempPaths) GetKey(path purepath.Path) (string, error) {
	return p.pathToKey(path), nil
}

// GetPathIfExists gets a path for the given key if its file or directory
// already exists on disk.
func (p *StaticTempPaths) GetPathIfExists(key string) (purepath.Path, bool) {
	path := p.keyToPath(key)
	if _, err := p.sys.Stat(path.String()); err != nil {
		return purepath.Path{}, false
	}

	return path, true
}

// GetPaths gets a copy of the map of paths.
func (p *StaticTempPaths) GetPaths() map[string]purepath.Path {
	ds, err := os.ReadDir(p.root.String())
	if err != nil {
		panic(err)
	}

	paths := map[string]purepath.Path{}

	for _, d := range ds {
		path := p.root.Join(d.Name())
		paths[p.pathToKey(path)] = path
	}

	return paths
}

type Base64PathEncoder struct{}

func NewBase64PathEncoder() *Base64PathEncoder {
	return &Base64PathEncoder{}
}

func (*Base64PathEncoder) Encode(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func (*Base64PathEncoder) Decode(s string) (string, error) {
	d, err := base64.URLEncoding.DecodeString(s)

	return string(d), err
}
