// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathutil

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/macropower/pathlib/pkg/purepath"
)

type TempPaths interface {
	Add(key string, value purepath.Path)
	GetPath(key string) (purepath.Path, error)
	GetPathIfExists(key string) (purepath.Path, bool)
	GetPaths() map[string]purepath.Path
}

// RandomizedTempPaths allows generating and memoizing random paths, each path
// being mapped to a specific key.
type RandomizedTempPaths struct {
	paths map[string]purepath.Path
	root  purepath.Path
	lock  sync.RWMutex
}

func NewRandomizedTempPaths(root purepath.Path) *RandomizedTempPaths {
	return &RandomizedTempPaths{
		root:  root,
		paths: map[string]purepath.Path{},
	}
}

func (p *RandomizedTempPaths) Add(key string, value purepath.Path) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.paths[key] = value
}

// GetPath generates a path for the given key or returns previously generated one.
func (p *RandomizedTempPaths) GetPath(key string) (purepath.Path, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if val, ok := p.paths[key]; ok {
		return val, nil
	}

	uniqueID, err := uuid.NewRandom()
	if err != nil {
		return purepath.Path{}, fmt.Errorf("failed to generate uuid: %w", err)
	}

	tmpPath := p.root.Join(uniqueID.String())
	p.paths[key] = tmpPath

	return tmpPath, nil
}

// GetPathIfExists gets a path for the given key if it exists.
func (p *RandomizedTempPaths) GetPathIfExists(key string) (purepath.Path, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	val, ok := p.paths[key]

	return val, ok
}

// GetPaths gets a copy of the map of paths.
func (p *RandomizedTempPaths) GetPaths() map[string]purepath.Path {
	p.lock.RLock()
	defer p.lock.RUnlock()

	paths := map[string]purepath.Path{}
	for k, v := range p.paths {
		paths[k] = v
	}

	return paths
}
