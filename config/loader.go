package config

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec.Decode(out)
}

// ParseAnimationSet decodes an animation set document.
func ParseAnimationSet(data []byte) (*AnimationSet, error) {
	var set AnimationSet
	if err := decodeStrict(bytes.NewReader(data), &set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(set.Animations) == 0 {
		return nil, fmt.Errorf("%w: animation set %q has no animations", ErrInvalidConfig, set.Name)
	}
	if err := set.validateMovement(); err != nil {
		return nil, err
	}
	return &set, nil
}

// LoadAnimationSet reads an animation set from fsys. The set is named after
// its path when the document leaves the name empty.
func LoadAnimationSet(fsys fs.FS, path string) (*AnimationSet, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load animation set %s: %w", path, err)
	}

	set, err := ParseAnimationSet(data)
	if err != nil {
		return nil, fmt.Errorf("load animation set %s: %w", path, err)
	}
	if set.Name == "" {
		set.Name = path
	}
	return set, nil
}

// ParseScene decodes and validates a scene document.
func ParseScene(data []byte) (*Scene, error) {
	var scene Scene
	if err := decodeStrict(bytes.NewReader(data), &scene); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

// LoadScene reads a scene document from fsys.
func LoadScene(fsys fs.FS, path string) (*Scene, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}

	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return scene, nil
}

// LoadAnimationSets loads every set the scene references, keyed by the
// scene's set names. Documents are read concurrently; the first failure
// is returned.
func (s *Scene) LoadAnimationSets(fsys fs.FS) (map[string]*AnimationSet, error) {
	var (
		mu   sync.Mutex
		g    errgroup.Group
		sets = make(map[string]*AnimationSet, len(s.Animations))
	)

	for name, path := range s.Animations {
		g.Go(func() error {
			set, err := LoadAnimationSet(fsys, path)
			if err != nil {
				return err
			}
			set.Name = name

			mu.Lock()
			sets[name] = set
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
