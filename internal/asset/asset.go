// Package asset loads a window-frame assembly description and its material library.
package asset

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"frame-configurator/internal/materials"
	"frame-configurator/internal/scene"
)

// ErrNoParts is returned for a description that declares no parts.
var ErrNoParts = errors.New("model has no parts")

// Vec3 is a YAML triple: [x, y, z].
type Vec3 [3]float64

func (v Vec3) vec() r3.Vec { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// PartDesc describes one authored part. Size is the local box, centred on the part origin.
type PartDesc struct {
	Name     string `yaml:"name"`
	Size     Vec3   `yaml:"size"`
	Position Vec3   `yaml:"position"`
	Scale    *Vec3  `yaml:"scale,omitempty"`
	Material string `yaml:"material,omitempty"`
}

// ModelDesc is the on-disk form of an assembly.
type ModelDesc struct {
	Name  string     `yaml:"name"`
	Parts []PartDesc `yaml:"parts"`
}

// Result is a loaded assembly plus the library its materials came from.
type Result struct {
	Model   *scene.Model
	Library *materials.Library
}

// ParseModel decodes an assembly description. Part materials are resolved later, against
// the library.
func ParseModel(data []byte) (*ModelDesc, error) {
	var d ModelDesc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(d.Parts) == 0 {
		return nil, ErrNoParts
	}
	return &d, nil
}

// Build turns a description into a model, giving each part its own material clone from lib.
// Parts naming an unknown material keep a neutral grey.
func Build(d *ModelDesc, lib *materials.Library, log *zap.Logger) *scene.Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := scene.NewModel(d.Name)
	for _, pd := range d.Parts {
		half := r3.Scale(0.5, pd.Size.vec())
		p := scene.NewPart(pd.Name, r3.Box{Min: r3.Scale(-1, half), Max: half}, pd.Position.vec())
		if pd.Scale != nil {
			p.Scale = pd.Scale.vec()
		}
		p.Material = &scene.Material{Name: "Default", Color: "#808080"}
		if pd.Material != "" {
			mat, err := lib.Lookup(pd.Material)
			if err != nil {
				log.Warn("part material not in library", zap.String("part", pd.Name), zap.Error(err))
			} else {
				p.Material = mat
			}
		}
		m.Add(p)
	}
	return m
}

// Loader reads assembly and material files.
type Loader struct {
	log *zap.Logger
}

// NewLoader returns a loader.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads the model and the material library concurrently. A material library that fails
// to load is logged and replaced by an empty one; only model failures are returned.
func (l *Loader) Load(ctx context.Context, modelPath, materialsPath string) (Result, error) {
	var (
		desc *ModelDesc
		lib  = materials.NewLibrary()
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := os.ReadFile(modelPath)
		if err != nil {
			return fmt.Errorf("read model %s: %w", modelPath, err)
		}
		d, err := ParseModel(data)
		if err != nil {
			return fmt.Errorf("%s: %w", modelPath, err)
		}
		desc = d
		return ctx.Err()
	})
	g.Go(func() error {
		loaded, err := materials.Load(materialsPath)
		if err != nil {
			l.log.Error("material library load failed; continuing without materials",
				zap.String("path", materialsPath), zap.Error(err))
			return nil
		}
		lib = loaded
		l.log.Info("material library loaded", zap.Strings("materials", lib.Names()))
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Model: Build(desc, lib, l.log), Library: lib}, nil
}
