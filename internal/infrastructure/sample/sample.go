// Package sample ships the demo dataset used to seed a fresh backend and to
// answer reads while the primary store is unreachable.
package sample

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
	"github.com/oksasatya/talenthub/internal/infrastructure/memory"
)

//go:embed dataset.yaml
var datasetYAML []byte

type Dataset struct {
	Users    []entity.User    `yaml:"users"`
	Talents  []entity.Talent  `yaml:"talents"`
	Works    []entity.Work    `yaml:"works"`
	Projects []entity.Project `yaml:"projects"`
}

// Load decodes the embedded dataset.
func Load() (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(datasetYAML, &d); err != nil {
		return nil, fmt.Errorf("decode sample dataset: %w", err)
	}
	return &d, nil
}

// WriteTo puts every record under its own id. Existing records with the same
// id are overwritten, so seeding twice is harmless.
func (d *Dataset) WriteTo(ctx context.Context, s repository.Stores) error {
	if err := putAll(ctx, s.Users, d.Users, func(u entity.User) int64 { return u.ID }); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := putAll(ctx, s.Talents, d.Talents, func(t entity.Talent) int64 { return t.ID }); err != nil {
		return fmt.Errorf("seed talents: %w", err)
	}
	if err := putAll(ctx, s.Works, d.Works, func(w entity.Work) int64 { return w.ID }); err != nil {
		return fmt.Errorf("seed works: %w", err)
	}
	if err := putAll(ctx, s.Projects, d.Projects, func(p entity.Project) int64 { return p.ID }); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	return nil
}

func putAll[T any](ctx context.Context, store repository.RecordStore[T], recs []T, id func(T) int64) error {
	for _, rec := range recs {
		if err := store.Put(ctx, id(rec), rec); err != nil {
			return err
		}
	}
	return nil
}

// NewMemoryStore returns an in-memory store preloaded with the dataset.
func NewMemoryStore(ctx context.Context) (*memory.Store, error) {
	d, err := Load()
	if err != nil {
		return nil, err
	}
	st := memory.NewStore()
	if err := d.WriteTo(ctx, st.Stores()); err != nil {
		return nil, err
	}
	return st, nil
}
