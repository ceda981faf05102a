// Package seed loads an initial set of checklists from a YAML document and
// writes them through the checklist services, so seeded data obeys every
// rule a client request does.
package seed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NomadCrew/nomad-checklist-backend/internal/validation"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"gopkg.in/yaml.v3"
)

type File struct {
	Checklists []Checklist `yaml:"checklists"`
}

type Checklist struct {
	Name        string `yaml:"name"`
	TripType    string `yaml:"trip_type"`
	Description string `yaml:"description"`
	Items       []Item `yaml:"items"`
}

type Item struct {
	Name     string `yaml:"name"`
	Note     string `yaml:"note"`
	Verified bool   `yaml:"verified"`
}

// ChecklistCreator is the part of the checklist service used for seeding.
type ChecklistCreator interface {
	CreateChecklist(ctx context.Context, req types.ChecklistCreate) (*types.Checklist, error)
	CreateItem(ctx context.Context, req types.ChecklistItemCreate) (*types.ChecklistItem, error)
}

type StatusToggler interface {
	ToggleStatus(ctx context.Context, itemID string) (*types.ChecklistItem, error)
}

// Result counts what Apply created.
type Result struct {
	Checklists int
	Items      int
	Verified   int
}

// LoadFile reads and decodes the seed document at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a seed document. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &f, nil
}

// Apply creates every checklist and item in f, in document order, and marks
// items flagged verified. It stops at the first failure.
func Apply(ctx context.Context, f *File, checklists ChecklistCreator, status StatusToggler) (Result, error) {
	log := logger.GetLogger().Named("seed")
	var res Result

	for i, c := range f.Checklists {
		req := types.ChecklistCreate{
			Name:        c.Name,
			TripType:    types.TripType(c.TripType),
			Description: types.NormalizeText(&c.Description),
		}
		if err := validation.Struct(req); err != nil {
			return res, fmt.Errorf("checklist %d (%q): %w", i+1, c.Name, err)
		}

		created, err := checklists.CreateChecklist(ctx, req)
		if err != nil {
			return res, fmt.Errorf("checklist %d (%q): %w", i+1, c.Name, err)
		}
		res.Checklists++

		for j, it := range c.Items {
			itemReq := types.ChecklistItemCreate{
				ChecklistID: created.ID,
				Name:        it.Name,
				Note:        types.NormalizeText(&it.Note),
			}
			if err := validation.Struct(itemReq); err != nil {
				return res, fmt.Errorf("checklist %q item %d (%q): %w", c.Name, j+1, it.Name, err)
			}

			item, err := checklists.CreateItem(ctx, itemReq)
			if err != nil {
				return res, fmt.Errorf("checklist %q item %d (%q): %w", c.Name, j+1, it.Name, err)
			}
			res.Items++

			if it.Verified {
				if _, err := status.ToggleStatus(ctx, item.ID); err != nil {
					return res, fmt.Errorf("verify item %q: %w", it.Name, err)
				}
				res.Verified++
			}
		}
	}

	log.Infow("Seed data loaded",
		"checklists", res.Checklists,
		"items", res.Items,
		"verified", res.Verified)
	return res, nil
}
