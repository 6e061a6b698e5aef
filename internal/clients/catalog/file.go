package catalog

import (
	"context"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
)

// FileConfig holds the configuration for the file-backed catalog
type FileConfig struct {
	Path string
}

// Validate ensures all required fields are provided
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return vb.RequiredField("config").Build()
	}
	errors.ValidateRequired("Path", c.Path, vb)
	return vb.Build()
}

type fileDocument struct {
	Items []fileItem `yaml:"items"`
	Slots []fileSlot `yaml:"slots"`
}

type fileItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Flavor      string `yaml:"flavor"`
	UnlockHint  string `yaml:"unlock_hint"`
	Icon        string `yaml:"icon"`
	Visibility  string `yaml:"visibility"`
}

type fileSlot struct {
	ID           string   `yaml:"id"`
	ParameterKey string   `yaml:"parameter_key"`
	Locked       bool     `yaml:"locked"`
	Default      string   `yaml:"default"`
	Eligible     []string `yaml:"eligible"`
}

// FileClient serves a catalog parsed once from a YAML document
type FileClient struct {
	items []*memento.Item
	slots []*memento.Slot
}

// Ensure FileClient implements Client
var _ Client = (*FileClient)(nil)

// NewFileClient reads and validates the catalog file
func NewFileClient(cfg *FileConfig) (*FileClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	// #nosec G304 -- path comes from operator configuration
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", cfg.Path)
	}

	client, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog %s", cfg.Path)
	}

	slog.Info("Catalog loaded",
		"path", cfg.Path,
		"items", len(client.items),
		"slots", len(client.slots),
	)

	return client, nil
}

// Parse builds a FileClient from YAML bytes
func Parse(data []byte) (*FileClient, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog is not valid YAML")
	}

	vb := errors.NewValidationBuilder()
	seenItems := make(map[string]bool, len(doc.Items))
	items := make([]*memento.Item, 0, len(doc.Items))
	for i, fi := range doc.Items {
		if fi.ID == "" {
			vb.Fieldf("items", "entry %d has no id", i)
			continue
		}
		if seenItems[fi.ID] {
			vb.Fieldf("items", "duplicate id %s", fi.ID)
			continue
		}
		seenItems[fi.ID] = true

		visibility, ok := memento.ParseVisibility(fi.Visibility)
		if !ok {
			vb.Fieldf("items", "%s has unknown visibility %q", fi.ID, fi.Visibility)
			continue
		}

		items = append(items, &memento.Item{
			ID:          fi.ID,
			DisplayName: fi.Name,
			Description: fi.Description,
			FlavorText:  fi.Flavor,
			UnlockHint:  fi.UnlockHint,
			IconRef:     fi.Icon,
			Visibility:  visibility,
		})
	}

	seenSlots := make(map[string]bool, len(doc.Slots))
	slots := make([]*memento.Slot, 0, len(doc.Slots))
	for i, fs := range doc.Slots {
		if fs.ID == "" {
			vb.Fieldf("slots", "entry %d has no id", i)
			continue
		}
		if seenSlots[fs.ID] {
			vb.Fieldf("slots", "duplicate id %s", fs.ID)
			continue
		}
		seenSlots[fs.ID] = true

		key := fs.ParameterKey
		if key == "" {
			key = fs.ID
		}
		assigned := fs.Default
		if assigned == "" {
			assigned = memento.NoneItemID
		}

		slots = append(slots, &memento.Slot{
			ID:              fs.ID,
			ParameterKey:    key,
			IsLocked:        fs.Locked,
			AssignedItemID:  assigned,
			EligibleItemIDs: append([]string(nil), fs.Eligible...),
		})
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &FileClient{items: items, slots: slots}, nil
}

// ListItems returns copies of the catalog items
func (c *FileClient) ListItems(_ context.Context) ([]*memento.Item, error) {
	out := make([]*memento.Item, len(c.items))
	for i, item := range c.items {
		cp := *item
		out[i] = &cp
	}
	return out, nil
}

// ListSlots returns copies of the slot descriptors
func (c *FileClient) ListSlots(_ context.Context) ([]*memento.Slot, error) {
	out := make([]*memento.Slot, len(c.slots))
	for i, slot := range c.slots {
		cp := *slot
		cp.EligibleItemIDs = append([]string(nil), slot.EligibleItemIDs...)
		out[i] = &cp
	}
	return out, nil
}
