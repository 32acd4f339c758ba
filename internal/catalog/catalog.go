// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package catalog

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// FormFactor describes which machine classes a card fits.
type FormFactor string

const (
	// FormFactorDesktop fits desktop cases only.
	FormFactorDesktop FormFactor = "desktop"

	// FormFactorLaptop fits laptop upgrades only.
	FormFactorLaptop FormFactor = "laptop"

	// FormFactorBoth fits either machine class (external enclosures and
	// similar). Entries with this form factor match every request.
	FormFactorBoth FormFactor = "both"
)

// ParseFormFactor normalizes and validates a form factor string.
func ParseFormFactor(s string) (FormFactor, error) {
	switch FormFactor(strings.ToLower(strings.TrimSpace(s))) {
	case FormFactorDesktop:
		return FormFactorDesktop, nil
	case FormFactorLaptop:
		return FormFactorLaptop, nil
	case FormFactorBoth:
		return FormFactorBoth, nil
	default:
		return "", fmt.Errorf("invalid form factor %q (must be desktop, laptop, or both)", s)
	}
}

// Matches reports whether a card with this form factor can serve a request
// for the given machine class.
func (f FormFactor) Matches(requested FormFactor) bool {
	return f == FormFactorBoth || f == requested
}

// GPU is a single upgrade candidate in the catalog.
//
// Price is carried as a decimal so budget comparisons are exact; it is
// converted to a float only at the presentation boundary.
type GPU struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	PerfScore  float64
	FormFactor FormFactor
	ProductURL string
}

// Catalog holds the upgrade candidates and the game weight table. It is
// immutable after construction and safe for concurrent readers.
type Catalog struct {
	gpus    []GPU
	weights GameWeights
}

// Default returns the built-in catalog. Entries are ordered roughly by
// price; this order is the tie-break for equally ranked candidates, so it
// is part of the observable behavior.
func Default() *Catalog {
	return &Catalog{
		gpus: []GPU{
			{
				ID:         "rtx-4060",
				Name:       "NVIDIA GeForce RTX 4060",
				Price:      decimal.NewFromInt(299),
				PerfScore:  130,
				FormFactor: FormFactorDesktop,
				ProductURL: "https://www.amazon.com/dp/B0C6W2J1HF",
			},
			{
				ID:         "rx-7600-xt-egpu",
				Name:       "AMD Radeon RX 7600 XT eGPU Kit",
				Price:      decimal.NewFromInt(399),
				PerfScore:  105,
				FormFactor: FormFactorBoth,
				ProductURL: "https://www.powercolor.com/product?id=1713161033",
			},
			{
				ID:         "rx-7700-xt",
				Name:       "AMD Radeon RX 7700 XT",
				Price:      decimal.NewFromInt(449),
				PerfScore:  145,
				FormFactor: FormFactorDesktop,
				ProductURL: "https://www.newegg.com/p/N82E16814202429",
			},
			{
				ID:         "rtx-4070",
				Name:       "NVIDIA GeForce RTX 4070",
				Price:      decimal.NewFromInt(549),
				PerfScore:  160,
				FormFactor: FormFactorDesktop,
				ProductURL: "https://www.amazon.com/dp/B0BZST9LRB",
			},
			{
				ID:         "rtx-4080-super",
				Name:       "NVIDIA GeForce RTX 4080 Super",
				Price:      decimal.NewFromInt(999),
				PerfScore:  200,
				FormFactor: FormFactorDesktop,
				ProductURL: "https://www.nvidia.com/en-us/geforce/graphics-cards/40-series/rtx-4080-family/",
			},
			{
				ID:         "rtx-4070-laptop",
				Name:       "NVIDIA GeForce RTX 4070 Laptop GPU",
				Price:      decimal.NewFromInt(1099),
				PerfScore:  110,
				FormFactor: FormFactorLaptop,
				ProductURL: "https://www.amazon.com/dp/B0CWN6T8KD",
			},
			{
				ID:         "rtx-4080-laptop",
				Name:       "NVIDIA GeForce RTX 4080 Laptop GPU",
				Price:      decimal.NewFromInt(1499),
				PerfScore:  150,
				FormFactor: FormFactorLaptop,
				ProductURL: "https://www.newegg.com/p/N82E16834156343",
			},
			{
				ID:         "rtx-4090",
				Name:       "NVIDIA GeForce RTX 4090",
				Price:      decimal.NewFromInt(1599),
				PerfScore:  250,
				FormFactor: FormFactorDesktop,
				ProductURL: "https://www.ebay.com/itm/266473812345",
			},
		},
		weights: DefaultGameWeights(),
	}
}

// catalogFile is the on-disk YAML layout for a custom catalog.
type catalogFile struct {
	GPUs        []gpuEntry         `koanf:"gpus"`
	GameWeights map[string]float64 `koanf:"game_weights"`
}

type gpuEntry struct {
	ID         string  `koanf:"id"`
	Name       string  `koanf:"name"`
	Price      float64 `koanf:"price"`
	PerfScore  float64 `koanf:"perf_score"`
	FormFactor string  `koanf:"form_factor"`
	ProductURL string  `koanf:"product_url"`
}

// Load reads a catalog from a YAML file. The file must carry a "gpus" list;
// a "game_weights" map is optional and falls back to the built-in table.
//
// Example file:
//
//	gpus:
//	  - id: rtx-4060
//	    name: NVIDIA GeForce RTX 4060
//	    price: 299.00
//	    perf_score: 130
//	    form_factor: desktop
//	    product_url: https://www.amazon.com/dp/B0C6W2J1HF
//	game_weights:
//	  valorant: 0.6
func Load(path string) (*Catalog, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}

	var cf catalogFile
	if err := k.Unmarshal("", &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if len(cf.GPUs) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no gpus", path)
	}

	gpus := make([]GPU, 0, len(cf.GPUs))
	seen := make(map[string]struct{}, len(cf.GPUs))
	for i, e := range cf.GPUs {
		g, err := e.toGPU()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, g.ID)
		}
		seen[g.ID] = struct{}{}
		gpus = append(gpus, g)
	}

	weights := DefaultGameWeights()
	if len(cf.GameWeights) > 0 {
		w, err := NewGameWeights(cf.GameWeights)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", path, err)
		}
		weights = w
	}

	return &Catalog{gpus: gpus, weights: weights}, nil
}

func (e gpuEntry) toGPU() (GPU, error) {
	if e.ID == "" {
		return GPU{}, fmt.Errorf("id is required")
	}
	if e.Name == "" {
		return GPU{}, fmt.Errorf("name is required for %q", e.ID)
	}
	if e.Price <= 0 {
		return GPU{}, fmt.Errorf("price must be positive for %q", e.ID)
	}
	if e.PerfScore <= 0 {
		return GPU{}, fmt.Errorf("perf_score must be positive for %q", e.ID)
	}
	ff, err := ParseFormFactor(e.FormFactor)
	if err != nil {
		return GPU{}, fmt.Errorf("entry %q: %w", e.ID, err)
	}
	if e.ProductURL == "" {
		return GPU{}, fmt.Errorf("product_url is required for %q", e.ID)
	}

	return GPU{
		ID:         e.ID,
		Name:       e.Name,
		Price:      decimal.NewFromFloat(e.Price),
		PerfScore:  e.PerfScore,
		FormFactor: ff,
		ProductURL: e.ProductURL,
	}, nil
}

// GPUs returns a copy of all catalog entries in catalog order.
func (c *Catalog) GPUs() []GPU {
	out := make([]GPU, len(c.gpus))
	copy(out, c.gpus)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.gpus)
}

// Weights returns the game weight table.
func (c *Catalog) Weights() GameWeights {
	return c.weights
}

// GameMultiplier parses a raw games string against this catalog's weight
// table. See GameWeights.Multiplier.
func (c *Catalog) GameMultiplier(raw string) float64 {
	return c.weights.Multiplier(raw)
}

// Eligible returns the entries affordable within budget that fit the
// requested machine class, preserving catalog order.
func (c *Catalog) Eligible(budget decimal.Decimal, requested FormFactor) []GPU {
	out := make([]GPU, 0, len(c.gpus))
	for _, g := range c.gpus {
		if g.Price.LessThanOrEqual(budget) && g.FormFactor.Matches(requested) {
			out = append(out, g)
		}
	}
	return out
}
