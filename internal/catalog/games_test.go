// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package catalog

import (
	"reflect"
	"testing"
)

func TestSplitGames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \n  ", nil},
		{"single title", "Valorant", []string{"valorant"}},
		{"comma separated", "valorant, fortnite", []string{"valorant", "fortnite"}},
		{"semicolon separated", "valorant; fortnite", []string{"valorant", "fortnite"}},
		{"newline separated", "valorant\nfortnite", []string{"valorant", "fortnite"}},
		{"crlf separated", "valorant\r\nfortnite", []string{"valorant", "fortnite"}},
		{"mixed separators", "a, b; c\nd", []string{"a", "b", "c", "d"}},
		{"trims and lowercases", "  VALORANT ,  Elden Ring ", []string{"valorant", "elden ring"}},
		{"drops empty fragments", "valorant,,;,fortnite", []string{"valorant", "fortnite"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitGames(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitGames(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMultiplier(t *testing.T) {
	t.Parallel()

	w := DefaultGameWeights()

	tests := []struct {
		name  string
		games string
		want  float64
	}{
		{"empty string", "", 1.0},
		{"known light title", "valorant", 0.6},
		{"known heavy title", "cyberpunk 2077", 1.3},
		{"unknown title", "some obscure game", 1.0},
		{"max wins across titles", "valorant, cyberpunk 2077", 1.3},
		{"unknown title raises light titles to default", "valorant, some obscure game", 1.0},
		{"case insensitive", "VALORANT", 0.6},
		{"all light titles keep the lowest ceiling", "league of legends, minecraft", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := w.Multiplier(tt.games); got != tt.want {
				t.Errorf("Multiplier(%q) = %v, want %v", tt.games, got, tt.want)
			}
		})
	}
}

func TestMultiplierForEmptySlice(t *testing.T) {
	t.Parallel()

	w := DefaultGameWeights()
	if got := w.MultiplierFor(nil); got != DefaultGameMultiplier {
		t.Errorf("MultiplierFor(nil) = %v, want %v", got, DefaultGameMultiplier)
	}
}

func TestNewGameWeights(t *testing.T) {
	t.Parallel()

	w, err := NewGameWeights(map[string]float64{
		"  Valorant  ": 0.5,
		"Heavy Sim":    1.5,
	})
	if err != nil {
		t.Fatalf("NewGameWeights failed: %v", err)
	}

	if got := w["valorant"]; got != 0.5 {
		t.Errorf("w[valorant] = %v, want 0.5 (keys should be normalized)", got)
	}
	if got := w["heavy sim"]; got != 1.5 {
		t.Errorf("w[heavy sim] = %v, want 1.5", got)
	}
}

func TestNewGameWeightsErrors(t *testing.T) {
	t.Parallel()

	if _, err := NewGameWeights(map[string]float64{"": 1.0}); err == nil {
		t.Error("empty title should be rejected")
	}
	if _, err := NewGameWeights(map[string]float64{"valorant": 0}); err == nil {
		t.Error("zero multiplier should be rejected")
	}
	if _, err := NewGameWeights(map[string]float64{"valorant": -0.5}); err == nil {
		t.Error("negative multiplier should be rejected")
	}
}

func TestDefaultGameWeightsSane(t *testing.T) {
	t.Parallel()

	w := DefaultGameWeights()
	if len(w) == 0 {
		t.Fatal("default weight table is empty")
	}

	for title, mult := range w {
		if mult <= 0 {
			t.Errorf("weight for %q = %v, want positive", title, mult)
		}
		if title == "" {
			t.Error("default table contains an empty title")
		}
	}

	if got := w["valorant"]; got != 0.6 {
		t.Errorf("valorant weight = %v, want 0.6", got)
	}
}
