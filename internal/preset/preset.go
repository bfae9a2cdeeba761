// Package preset persists the single dashboard style preset.
package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// Key is the storage key of the style preset.
const Key = "chartStylePreset"

// Preset is the user's style configuration.
type Preset struct {
	ThemeColor      string `json:"themeColor"`
	BgColor         string `json:"bgColor"`
	TextColor       string `json:"textColor"`
	ColorScheme     string `json:"colorScheme"`
	FontFamily      string `json:"fontFamily"`
	TitleSize       int    `json:"titleSize"`
	BodySize        int    `json:"bodySize"`
	FontWeight      string `json:"fontWeight"`
	ChartSpacing    int    `json:"chartSpacing"`
	BorderRadius    int    `json:"borderRadius"`
	ShadowEffect    bool   `json:"shadowEffect"`
	AnimationEffect bool   `json:"animationEffect"`
}

// Default returns the values the style form starts from.
func Default() Preset {
	return Preset{
		ThemeColor:      "#667EEA",
		BgColor:         "#FFFFFF",
		TextColor:       "#2C3E50",
		ColorScheme:     "default",
		FontFamily:      "Inter",
		TitleSize:       18,
		BodySize:        14,
		FontWeight:      "normal",
		ChartSpacing:    20,
		BorderRadius:    8,
		ShadowEffect:    true,
		AnimationEffect: true,
	}
}

// IsZero reports whether p is the empty preset.
func (p Preset) IsZero() bool {
	return p == Preset{}
}

// Validate checks the colour fields and sizes.
func (p Preset) Validate() error {
	for name, c := range map[string]string{"themeColor": p.ThemeColor, "bgColor": p.BgColor, "textColor": p.TextColor} {
		if c != "" && !IsHexColor(c) {
			return fmt.Errorf("%s: invalid colour %q", name, c)
		}
	}
	if p.TitleSize < 0 || p.BodySize < 0 || p.ChartSpacing < 0 || p.BorderRadius < 0 {
		return fmt.Errorf("sizes must not be negative")
	}
	return nil
}

// IsHexColor reports whether s is a #RGB or #RRGGBB colour.
func IsHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Encode serializes p as stored.
func Encode(p Preset) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode preset: %w", err)
	}
	return b, nil
}

// Decode parses a stored preset.
func Decode(b []byte) (Preset, error) {
	var p Preset
	if err := json.Unmarshal(b, &p); err != nil {
		return Preset{}, fmt.Errorf("decode preset: %w", err)
	}
	return p, nil
}

// Store loads and saves the preset.
type Store interface {
	// Load returns the stored preset and whether one exists.
	Load(ctx context.Context) (Preset, bool, error)
	Save(ctx context.Context, p Preset) error
}

// MemoryStore keeps the preset for the process lifetime.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context) (Preset, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return Preset{}, false, nil
	}
	p, err := Decode(s.data)
	return p, err == nil, err
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, p Preset) error {
	b, err := Encode(p)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = b
	s.mu.Unlock()
	return nil
}
