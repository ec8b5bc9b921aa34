package config

import (
	_ "embed"
)

//go:embed defaults/mirror.yaml
var defaultMirrorYAML []byte

// DefaultMirrorConfig returns the default Mirror Lane configuration.
func DefaultMirrorConfig() MirrorConfig {
	return MirrorConfig{
		Lane: LaneConfig{
			LeftBound:      -20,
			RightBound:     20,
			FrameWidth:     2,
			GapRatio:       0.1,
			CatchUp:        10,
			ThresholdRatio: 0.5,
			Speed:          5,
		},
		Sprites: SpritesConfig{
			Slots:            6,
			MatchProbability: 0.5,
			Catalog: []SpriteEntry{
				{ID: "bear", Glyph: "B", Color: "orange"},
				{ID: "cat", Glyph: "C", Color: "yellow"},
				{ID: "dog", Glyph: "D", Color: "bright_yellow"},
				{ID: "fox", Glyph: "F", Color: "red"},
				{ID: "frog", Glyph: "G", Color: "green"},
				{ID: "lion", Glyph: "L", Color: "bright_red"},
				{ID: "mouse", Glyph: "M", Color: "gray"},
				{ID: "owl", Glyph: "O", Color: "magenta"},
				{ID: "panda", Glyph: "P", Color: "bright_white"},
				{ID: "rabbit", Glyph: "R", Color: "bright_cyan"},
			},
		},
		Timing: TimingConfig{
			SecondInterval:     1,
			BackgroundInterval: 3,
			EffectDuration:     1,
		},
		Background: BackgroundConfig{
			Amplitude: 5,
			Period:    1,
			Characters: []CharacterConfig{
				{Name: "mouse", Art: "<:3 )~", X: -12, Row: 2, Color: "gray"},
				{Name: "rabbit", Art: `(\_/)`, X: 0, Row: 1, Color: "bright_white"},
				{Name: "panda", Art: "(o.o)", X: 12, Row: 2, Color: "white"},
			},
		},
		View: ViewConfig{
			Left:     -10,
			Right:    10,
			LaneRow:  5,
			SpinRate: 0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMirrorYAML
}
