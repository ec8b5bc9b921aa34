// Package config provides YAML-based configuration loading for Mirror Lane.
package config

// MirrorConfig contains all configuration for the Mirror Lane game.
type MirrorConfig struct {
	Lane       LaneConfig       `yaml:"lane"`
	Sprites    SpritesConfig    `yaml:"sprites"`
	Timing     TimingConfig     `yaml:"timing"`
	Background BackgroundConfig `yaml:"background"`
	View       ViewConfig       `yaml:"view"`
}

// LaneConfig defines the frame lane geometry and motion, in world units.
type LaneConfig struct {
	LeftBound      float64 `yaml:"left_bound"`
	RightBound     float64 `yaml:"right_bound"`
	FrameWidth     float64 `yaml:"frame_width"`
	GapRatio       float64 `yaml:"gap_ratio"`
	CatchUp        float64 `yaml:"catch_up"`
	ThresholdRatio float64 `yaml:"threshold_ratio"`
	Speed          float64 `yaml:"speed"`
}

// SpritesConfig defines the sprite catalog and how frames are filled.
type SpritesConfig struct {
	Slots            int           `yaml:"slots"`
	MatchProbability float64       `yaml:"match_probability"`
	Catalog          []SpriteEntry `yaml:"catalog"`
}

// SpriteEntry maps a sprite id to how it is drawn.
type SpriteEntry struct {
	ID    string `yaml:"id"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// TimingConfig defines the game clocks, in seconds.
type TimingConfig struct {
	SecondInterval     float64 `yaml:"second_interval"`
	BackgroundInterval float64 `yaml:"background_interval"`
	EffectDuration     float64 `yaml:"effect_duration"`
}

// BackgroundConfig defines the oscillating background characters.
type BackgroundConfig struct {
	Amplitude  float64           `yaml:"amplitude"`
	Period     float64           `yaml:"period"`
	Characters []CharacterConfig `yaml:"characters"`
}

// CharacterConfig places one background character.
type CharacterConfig struct {
	Name  string  `yaml:"name"`
	Art   string  `yaml:"art"`
	X     float64 `yaml:"x"`
	Row   int     `yaml:"row"`
	Color string  `yaml:"color"`
}

// ViewConfig defines which part of the world is drawn and how.
type ViewConfig struct {
	Left      float64 `yaml:"left"`
	Right     float64 `yaml:"right"`
	LaneRow   int     `yaml:"lane_row"`
	SpinRate  float64 `yaml:"spin_rate"`
	ShowNames bool    `yaml:"show_names"`
}
