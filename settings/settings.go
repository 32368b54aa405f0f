package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oomph-ac/seasons/oerror"
	"github.com/oomph-ac/seasons/season"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Settings contains everything that can be configured for the season rules.
type Settings struct {
	Gameplay Gameplay `toml:"gameplay" yaml:"gameplay"`
	Cycle    Cycle    `toml:"cycle" yaml:"cycle"`
	// Crops lists crops that wither outside their living temperature range, on top of crops that
	// implement crop.Decayable.
	Crops []CropGrowth `toml:"crops" yaml:"crops"`
}

// Gameplay holds the gameplay toggles consulted by every rule.
type Gameplay struct {
	// EnableSeasons is whether the season cycle affects the world at all.
	EnableSeasons bool `toml:"enable_seasons" yaml:"enable_seasons"`
	// TemperatureWithering makes crops wither based on the temperature at their position instead of the
	// current season.
	TemperatureWithering bool `toml:"temperature_withering" yaml:"temperature_withering"`
}

// Cycle configures the length of the season cycle.
type Cycle struct {
	DayTicks      int64 `toml:"day_ticks" yaml:"day_ticks"`
	SubSeasonDays int64 `toml:"sub_season_days" yaml:"sub_season_days"`
	// StartingSubSeason is the sub-season the cycle starts in, from 1 (early spring) to 12 (late winter).
	StartingSubSeason int `toml:"starting_sub_season" yaml:"starting_sub_season"`
}

// Season returns the season.Cycle described by c.
func (c Cycle) Season() season.Cycle {
	return season.Cycle{DayTicks: c.DayTicks, SubSeasonDays: c.SubSeasonDays}
}

// Start returns the sub-season the cycle starts in.
func (c Cycle) Start() season.SubSeason {
	return season.SubSeason(c.StartingSubSeason - 1)
}

// CropGrowth is the living temperature range of a single crop, keyed by block name.
type CropGrowth struct {
	Name      string `toml:"name" yaml:"name"`
	MinLiving int    `toml:"min_living" yaml:"min_living"`
	MaxLiving int    `toml:"max_living" yaml:"max_living"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Gameplay.EnableSeasons = true
	s.Gameplay.TemperatureWithering = false

	cycle := season.DefaultCycle()
	s.Cycle.DayTicks = cycle.DayTicks
	s.Cycle.SubSeasonDays = cycle.SubSeasonDays
	s.Cycle.StartingSubSeason = 1

	s.Crops = []CropGrowth{
		{Name: "minecraft:wheat", MinLiving: 5, MaxLiving: 20},
		{Name: "minecraft:carrots", MinLiving: 5, MaxLiving: 20},
		{Name: "minecraft:potatoes", MinLiving: 5, MaxLiving: 20},
		{Name: "minecraft:beetroot", MinLiving: 5, MaxLiving: 20},
	}
	return s
}

// Validate checks the settings for values the season rules cannot work with.
func (s Settings) Validate() error {
	if s.Cycle.DayTicks <= 0 {
		return oerror.New("cycle.day_ticks must be positive, got %v", s.Cycle.DayTicks)
	}
	if s.Cycle.SubSeasonDays <= 0 {
		return oerror.New("cycle.sub_season_days must be positive, got %v", s.Cycle.SubSeasonDays)
	}
	if s.Cycle.StartingSubSeason < 1 || s.Cycle.StartingSubSeason > 12 {
		return oerror.New("cycle.starting_sub_season must be between 1 and 12, got %v", s.Cycle.StartingSubSeason)
	}
	seen := make(map[string]struct{}, len(s.Crops))
	for i, c := range s.Crops {
		if c.Name == "" {
			return oerror.New("crops[%v]: name must not be empty", i)
		}
		if _, ok := seen[c.Name]; ok {
			return oerror.New("crops[%v]: %v is listed more than once", i, c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.MinLiving > c.MaxLiving {
			return oerror.New("crops[%v]: %v has min_living %v above max_living %v", i, c.Name, c.MinLiving, c.MaxLiving)
		}
	}
	return nil
}

// CropTable returns the crop configuration as a lookup table.
func (s Settings) CropTable() CropTable {
	t := make(CropTable, len(s.Crops))
	for _, c := range s.Crops {
		t[c.Name] = c
	}
	return t
}

// CropTable maps block names to their configured living temperature range.
type CropTable map[string]CropGrowth

// Lookup returns the configuration of the block name passed, matched exactly.
func (t CropTable) Lookup(name string) (CropGrowth, bool) {
	c, ok := t[name]
	return c, ok
}

// SaveDefault will create and save the default settings file. The encoding is picked from the file
// extension. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := marshal(path, DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %v", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist or
// holds invalid settings.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %v", err)
	}

	s := DefaultSettings()
	if err := unmarshal(path, data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %v", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func marshal(path string, s Settings) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(s)
	}
	return toml.Marshal(s)
}

func unmarshal(path string, data []byte, s *Settings) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, s)
	}
	return toml.Unmarshal(data, s)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
