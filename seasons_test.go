package seasons

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/seasons/season"
	"github.com/oomph-ac/seasons/settings"
	"github.com/oomph-ac/seasons/world"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type testBiome struct {
	temp, rain float64
}

func (b testBiome) Temperature() float64 { return b.temp }
func (b testBiome) Rainfall() float64    { return b.rain }
func (b testBiome) String() string       { return "test" }

type mockField struct{}

func (mockField) TargetTemperatureAt(world.World, cube.Pos) int { return 10 }
func (mockField) Climatised(world.World, cube.Pos, int) bool    { return false }

// shortCycle returns settings with one tick days and one day sub-seasons, starting in the sub-season passed.
func shortCycle(start season.SubSeason) settings.Settings {
	s := settings.DefaultSettings()
	s.Cycle.DayTicks = 1
	s.Cycle.SubSeasonDays = 1
	s.Cycle.StartingSubSeason = int(start) + 1
	return s
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	s := settings.DefaultSettings()
	s.Cycle.SubSeasonDays = 0
	if _, err := New(nil, s, mockField{}); err == nil {
		t.Fatalf("expected invalid settings to be rejected")
	}
}

func TestTick(t *testing.T) {
	log, hook := test.NewNullLogger()
	sea, err := New(log, shortCycle(season.LateAutumn), mockField{})
	if err != nil {
		t.Fatal(err)
	}
	if sea.Season() != season.Autumn {
		t.Fatalf("expected autumn, got %v", sea.Season())
	}

	sea.Tick()
	if sea.Season() != season.Winter {
		t.Fatalf("expected winter after a tick, got %v", sea.Season())
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Message != "sub-season changed" || entry.Level != logrus.InfoLevel {
		t.Fatalf("expected sub-season change to be logged, got %v", entry)
	}
	if entry.Data["to"] != season.EarlyWinter {
		t.Fatalf("expected change to early winter, got %v", entry.Data["to"])
	}
}

func TestWinterRules(t *testing.T) {
	sea, err := New(nil, shortCycle(season.MidWinter), mockField{})
	if err != nil {
		t.Fatal(err)
	}
	b := testBiome{temp: 0.6, rain: 0.5}
	w := world.NewMemory(cube.Range{0, 255}, b)
	pos := cube.Pos{0, 64, 0}

	if got := sea.FloatTemperature(b, pos); got != 0 {
		t.Fatalf("expected winter temperature of 0, got %v", got)
	}
	if !sea.CanSnowAt(w, pos, false) {
		t.Fatalf("expected snow in winter")
	}
	if w.CanSnowAt(pos, false) {
		t.Fatalf("the unbound world should keep the host's snow rule")
	}
	if !sea.Bind(w).CanSnowAt(pos, false) {
		t.Fatalf("the bound world should follow the seasons")
	}
	if sea.RainingAt(w, pos) {
		t.Fatalf("expected snow instead of rain in winter")
	}

	w.SetBlock(pos, block.Water{Still: true, Depth: 8})
	if !sea.CanFreezeAt(w, pos, true) {
		t.Fatalf("expected lone water to freeze in winter")
	}

	w.SetBlock(pos, block.WheatSeeds{})
	sea.OnCropTick(block.WheatSeeds{}, w, pos)
	if _, ok := w.Block(pos).(block.DeadBush); !ok {
		t.Fatalf("expected wheat to wither in winter, got %#v", w.Block(pos))
	}

	disabled := sea.Settings()
	disabled.Gameplay.EnableSeasons = false
	if err := sea.Reload(disabled); err != nil {
		t.Fatal(err)
	}
	if got := sea.FloatTemperature(b, pos); got != 0.6 {
		t.Fatalf("expected unmodified temperature after disabling seasons, got %v", got)
	}
	if !sea.RainingAt(w, pos) {
		t.Fatalf("expected rain with seasons disabled")
	}
	if sea.Season() != season.Winter {
		t.Fatalf("reload should keep the clock position")
	}
}

func TestSummerRules(t *testing.T) {
	sea, err := New(nil, shortCycle(season.MidSummer), mockField{})
	if err != nil {
		t.Fatal(err)
	}
	b := testBiome{temp: 0.6, rain: 0.5}
	w := world.NewMemory(cube.Range{0, 255}, b)
	pos := cube.Pos{0, 64, 0}

	if sea.CanSnowAt(w, pos, false) {
		t.Fatalf("expected no snow in summer")
	}
	if !sea.RainingAt(w, pos) {
		t.Fatalf("expected rain in summer")
	}
	if got := sea.FloatTemperature(b, pos); got != 0.6 {
		t.Fatalf("expected unmodified temperature in summer, got %v", got)
	}

	w.SetBlock(pos, block.WheatSeeds{})
	sea.OnCropTick(block.WheatSeeds{}, w, pos)
	if _, ok := w.Block(pos).(block.WheatSeeds); !ok {
		t.Fatalf("expected wheat to survive summer")
	}
}
