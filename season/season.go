package season

// Season is one of the four coarse seasons of the cycle.
type Season uint8

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// String ...
func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	}
	return "unknown"
}

// SubSeason splits every season into an early, mid and late part.
type SubSeason uint8

const (
	EarlySpring SubSeason = iota
	MidSpring
	LateSpring
	EarlySummer
	MidSummer
	LateSummer
	EarlyAutumn
	MidAutumn
	LateAutumn
	EarlyWinter
	MidWinter
	LateWinter

	subSeasonCount = 12
)

// Season returns the season the sub-season belongs to.
func (s SubSeason) Season() Season {
	return Season(s / 3)
}

// String ...
func (s SubSeason) String() string {
	switch s % 3 {
	case 0:
		return "early_" + s.Season().String()
	case 1:
		return "mid_" + s.Season().String()
	default:
		return "late_" + s.Season().String()
	}
}

const (
	// hostSnowTemperature is the temperature below which the host lets snow fall in any season.
	hostSnowTemperature = 0.15
	// WinterSnowTemperature is the highest temperature at which snow may form during winter.
	WinterSnowTemperature = 0.7
)

// CanSnowAtTemp reports if snow may form at the temperature passed during season s. Outside winter, or when
// seasons are disabled, the host's own threshold applies.
func CanSnowAtTemp(s Season, temperature float64, seasonsEnabled bool) bool {
	if temperature < hostSnowTemperature {
		return true
	}
	return seasonsEnabled && s == Winter && temperature <= WinterSnowTemperature
}
