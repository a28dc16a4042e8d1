package settings

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/mauv0809/shuttle-score/internal/scoring"
)

var (
	allowedBestOf      = mapset.NewSet[scoring.BestOf](scoring.BestOfOne, scoring.BestOfThree)
	allowedPointsToWin = mapset.NewSet[scoring.PointsToWin](scoring.FifteenPoints, scoring.TwentyOnePoints)
	allowedModes       = mapset.NewSet[scoring.Mode](scoring.Singles, scoring.Doubles)
)

// Fallbacks used when the configured defaults are themselves out of range.
const (
	fallbackBestOf      = scoring.BestOfThree
	fallbackPointsToWin = scoring.TwentyOnePoints
	fallbackMode        = scoring.Doubles
)

// Resolver turns raw query input into validated match settings. Anything it
// cannot use is replaced by the configured default; it never returns an error.
type Resolver struct {
	defaults Defaults
}

// NewResolver creates a Resolver. Defaults outside the allowed values are
// replaced with best of 3, 21 points, doubles.
func NewResolver(defaults Defaults) *Resolver {
	if !allowedBestOf.Contains(defaults.BestOf) {
		log.Warn("Configured default bestOf is not allowed, using fallback", "configured", defaults.BestOf, "fallback", fallbackBestOf)
		defaults.BestOf = fallbackBestOf
	}
	if !allowedPointsToWin.Contains(defaults.PointsToWin) {
		log.Warn("Configured default pointsToWin is not allowed, using fallback", "configured", defaults.PointsToWin, "fallback", fallbackPointsToWin)
		defaults.PointsToWin = fallbackPointsToWin
	}
	if !allowedModes.Contains(defaults.Mode) {
		log.Warn("Configured default mode is not allowed, using fallback", "configured", defaults.Mode, "fallback", fallbackMode)
		defaults.Mode = fallbackMode
	}
	return &Resolver{defaults: defaults}
}

func (r *Resolver) Defaults() Defaults {
	return r.defaults
}

func (r *Resolver) BestOf(raw string) scoring.BestOf {
	if n, ok := parseWhole(raw); ok && allowedBestOf.Contains(scoring.BestOf(n)) {
		return scoring.BestOf(n)
	}
	return r.defaults.BestOf
}

func (r *Resolver) PointsToWin(raw string) scoring.PointsToWin {
	if n, ok := parseWhole(raw); ok && allowedPointsToWin.Contains(scoring.PointsToWin(n)) {
		return scoring.PointsToWin(n)
	}
	return r.defaults.PointsToWin
}

// Settings resolves both numeric settings and derives the cap.
func (r *Resolver) Settings(bestOfRaw, pointsToWinRaw string) scoring.MatchSettings {
	return scoring.NewSettings(r.BestOf(bestOfRaw), r.PointsToWin(pointsToWinRaw))
}

func (r *Resolver) Mode(raw string) scoring.Mode {
	m := scoring.Mode(strings.ToLower(strings.TrimSpace(raw)))
	if allowedModes.Contains(m) {
		return m
	}
	return r.defaults.Mode
}

// Resolve reads every setting from query values.
func (r *Resolver) Resolve(q url.Values) Resolved {
	mode := r.Mode(q.Get(KeyMode))
	res := Resolved{
		Settings:  r.Settings(q.Get(KeyBestOf), q.Get(KeyPointsToWin)),
		Mode:      mode,
		Formation: BuildFormation(q, mode),
	}
	log.Debug("Resolved match settings", "best_of", res.Settings.BestOf, "points_to_win", res.Settings.PointsToWin, "cap", res.Settings.Cap, "mode", res.Mode)
	return res
}

// BuildFormation reads player names for mode. Blank names fall back to their
// positional label. In singles the right slot stays empty.
func BuildFormation(q url.Values, mode scoring.Mode) scoring.Formation {
	if mode == scoring.Singles {
		return scoring.Formation{
			A: scoring.Pair{Left: nameOr(q.Get(KeySinglesA), "A")},
			B: scoring.Pair{Left: nameOr(q.Get(KeySinglesB), "B")},
		}
	}
	return scoring.Formation{
		A: scoring.Pair{Left: nameOr(q.Get(KeyALeft), "A-L"), Right: nameOr(q.Get(KeyARight), "A-R")},
		B: scoring.Pair{Left: nameOr(q.Get(KeyBLeft), "B-L"), Right: nameOr(q.Get(KeyBRight), "B-R")},
	}
}

// DefaultFormation is the formation used when no names were supplied.
func DefaultFormation(mode scoring.Mode) scoring.Formation {
	return BuildFormation(url.Values{}, mode)
}

func nameOr(raw, label string) string {
	if name := strings.TrimSpace(raw); name != "" {
		return name
	}
	return label
}

// parseWhole accepts any numeric text that denotes a whole number, so "3"
// and "3.0" both read as 3.
func parseWhole(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
