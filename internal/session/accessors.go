package session

import (
	"github.com/talgya/turnmap/internal/report"
	"github.com/talgya/turnmap/internal/world"
)

// Sentinel defaults for report header projections. Every accessor in
// this file is total: with no report loaded (or a field absent from the
// loaded report) it returns these documented defaults rather than
// failing, so the presentation layer never branches on load state.
const (
	// UnknownValue fills identity strings the report did not provide.
	UnknownValue = "Unknown"
	// DefaultAttitude is assumed when the report omits the faction's
	// default stance.
	DefaultAttitude = "neutral"
)

// FactionInfo identifies the report's viewing faction.
type FactionInfo struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// FactionInfo returns the viewing faction's name and number.
func (s *Session) FactionInfo() FactionInfo {
	info := FactionInfo{Name: UnknownValue}
	if s.rpt == nil {
		return info
	}
	if s.rpt.Name != "" {
		info.Name = s.rpt.Name
	}
	info.Number = s.rpt.Number
	return info
}

// DateInfo returns the report's in-game month and year.
func (s *Session) DateInfo() report.Date {
	date := report.Date{Month: UnknownValue}
	if s.rpt == nil {
		return date
	}
	if s.rpt.Date.Month != "" {
		date.Month = s.rpt.Date.Month
	}
	date.Year = s.rpt.Date.Year
	return date
}

// EngineInfo returns the ruleset and engine versions that produced the
// report.
func (s *Session) EngineInfo() report.Engine {
	eng := report.Engine{
		Ruleset:        UnknownValue,
		RulesetVersion: UnknownValue,
		Version:        UnknownValue,
	}
	if s.rpt == nil {
		return eng
	}
	if s.rpt.Engine.Ruleset != "" {
		eng.Ruleset = s.rpt.Engine.Ruleset
	}
	if s.rpt.Engine.RulesetVersion != "" {
		eng.RulesetVersion = s.rpt.Engine.RulesetVersion
	}
	if s.rpt.Engine.Version != "" {
		eng.Version = s.rpt.Engine.Version
	}
	return eng
}

// Attitudes returns the faction's diplomatic stance lists. The default
// stance falls back to DefaultAttitude; the group lists are never nil.
func (s *Session) Attitudes() report.Attitudes {
	att := report.Attitudes{Default: DefaultAttitude}
	if s.rpt != nil {
		att = s.rpt.Attitudes
		if att.Default == "" {
			att.Default = DefaultAttitude
		}
	}
	if att.Ally == nil {
		att.Ally = []world.FactionRef{}
	}
	if att.Friendly == nil {
		att.Friendly = []world.FactionRef{}
	}
	if att.Neutral == nil {
		att.Neutral = []world.FactionRef{}
	}
	if att.Unfriendly == nil {
		att.Unfriendly = []world.FactionRef{}
	}
	if att.Hostile == nil {
		att.Hostile = []world.FactionRef{}
	}
	return att
}

// AdministrativeSettings returns the account settings echoed in the
// report; all flags default to false and the email to empty.
func (s *Session) AdministrativeSettings() report.Administrative {
	if s.rpt == nil {
		return report.Administrative{}
	}
	return s.rpt.Administrative
}
