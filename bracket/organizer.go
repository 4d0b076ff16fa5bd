// Package bracket derives the display structure of a fetched playoff bracket:
// tier partitioning, round grouping, and the winner/forfeit predicates the
// view and the authorization gate share. Everything here is a pure function
// over slot values; the upstream API owns all bracket state.
package bracket

import (
	"sort"

	"github.com/pitchside/league-web/models"
)

// forfeit results are recorded upstream as a fixed 3:0 in favor of the
// non-forfeiting side
const (
	forfeitLoserScore  = 0
	forfeitWinnerScore = 3
)

// Tiers returns the distinct bracket_tier labels present, sorted
// lexicographically. Each tier renders as an independent bracket tree.
func Tiers(slots []models.BracketSlot) []string {
	seen := make(map[string]struct{}, len(slots))
	tiers := make([]string, 0, 4)
	for _, s := range slots {
		if _, ok := seen[s.BracketTier]; ok {
			continue
		}
		seen[s.BracketTier] = struct{}{}
		tiers = append(tiers, s.BracketTier)
	}
	sort.Strings(tiers)
	return tiers
}

// SlotsInRound returns the slots of one (tier, round) pair in display order:
// ascending bracket_position. Position is the only documented ordering key;
// the sort is stable, so slots sharing a position keep their fetch order.
func SlotsInRound(slots []models.BracketSlot, tier string, round models.Round) []models.BracketSlot {
	out := make([]models.BracketSlot, 0, len(slots))
	for _, s := range slots {
		if s.BracketTier == tier && s.Round == round {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BracketPosition < out[j].BracketPosition
	})
	return out
}

// IsWinner reports whether the given side won the slot. A winner is defined
// only when the match finished (completed or forfeit), both scores are
// recorded, and the scores differ; a completed tie has no winner and must be
// resolved by an administrator.
func IsWinner(slot *models.BracketSlot, side models.Side) bool {
	if slot.MatchStatus != models.MatchCompleted && slot.MatchStatus != models.MatchForfeit {
		return false
	}
	if !slot.HasBothScores() {
		return false
	}
	return *slot.Score(side) > *slot.Score(side.Opposite())
}

// WinningSide returns the side holding the win, if one is defined.
func WinningSide(slot *models.BracketSlot) (models.Side, bool) {
	switch {
	case IsWinner(slot, models.SideHome):
		return models.SideHome, true
	case IsWinner(slot, models.SideAway):
		return models.SideAway, true
	default:
		return "", false
	}
}

// WinnerTeamID returns the id of the winning team, or nil when no winner is
// defined (or the winning side is still a TBD placeholder).
func WinnerTeamID(slot *models.BracketSlot) *int {
	side, ok := WinningSide(slot)
	if !ok {
		return nil
	}
	return slot.TeamID(side)
}

// IsForfeitTeam reports whether the given side is the one that forfeited.
// This reads the fixed 0/3 encoding, not a general score comparison: it is
// true only for a forfeit match where this side holds exactly 0 and the
// other exactly 3.
func IsForfeitTeam(slot *models.BracketSlot, side models.Side) bool {
	if slot.MatchStatus != models.MatchForfeit {
		return false
	}
	if !slot.HasBothScores() {
		return false
	}
	return *slot.Score(side) == forfeitLoserScore &&
		*slot.Score(side.Opposite()) == forfeitWinnerScore
}
