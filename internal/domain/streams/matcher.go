package streams

import "strings"

// NormalizeToken lowercases a team name and strips everything outside
// [a-z0-9]. Stream fields and app team names go through the same reduction
// so punctuation, spacing, and casing differences never block a match.
func NormalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// abbreviations maps shorthand spellings to their long forms so "Leeds Utd"
// and "Leeds United" reduce to the same token. Applied after NormalizeToken,
// so keys are already lowercase alphanumeric.
var abbreviations = strings.NewReplacer(
	"utd", "united",
)

func expandAbbreviations(token string) string {
	return abbreviations.Replace(token)
}

// mutualSubstring accommodates providers that use long official names and
// short colloquial ones interchangeably, in either direction.
func mutualSubstring(a, b string) bool {
	a, b = expandAbbreviations(a), expandAbbreviations(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchesFixture reports whether a stream plausibly covers the fixture with
// the given team names. Providers spell team names inconsistently and some
// list the sides in reverse, so both orientations are tried; when the team
// fields are absent or inconclusive the free-text label is searched instead.
//
// Known limitation: substring matching can false-positive when one team's
// normalized name is contained in an unrelated team's name. Short of a real
// disambiguation pass this is accepted; callers get every plausible hit.
func MatchesFixture(s Stream, homeTeam, awayTeam string) bool {
	targetHome := NormalizeToken(homeTeam)
	targetAway := NormalizeToken(awayTeam)

	streamHome := NormalizeToken(s.HomeTeam)
	streamAway := NormalizeToken(s.AwayTeam)

	if streamHome != "" && streamAway != "" {
		direct := mutualSubstring(streamHome, targetHome) && mutualSubstring(streamAway, targetAway)
		// Some providers list the sides inverted; unverified upstream, but
		// observed often enough to keep.
		swapped := mutualSubstring(streamHome, targetAway) && mutualSubstring(streamAway, targetHome)
		if direct || swapped {
			return true
		}
	}

	if label := expandAbbreviations(NormalizeToken(s.Label)); label != "" {
		return strings.Contains(label, expandAbbreviations(targetHome)) &&
			strings.Contains(label, expandAbbreviations(targetAway))
	}

	return false
}

// FilterForFixture returns every stream that matches the fixture, preserving
// input order.
func FilterForFixture(all []Stream, homeTeam, awayTeam string) []Stream {
	matched := make([]Stream, 0)
	for _, s := range all {
		if MatchesFixture(s, homeTeam, awayTeam) {
			matched = append(matched, s)
		}
	}
	return matched
}
