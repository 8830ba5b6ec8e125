package cost

import (
	"strconv"
	"strings"
	"time"
)

// weekdayTokens maps the two-letter OSM opening_hours weekday abbreviations
// to time.Weekday, in Monday-first order matching the OSM convention.
var weekdayTokens = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// IsOpen evaluates a (possibly malformed) OSM opening_hours expression at
// at, per §4.8's "Malformed/absent expressions are treated as 'open'"
// rule. Supports the common subset of the grammar: semicolon-separated
// rules of `<day>[-<day>][,<day>...] <HH:MM>-<HH:MM>[,<HH:MM>-<HH:MM>...]`,
// plus "24/7" as the whole expression and an "off"/"closed" rule ("24/7"
// as one rule among several is not recognised). If no rule in the
// expression parses at all, the whole expression is treated as malformed
// and the edge is open; otherwise the feature is open iff at falls inside
// one of the parsed rules' day+time windows (edge case 7 of §4.7: a
// well-formed "Mo-Fr 08:00-18:00" rule is closed on a Sunday, not open).
func IsOpen(expr string, at time.Time) bool {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return true
	}
	if strings.EqualFold(expr, "24/7") {
		return true
	}

	wellFormed := false
	for _, rule := range strings.Split(expr, ";") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if strings.EqualFold(rule, "off") || strings.EqualFold(rule, "closed") {
			wellFormed = true
			continue
		}
		open, ok := evalRule(rule, at)
		if !ok {
			continue
		}
		wellFormed = true
		if open {
			return true
		}
	}
	// No rule parsed at all: treat the whole expression as malformed.
	return !wellFormed
}

// evalRule parses a single "<days> <times>" rule. ok reports whether the
// rule parsed at all; open reports whether at falls within this rule's
// day+time window (only meaningful when ok is true).
func evalRule(rule string, at time.Time) (open, ok bool) {
	fields := strings.Fields(rule)
	if len(fields) < 2 {
		return false, false
	}
	dayField := fields[0]
	timeField := strings.Join(fields[1:], " ")

	if !dayFieldParses(dayField) {
		return false, false
	}
	if !dayMatches(dayField, at.Weekday()) {
		return false, true
	}

	for _, span := range strings.Split(timeField, ",") {
		if timeInSpan(span, at) {
			return true, true
		}
	}
	return false, true
}

func dayFieldParses(field string) bool {
	for _, part := range strings.Split(field, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, "-"); idx > 0 {
			if weekdayIndex(part[:idx]) < 0 || weekdayIndex(part[idx+1:]) < 0 {
				return false
			}
			continue
		}
		if weekdayIndex(part) < 0 {
			return false
		}
	}
	return true
}

func dayMatches(field string, wd time.Weekday) bool {
	for _, part := range strings.Split(field, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, "-"); idx > 0 {
			start := weekdayIndex(part[:idx])
			end := weekdayIndex(part[idx+1:])
			if start < 0 || end < 0 {
				continue
			}
			if weekdayInRange(wd, start, end) {
				return true
			}
			continue
		}
		if weekdayIndex(part) == mondayFirstIndex(wd) {
			return true
		}
	}
	return false
}

func weekdayIndex(token string) int {
	token = strings.TrimSpace(token)
	for i, t := range weekdayTokens {
		if strings.EqualFold(t, token) {
			return i
		}
	}
	return -1
}

func mondayFirstIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7 // time.Sunday == 0 -> index 6
}

func weekdayInRange(wd time.Weekday, start, end int) bool {
	idx := mondayFirstIndex(wd)
	if start <= end {
		return idx >= start && idx <= end
	}
	return idx >= start || idx <= end // wraps across the week boundary
}

func timeInSpan(span string, at time.Time) bool {
	span = strings.TrimSpace(span)
	idx := strings.Index(span, "-")
	if idx <= 0 {
		return false
	}
	startMin, ok1 := parseClock(span[:idx])
	endMin, ok2 := parseClock(span[idx+1:])
	if !ok1 || !ok2 {
		return false
	}
	nowMin := at.Hour()*60 + at.Minute()
	if startMin <= endMin {
		return nowMin >= startMin && nowMin < endMin
	}
	return nowMin >= startMin || nowMin < endMin // spans midnight
}

func parseClock(s string) (minutes int, ok bool) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return h*60 + m, true
}
