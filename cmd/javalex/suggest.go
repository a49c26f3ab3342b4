package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance ограничивает запасной поиск по расстоянию Левенштейна.
const maxSuggestDistance = 2

// suggest находит ближайшего кандидата: сначала как подпоследовательность
// (jsn -> json), затем по расстоянию правки (jsno -> json).
func suggest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(input, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(input, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// unknownValueError объясняет недопустимое значение и, если получится, подсказывает.
func unknownValueError(what, value string, candidates []string) error {
	msg := fmt.Sprintf("invalid %s value %q (expected %s)", what, value, strings.Join(candidates, "|"))
	if s := suggest(value, candidates); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return fmt.Errorf("%s", msg)
}
