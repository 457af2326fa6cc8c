package presentation

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/temirov/tema/internal/vocabulary"
)

const maximumSuggestionDistance = 2

// SuggestCommand finds the command whose long name is closest to text.
func SuggestCommand(text string) (vocabulary.Command, bool) {
	commands := vocabulary.Commands()
	names := make([]string, 0, len(commands))
	for _, command := range commands {
		names = append(names, command.LongName())
	}
	index, found := closestCandidate(text, names)
	if !found {
		return 0, false
	}
	return commands[index], true
}

// SuggestModifier finds the modifier usable with command whose long name is closest to text.
// Leading modifier symbols in text are ignored.
func SuggestModifier(text string, command vocabulary.Command) (vocabulary.Modifier, bool) {
	modifiers := vocabulary.ModifiersForCommand(command)
	names := make([]string, 0, len(modifiers))
	for _, modifier := range modifiers {
		names = append(names, modifier.LongName())
	}
	index, found := closestCandidate(vocabulary.StripModifierSymbols(text), names)
	if !found {
		return 0, false
	}
	return modifiers[index], true
}

// closestCandidate prefers candidates containing text as an ordered subsequence and
// falls back to the smallest edit distance within maximumSuggestionDistance.
func closestCandidate(text string, candidates []string) (int, bool) {
	if text == "" || len(candidates) == 0 {
		return 0, false
	}

	ranks := fuzzy.RankFindFold(text, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].OriginalIndex, true
	}

	bestIndex := -1
	bestDistance := maximumSuggestionDistance + 1
	for index, candidate := range candidates {
		distance := fuzzy.LevenshteinDistance(text, candidate)
		if distance < bestDistance {
			bestIndex = index
			bestDistance = distance
		}
	}
	return bestIndex, bestIndex >= 0
}
