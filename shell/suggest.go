package shell

import (
	"github.com/hbollon/go-edlib"

	"github.com/mimicfs/mimicfs/internal/util"
)

// suggest returns the candidate most similar to input when its Jaro-Winkler
// similarity clears threshold. The second return is false when nothing is
// close enough.
func suggest(input string, candidates []string, threshold float64) (string, bool) {
	best := ""
	bestScore := float32(threshold)

	for _, c := range candidates {
		score, err := edlib.StringsSimilarity(input, c, edlib.JaroWinkler)
		if err != nil {
			logger := util.GetLogger("Shell.suggest")
			logger.Warn().Err(err).
				Str("input", input).Str("candidate", c).Msg("Similarity computation failed")
			continue
		}
		if score >= bestScore {
			best = c
			bestScore = score
		}
	}

	return best, best != ""
}

// suggestUnknown prints the "did you mean" hint for an unrecognized command
// when suggestions are enabled.
func (s *Shell) suggestUnknown(input string, candidates []string) {
	if !s.cfg.SuggestEnabled {
		return
	}
	if hint, ok := suggest(input, candidates, s.cfg.SuggestThreshold); ok {
		s.printf("Did you mean '%s'?\n", hint)
	}
}
