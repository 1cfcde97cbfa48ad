package slides

import "strings"

// DefaultMaxWords is the slide word cap used when no setting is supplied.
const DefaultMaxWords = 40

// sentencesPerSlide is the number of sentences a slide aims for before the
// word cap is checked. Carry-over from a previous cut counts as the first.
const sentencesPerSlide = 2

// Config controls slide sizing. MaxWords must be >= 1; callers validate at
// the settings boundary (see config.Reading) rather than here.
type Config struct {
	MaxWords int
}

// DefaultConfig returns the default slide sizing.
func DefaultConfig() Config {
	return Config{MaxWords: DefaultMaxWords}
}

// Chunk splits text into slide texts. Each slide accumulates up to two
// sentences, then the word cap applies: a buffer within MaxWords is emitted
// whole, otherwise the first MaxWords words become the slide and the rest
// carries over to seed the next one. The carry-over counts as one sentence
// toward the two-sentence target, so a long cut sentence keeps at most one
// fresh sentence per slide until it drains.
//
// Chunking is deterministic and lossless: joining the result with single
// spaces re-tokenizes to exactly the word sequence of the input, and no
// slide ever exceeds MaxWords words.
func Chunk(text string, cfg Config) []string {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var out []string
	var carry []string
	i := 0
	for i < len(sentences) || len(carry) > 0 {
		buf := carry
		carry = nil
		count := 0
		if len(buf) > 0 {
			count = 1
		}
		for count < sentencesPerSlide && i < len(sentences) {
			buf = append(buf, strings.Fields(sentences[i])...)
			i++
			count++
		}
		if len(buf) <= cfg.MaxWords {
			out = append(out, strings.Join(buf, " "))
		} else {
			out = append(out, strings.Join(buf[:cfg.MaxWords], " "))
			carry = buf[cfg.MaxWords:]
		}
	}
	return out
}
