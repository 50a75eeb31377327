package news

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
)

// QueryParams are the raw query string values of a news listing.
type QueryParams struct {
	ChannelName string
	WordCount   string
	Page        string
	PageSize    string
	Source      string
}

type Mode string

const (
	ModeLive  Mode = "live"
	ModeLocal Mode = "local"
)

// WordCountRange is an inclusive word count interval.
type WordCountRange struct {
	Min int
	Max int
}

// ParseWordCountRange parses "min-max" where both bounds are non-negative
// integers and min <= max.
func ParseWordCountRange(raw string) (WordCountRange, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(raw), "-")
	if !ok {
		return WordCountRange{}, apperr.NewValidation("word_count should be in range eg. 0-100")
	}

	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return WordCountRange{}, apperr.NewValidation("invalid word_count lower bound: " + strconv.Quote(lo))
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return WordCountRange{}, apperr.NewValidation("invalid word_count upper bound: " + strconv.Quote(hi))
	}
	if min < 0 || min > max {
		return WordCountRange{}, apperr.NewValidation("word_count range must satisfy 0 <= min <= max")
	}
	return WordCountRange{Min: min, Max: max}, nil
}
