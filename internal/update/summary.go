package update

import (
	"strings"

	"github.com/prizma-news/prizma/internal/format"
)

// recapLen and ideaLen bound the heuristic summary fields.
const (
	recapLen = 220
	ideaLen  = 140
)

// tagRule maps a tag to the keywords (en + ru stems) that trigger it.
type tagRule struct {
	tag      string
	keywords []string
}

// tagRules are checked in order; an item carries at most maxItemTags tags.
var tagRules = []tagRule{
	{"politics", []string{"election", "president", "government", "парламент", "выбор", "президент", "правительство"}},
	{"economy", []string{"economy", "inflation", "market", "bank", "эконом", "инфля", "рынок", "банк"}},
	{"conflict", []string{"war", "strike", "attack", "conflict", "войн", "удар", "атак", "конфликт"}},
	{"tech", []string{"tech", "ai", "software", "кибер", "техн", "ии"}},
	{"climate", []string{"climate", "weather", "storm", "климат", "погод", "шторм"}},
	{"health", []string{"health", "hospital", "disease", "здоров", "болезн"}},
}

// maxItemTags caps the tags attached to one item.
const maxItemTags = 4

// sensational and sober adjust the per-item bias score away from the
// source baseline.
var (
	sensational = []string{"outrage", "shocking", "controvers", "скандал", "шок", "крах"}
	sober       = []string{"analysis", "report", "официаль", "доклад", "statement", "заявлен"}
)

// ExtractTags derives up to four topic tags from item text.
func ExtractTags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, rule := range tagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
		if len(tags) == maxItemTags {
			break
		}
	}
	if tags == nil {
		tags = []string{}
	}
	return tags
}

// ScoreBias adjusts a source's baseline bias for one headline: sensational
// wording bumps it up, sober reporting wording down. Clamped to [0,100].
func ScoreBias(text string, base float64) float64 {
	lower := strings.ToLower(text)
	bump := 0.0
	for _, kw := range sensational {
		if strings.Contains(lower, kw) {
			bump += 10
			break
		}
	}
	for _, kw := range sober {
		if strings.Contains(lower, kw) {
			bump -= 6
			break
		}
	}
	return format.Clamp(base+bump, 0, 100)
}

// HeuristicSummary builds the fallback recap and main idea when no LLM is
// configured: the first sentence of the excerpt (or the title), shortened.
func HeuristicSummary(title, excerpt string) (recap, mainIdea string) {
	first := title
	if excerpt != "" {
		first = strings.TrimSpace(strings.SplitN(excerpt, ".", 2)[0])
	}
	if first == "" {
		first = title
	}
	return Shorten(first, recapLen), Shorten(title, ideaLen)
}
