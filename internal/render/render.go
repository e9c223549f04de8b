// Package render produces a static HTML page of news cards from a feed
// document. All feed-supplied text goes through html/template's contextual
// escaping, so markup in titles, recaps, or tags never renders live.
package render

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/format"
)

// noTitle is the placeholder shown when an item has neither a neutral nor
// an original title.
const noTitle = "(no title)"

// maxTags caps the number of tag chips per card.
const maxTags = 4

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="{{.PageLang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>prizma</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 760px; margin: 0 auto; padding: 1rem; background: #0d1117; color: #c9d1d9; }
a { color: #58a6ff; text-decoration: none; }
#meta { color: #8b949e; }
.card { border: 1px solid #30363d; border-radius: 8px; padding: 1rem; margin: 1rem 0; background: #161b22; }
.card h2 { margin: 0 0 .4rem; font-size: 1.1rem; }
.meta, .confidence { color: #8b949e; font-size: .85rem; }
.bias-bar { height: 6px; background: #30363d; border-radius: 3px; margin: .5rem 0 .2rem; }
.bias-fill { height: 100%; background: linear-gradient(90deg, #3fb950, #d29922, #f85149); border-radius: 3px; }
.bias-score, .leaning { font-size: .85rem; color: #8b949e; }
.recap { margin: .6rem 0; }
.idea { font-size: .9rem; }
.tag { display: inline-block; background: #21262d; border-radius: 10px; padding: .1rem .6rem; margin-right: .3rem; font-size: .8rem; }
</style>
</head>
<body>
<header>
<h1>prizma</h1>
<p id="meta">{{.Summary}}</p>
</header>
<main id="feed">
{{range .Cards}}<article class="card">
<h2><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a></h2>
<div class="meta">{{.Source}} &middot; {{.Date}} &middot; <span class="lang">{{.Lang}}</span></div>
<div class="bias-bar"><div class="bias-fill" style="width: {{.BiasWidth}}%"></div></div>
<div class="bias-score">{{.BiasLabel}} &middot; <span class="leaning">{{.Leaning}}</span></div>
<p class="recap">{{.Recap}}</p>
<p class="idea"><strong>{{.IdeaLabel}}</strong> {{.Idea}}</p>
{{if .Tags}}<div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
{{end}}<div class="confidence">{{.Confidence}}</div>
</article>
{{end}}</main>
</body>
</html>
`))

// card is the per-item view model fed to the template.
type card struct {
	URL        string
	Title      string
	Source     string
	Date       string
	Lang       string
	BiasWidth  float64
	BiasLabel  string
	Leaning    string
	Recap      string
	IdeaLabel  string
	Idea       string
	Tags       []string
	Confidence string
}

// Renderer turns feed items into a static HTML page.
type Renderer struct {
	lang format.Lang
}

// New creates a Renderer with the given viewer language, which controls
// date formatting and the summary line.
func New(lang format.Lang) *Renderer {
	return &Renderer{lang: lang}
}

// Summary builds the line above the card list: shown count plus the feed's
// last-updated timestamp formatted for the viewer's locale.
func (r *Renderer) Summary(shown int, lastUpdated string) string {
	var line string
	if r.lang == format.LangRU {
		line = fmt.Sprintf("Материалов: %d", shown)
	} else {
		line = fmt.Sprintf("%d items", shown)
	}
	if updated := format.Date(lastUpdated, r.lang); updated != "" {
		if r.lang == format.LangRU {
			line += " · обновлено " + updated
		} else {
			line += " · updated " + updated
		}
	}
	return line
}

// Page renders items as a full HTML document. Items are emitted in the
// order given; filtering and sorting are the caller's concern.
func (r *Renderer) Page(items []feed.NewsItem, lastUpdated string) (string, error) {
	cards := make([]card, 0, len(items))
	for _, it := range items {
		cards = append(cards, r.newCard(it))
	}

	data := struct {
		PageLang string
		Summary  string
		Cards    []card
	}{
		PageLang: string(r.lang),
		Summary:  r.Summary(len(items), lastUpdated),
		Cards:    cards,
	}

	var b strings.Builder
	if err := pageTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return b.String(), nil
}

func (r *Renderer) newCard(it feed.NewsItem) card {
	title := it.Title()
	if title == "" {
		title = noTitle
	}

	recap := it.RecapNeutral
	if recap == "" {
		recap = "—"
	}

	itemLang := format.ParseLang(it.Lang)
	leaning := fmt.Sprintf("%d · %s",
		int(math.Round(it.LeftRightIndex)),
		format.LeftRight(it.LeftRightIndex, itemLang))

	ideaLabel := "Main idea:"
	if itemLang == format.LangRU {
		ideaLabel = "Суть:"
	}

	tags := it.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	return card{
		URL:        it.URL,
		Title:      title,
		Source:     it.Source,
		Date:       format.Date(it.PublishedAt, r.lang),
		Lang:       strings.ToUpper(it.Lang),
		BiasWidth:  it.DisplayBias(),
		BiasLabel:  fmt.Sprintf("%g/100", it.BiasScore),
		Leaning:    leaning,
		Recap:      recap,
		IdeaLabel:  ideaLabel,
		Idea:       it.MainIdea,
		Tags:       tags,
		Confidence: it.Confidence,
	}
}
