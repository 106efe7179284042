package grid

import (
	"sort"
	"strings"

	"github.com/atomicstack/panesync/internal/layout"
	"github.com/atomicstack/panesync/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindColumn fuzzy-matches query against the column titles and scrolls the
// best scrolling match to the left edge of the body. Frozen matches are
// always visible and cause no scroll.
func (g *Grid) FindColumn(query string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}
	titles := g.ColumnOrder()
	ranks := fuzzy.RankFindFold(query, titles)
	if len(ranks) == 0 {
		events.Finder.Query(query, "", false)
		return "", false
	}
	sort.Stable(ranks)
	best := ranks[0]
	events.Finder.Query(query, best.Target, true)
	if best.OriginalIndex >= g.frozen {
		g.ScrollTo(PaneBody, layout.Horizontal, (best.OriginalIndex-g.frozen)*g.cw)
	}
	return best.Target, true
}
