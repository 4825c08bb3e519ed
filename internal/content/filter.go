package content

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SearchGlossary keeps terms whose term or definition contains query,
// ignoring case. An empty query returns every term.
func SearchGlossary(terms []GlossaryTerm, query string) []GlossaryTerm {
	needle := strings.ToLower(query)
	return lo.Filter(terms, func(t GlossaryTerm, _ int) bool {
		return strings.Contains(strings.ToLower(t.Term), needle) ||
			strings.Contains(strings.ToLower(t.Definition), needle)
	})
}

// StatisticGroup is one chart series.
type StatisticGroup struct {
	Category string
	Points   []Statistic
}

// GroupStatistics buckets statistics by category, each bucket ordered by
// ascending year. Groups are ordered by first appearance in the input.
func GroupStatistics(stats []Statistic) []StatisticGroup {
	buckets := lo.GroupBy(stats, func(s Statistic) string { return s.Category })
	order := lo.Uniq(lo.Map(stats, func(s Statistic, _ int) string { return s.Category }))

	groups := make([]StatisticGroup, 0, len(order))
	for _, category := range order {
		points := buckets[category]
		sort.SliceStable(points, func(i, j int) bool { return points[i].Year < points[j].Year })
		groups = append(groups, StatisticGroup{Category: category, Points: points})
	}
	return groups
}

// StatisticsInCategory returns the statistics of one category ordered by year.
func StatisticsInCategory(stats []Statistic, category string) []Statistic {
	points := lo.Filter(stats, func(s Statistic, _ int) bool { return s.Category == category })
	sort.SliceStable(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}
