package dashboard

import "fmt"

// gridColumns is the fixed column grid widgets span across.
const gridColumns = 12

// spanClassTable maps the common spans to their responsive class
// combinations. Spans 7-11 are rare enough that they are derived by
// formulaSpanClass instead of being enumerated.
var spanClassTable = map[int]string{
	1:  "col-span-12 md:col-span-2 lg:col-span-1",
	2:  "col-span-12 md:col-span-4 lg:col-span-2",
	3:  "col-span-12 md:col-span-6 lg:col-span-3",
	4:  "col-span-12 md:col-span-8 lg:col-span-4",
	5:  "col-span-12 md:col-span-10 lg:col-span-5",
	6:  "col-span-12 md:col-span-12 lg:col-span-6",
	12: "col-span-12 md:col-span-12 lg:col-span-12",
}

// ResolveSpanClass returns the responsive class string for a column span.
//
// The progressive-collapse rule: every widget is full width on small
// screens; on medium screens a span doubles (capped at the full grid), so
// anything wider than half the grid collapses to full width; on large
// screens the span applies as declared. Spans 1..6 and 12 come from the
// precomputed table; 7..11 are derived by the same formula; anything else
// is clamped into 1..12 first.
func ResolveSpanClass(span int) string {
	if span < 1 {
		span = 1
	}
	if span > gridColumns {
		span = gridColumns
	}
	if class, ok := spanClassTable[span]; ok {
		return class
	}
	return formulaSpanClass(span)
}

// formulaSpanClass derives the responsive classes for a span.
// Kept consistent with spanClassTable: the table entries are exactly what
// this formula produces for their spans.
func formulaSpanClass(span int) string {
	md := span * 2
	if md > gridColumns {
		md = gridColumns
	}
	return fmt.Sprintf("col-span-12 md:col-span-%d lg:col-span-%d", md, span)
}
