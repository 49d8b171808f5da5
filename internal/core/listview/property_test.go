package listview

import (
	"slices"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"itemdeck/internal/domain/item"
)

// records builds a collection with distinct, scrambled ids.
func records(names []string) []item.Item {
	out := make([]item.Item, len(names))
	for i, n := range names {
		out[i] = item.Item{
			ID:          int64((i*7919)%10007 + 1),
			Name:        n,
			Description: "desc " + n,
		}
	}
	return out
}

func properties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestProperty_Filter(t *testing.T) {
	props := properties()

	props.Property("any case variant of a present term selects exactly the containing records", prop.ForAll(
		func(names []string, pick, from, length int, upper bool) bool {
			if len(names) == 0 {
				return true
			}
			recs := records(names)
			source := names[pick%len(names)]
			if source == "" {
				return true
			}
			start := from % len(source)
			end := min(start+1+length%len(source), len(source))
			term := source[start:end]
			if upper {
				term = strings.ToUpper(term)
			} else {
				term = strings.ToLower(term)
			}

			got := Filter(recs, term)
			needle := strings.ToLower(term)
			var want []item.Item
			for _, r := range recs {
				if strings.Contains(strings.ToLower(r.Name), needle) ||
					strings.Contains(strings.ToLower(r.Description), needle) {
					want = append(want, r)
				}
			}
			return len(got) > 0 && slices.Equal(got, want)
		},
		gen.SliceOfN(20, gen.AlphaString()),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
		gen.Bool(),
	))

	props.Property("an absent term selects nothing", prop.ForAll(
		func(names []string) bool {
			return len(Filter(records(names), "#0#")) == 0
		},
		gen.SliceOf(gen.AlphaString()),
	))

	props.TestingRun(t)
}

func TestProperty_SortByIDReverses(t *testing.T) {
	props := properties()

	props.Property("descending by id is the exact reverse of ascending by id", prop.ForAll(
		func(names []string) bool {
			asc := Sort(records(names), SortByID, Ascending)
			desc := Sort(asc, SortByID, Descending)
			slices.Reverse(desc)
			return slices.Equal(asc, desc)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	props.Property("sorting is a permutation", prop.ForAll(
		func(names []string, byName, descending bool) bool {
			recs := records(names)
			field, order := SortByID, Ascending
			if byName {
				field = SortByName
			}
			if descending {
				order = Descending
			}
			got := Sort(recs, field, order)
			if len(got) != len(recs) {
				return false
			}
			cmpID := func(a, b item.Item) int { return compareByID(a, b) }
			a := slices.SortedFunc(slices.Values(got), cmpID)
			b := slices.SortedFunc(slices.Values(recs), cmpID)
			return slices.Equal(a, b)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.Bool(),
		gen.Bool(),
	))

	props.TestingRun(t)
}

func TestProperty_Paginate(t *testing.T) {
	props := properties()

	props.Property("pages concatenate back to the input and respect the size", prop.ForAll(
		func(names []string, sizeIdx int) bool {
			sorted := records(names)
			size := PageSizes[sizeIdx]
			total := TotalPages(len(sorted), size)

			var joined []item.Item
			for page := 1; page <= total; page++ {
				chunk := Paginate(sorted, page, size)
				if len(chunk) > size || len(chunk) == 0 {
					return false
				}
				joined = append(joined, chunk...)
			}
			if len(Paginate(sorted, total+1, size)) != 0 {
				return false
			}
			return slices.Equal(joined, sorted) || (len(sorted) == 0 && len(joined) == 0)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.IntRange(0, len(PageSizes)-1),
	))

	props.Property("total pages is ceil(n/size) and zero for nothing", prop.ForAll(
		func(n, sizeIdx int) bool {
			size := PageSizes[sizeIdx]
			got := TotalPages(n, size)
			if n == 0 {
				return got == 0
			}
			return (got-1)*size < n && n <= got*size
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, len(PageSizes)-1),
	))

	props.TestingRun(t)
}

func TestProperty_ResetRules(t *testing.T) {
	props := properties()

	props.Property("search and page size reset the page, sort never does", prop.ForAll(
		func(steps int, term string, byName bool, sizeIdx int) bool {
			recs := records(strings.Split(strings.Repeat("x,", 60), ","))
			p := NewPanel(recs, nil)
			p.SetPageSize(5)
			for i := 0; i < steps%10; i++ {
				p.Next()
			}
			page := p.Params().PageIndex

			field := SortByID
			if byName {
				field = SortByName
			}
			p.SortBy(field)
			if p.Params().PageIndex != page {
				return false
			}
			p.SortBy(field)
			if p.Params().PageIndex != page {
				return false
			}

			p.Search(term)
			if p.Params().PageIndex != 1 {
				return false
			}
			p.Next()
			p.SetPageSize(PageSizes[sizeIdx])
			return p.Params().PageIndex == 1
		},
		gen.IntRange(0, 100),
		gen.AlphaString(),
		gen.Bool(),
		gen.IntRange(0, len(PageSizes)-1),
	))

	props.TestingRun(t)
}
