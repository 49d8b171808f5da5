package listview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemdeck/internal/domain/item"
)

func names(items []item.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.DisplayName())
	}
	return out
}

func ids(items []item.Item) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	fruits := item.Fruits()

	t.Run("blank term keeps everything in order", func(t *testing.T) {
		assert.Equal(t, fruits, Filter(fruits, ""))
		assert.Equal(t, fruits, Filter(fruits, "   "))
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"Apple"}, names(Filter(fruits, "Apple")))
		assert.Equal(t, []string{"Apple"}, names(Filter(fruits, "aPPLE")))
	})

	t.Run("matches description", func(t *testing.T) {
		assert.Equal(t, []string{"Cherry"}, names(Filter(fruits, "cherry fruit")))
		assert.Equal(t, []string{"Banana", "Lemon"}, names(Filter(fruits, "yellow")))
	})

	t.Run("no match is empty, not nil", func(t *testing.T) {
		got := Filter(fruits, "NonExistent")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("records without description match on name only", func(t *testing.T) {
		recs := []item.Item{{ID: 1, Name: "Item"}, {ID: 2, Title: "Other item"}}
		assert.Equal(t, []int64{1, 2}, ids(Filter(recs, "item")))
		assert.Empty(t, Filter(recs, "fresh"))
	})

	t.Run("nil collection is empty", func(t *testing.T) {
		got := Filter(nil, "x")
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.NotNil(t, Filter(nil, ""))
	})

	t.Run("does not alias the input", func(t *testing.T) {
		in := item.Fruits()
		out := Filter(in, "")
		out[0].Name = "changed"
		assert.Equal(t, "Apple", in[0].Name)
	})
}

func TestSort(t *testing.T) {
	recs := []item.Item{
		{ID: 3, Name: "banana"},
		{ID: 10, Name: "Cherry"},
		{ID: 2, Name: "apple"},
		{ID: 1, Name: "Banana"},
	}

	t.Run("by name is case-sensitive", func(t *testing.T) {
		got := Sort(recs, SortByName, Ascending)
		assert.Equal(t, []string{"Banana", "Cherry", "apple", "banana"}, names(got))
	})

	t.Run("by id is numeric", func(t *testing.T) {
		assert.Equal(t, []int64{1, 2, 3, 10}, ids(Sort(recs, SortByID, Ascending)))
		assert.Equal(t, []int64{10, 3, 2, 1}, ids(Sort(recs, SortByID, Descending)))
	})

	t.Run("ties keep input order in both directions", func(t *testing.T) {
		tied := []item.Item{
			{ID: 1, Name: "same"},
			{ID: 2, Name: "other"},
			{ID: 3, Name: "same"},
			{ID: 4, Name: "same"},
		}
		assert.Equal(t, []int64{2, 1, 3, 4}, ids(Sort(tied, SortByName, Ascending)))
		assert.Equal(t, []int64{1, 3, 4, 2}, ids(Sort(tied, SortByName, Descending)))
	})

	t.Run("leaves input untouched", func(t *testing.T) {
		before := append([]item.Item(nil), recs...)
		_ = Sort(recs, SortByID, Descending)
		assert.Equal(t, before, recs)
	})

	t.Run("nil is empty", func(t *testing.T) {
		got := Sort(nil, SortByName, Ascending)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{12, 5, 3},
		{12, 50, 1},
		{12, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.total, c.size), "total=%d size=%d", c.total, c.size)
	}
}

func TestPaginate(t *testing.T) {
	fruits := item.Fruits()

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(Paginate(fruits, 1, 10)))
	assert.Equal(t, []int64{11, 12}, ids(Paginate(fruits, 2, 10)))
	assert.Empty(t, Paginate(fruits, 3, 10))
	assert.NotNil(t, Paginate(fruits, 3, 10))
	assert.Empty(t, Paginate(fruits, 0, 10))
	assert.Empty(t, Paginate(fruits, 1, 0))
	assert.Empty(t, Paginate(nil, 1, 10))

	// no overflow at the extremes
	assert.Empty(t, Paginate(fruits, math.MaxInt, 50))
	assert.NotNil(t, Paginate(fruits, math.MaxInt, 50))
	assert.Empty(t, Paginate(fruits, math.MaxInt/2, 3))
	assert.Len(t, Paginate(fruits, 1, math.MaxInt), 12)
	assert.Equal(t, 1, TotalPages(12, math.MaxInt))
}

func TestCompute(t *testing.T) {
	res := Compute(item.Fruits(), DefaultParams())
	assert.Len(t, res.PageItems, 10)
	assert.Equal(t, 12, res.TotalMatched)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, DefaultParams(), res.Params)

	p := DefaultParams()
	p.SearchTerm = "sweet"
	p.SortField = SortByName
	p.SortOrder = Descending
	res = Compute(item.Fruits(), p)
	assert.Equal(t, []string{"Nectarine", "Honeydew", "Date"}, names(res.PageItems))
	assert.Equal(t, 3, res.TotalMatched)
	assert.Equal(t, 1, res.TotalPages)

	res = Compute(nil, DefaultParams())
	assert.Empty(t, res.PageItems)
	assert.Equal(t, 0, res.TotalMatched)
	assert.Equal(t, 0, res.TotalPages)
}

func TestParse(t *testing.T) {
	f, ok := ParseSortField(" Name ")
	assert.True(t, ok)
	assert.Equal(t, SortByName, f)
	_, ok = ParseSortField("price")
	assert.False(t, ok)

	o, ok := ParseSortOrder("DESCENDING")
	assert.True(t, ok)
	assert.Equal(t, Descending, o)
	_, ok = ParseSortOrder("sideways")
	assert.False(t, ok)

	assert.True(t, ValidPageSize(25))
	assert.False(t, ValidPageSize(20))
}

func TestSnapshotLabels(t *testing.T) {
	snap := Compute(item.Fruits(), DefaultParams()).Snapshot()
	assert.Equal(t, "Page 1 of 2", snap.PageLabel())
	assert.Equal(t, "Showing 10 of 12 items", snap.ResultsLabel())
	assert.Equal(t, "ID ↑", snap.SortLabel(SortByID))
	assert.Equal(t, "Name", snap.SortLabel(SortByName))
	assert.False(t, snap.HasPrevious())
	assert.True(t, snap.HasNext())

	empty := Compute(nil, DefaultParams()).Snapshot()
	assert.Equal(t, "Showing 0 of 0 items", empty.ResultsLabel())
	assert.False(t, empty.HasNext())
	assert.NotNil(t, empty.Items)
}
