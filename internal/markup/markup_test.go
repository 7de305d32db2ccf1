package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<svg role="img" viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg"><title>Fish &amp; Chips icon</title><path d="M0 0h24v24H0z"/></svg>` + "\n"

func TestParse(t *testing.T) {
	doc, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, sample, doc.Raw)
	assert.Equal(t, "Fish &amp; Chips icon", doc.Title)
	assert.Equal(t, "M0 0h24v24H0z", doc.PathData)

	require.Len(t, doc.Elements, 3)
	assert.Equal(t, "svg", doc.Elements[0].Selector)
	assert.Equal(t, "svg > title", doc.Elements[1].Selector)
	assert.Equal(t, "svg > path", doc.Elements[2].Selector)

	svg := doc.Elements[0]
	assert.Equal(t, []Attr{
		{Name: "role", Value: "img"},
		{Name: "viewBox", Value: "0 0 24 24"},
		{Name: "xmlns", Value: "http://www.w3.org/2000/svg"},
	}, svg.Attrs)

	v, ok := svg.Attr("viewBox")
	assert.True(t, ok)
	assert.Equal(t, "0 0 24 24", v)
	_, ok = svg.Attr("fill")
	assert.False(t, ok)
}

func TestParse_NestedAndExtraElements(t *testing.T) {
	doc, err := Parse(`<svg><g><path d="M1 1"/></g><path d="M2 2" fill="red"/><title>A icon</title><title>B icon</title></svg>`)
	require.NoError(t, err)

	assert.Len(t, doc.Select("svg > g > path"), 1)
	paths := doc.Select("svg > path")
	require.Len(t, paths, 1)
	assert.Len(t, paths[0].Attrs, 2)

	assert.Equal(t, "M2 2", doc.PathData, "only direct children of svg carry the path")
	assert.Equal(t, "A icon", doc.Title, "the first title wins")
	assert.Len(t, doc.Select("svg > title"), 2)
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc.Elements)
	assert.Empty(t, doc.Title)
	assert.Empty(t, doc.PathData)
}
