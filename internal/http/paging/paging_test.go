package paging

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLinks(t *testing.T) {
	query := url.Values{"SectionId": {"2"}, "PageNumber": {"2"}}

	links := BuildLinks("/catalog", query, 2, 3)

	require.Len(t, links, 3)
	assert.Equal(t, "/catalog?PageNumber=1&SectionId=2", links[0].Href)
	assert.False(t, links[0].Active)
	assert.True(t, links[1].Active)
	assert.Equal(t, 3, links[2].Page)
	assert.Equal(t, []string{"2"}, query["PageNumber"])
}

func TestBuildLinks_NoPages(t *testing.T) {
	links := BuildLinks("/catalog", nil, 1, 0)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}
