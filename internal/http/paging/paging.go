package paging

import (
	"net/url"
	"strconv"
)

type PageLink struct {
	Page   int    `json:"page"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// BuildLinks returns a link for every page from 1 to totalPages. Each link
// keeps the original query and sets PageNumber.
func BuildLinks(path string, query url.Values, current, totalPages int) []PageLink {
	links := make([]PageLink, 0, max(totalPages, 0))
	for page := 1; page <= totalPages; page++ {
		q := url.Values{}
		for k, v := range query {
			q[k] = append([]string(nil), v...)
		}
		q.Set("PageNumber", strconv.Itoa(page))

		links = append(links, PageLink{
			Page:   page,
			Href:   path + "?" + q.Encode(),
			Active: page == current,
		})
	}
	return links
}
