package adapter

import (
	"net/url"
	"strings"

	"github.com/tomnomnom/linkheader"
)

// Standard relation types used by the Ello API.
const (
	RelNext = "next"
	RelPrev = "prev"
)

// Link is one entry of an RFC 8288 Link header with its target resolved.
type Link struct {
	URL    *url.URL
	Rel    string
	Params map[string]string
}

// Links is a parsed Link header.
type Links []Link

// ParseLinks parses one or more Link header values such as
//
//	<https://ello.co/api/v2/editorials?before=101981>; rel="next"
//
// Entries with an unparsable target are skipped.
func ParseLinks(headers ...string) Links {
	var links Links
	for _, raw := range linkheader.ParseMultiple(headers) {
		u, err := url.Parse(strings.TrimSpace(raw.URL))
		if err != nil {
			continue
		}
		links = append(links, Link{URL: u, Rel: raw.Rel, Params: raw.Params})
	}
	return links
}

// Find returns the first link whose rel list contains rel.
func (l Links) Find(rel string) (Link, bool) {
	for _, link := range l {
		for _, r := range strings.Fields(link.Rel) {
			if strings.EqualFold(r, rel) {
				return link, true
			}
		}
	}
	return Link{}, false
}

// Param returns the query parameter name of the link with relation rel,
// or "" when there is no such link or parameter.
func (l Links) Param(rel, name string) string {
	link, ok := l.Find(rel)
	if !ok || link.URL == nil {
		return ""
	}
	return link.URL.Query().Get(name)
}
