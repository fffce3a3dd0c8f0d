package extract

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ougirez/tender-normalizer/internal/domain"
)

var (
	urlRe        = regexp.MustCompile(`https?://[^\s<>"'\])}]+`)
	linkURLKeys  = []string{"url", "link", "href", "uri", "location", "path", "downloadUrl", "download_url"}
	linkTypeKeys = []string{"type", "documentType", "doc_type", "kind"}
	linkDescKeys = []string{"description", "title", "name", "label", "text"}
)

// LinkCollector accumulates document links, dropping non-http values and duplicates while
// keeping first-seen order.
type LinkCollector struct {
	seen  map[string]struct{}
	links domain.DocumentLinks
}

func NewLinkCollector() *LinkCollector {
	return &LinkCollector{seen: make(map[string]struct{})}
}

// AddURL adds one URL. Invalid values are ignored.
func (c *LinkCollector) AddURL(raw, kind, description string) {
	u, ok := validURL(raw)
	if !ok {
		return
	}
	if _, dup := c.seen[u]; dup {
		return
	}
	c.seen[u] = struct{}{}
	c.links = append(c.links, domain.DocumentLink{URL: u, Type: kind, Description: description})
}

// Add accepts any JSON-decoded shape: string, []string, []map, {"items": [...]}, or a map
// of name -> url.
func (c *LinkCollector) Add(raw any, kind string) {
	switch v := raw.(type) {
	case nil:
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return
		}
		if _, ok := validURL(s); ok {
			c.AddURL(s, kind, "")
			return
		}
		for _, href := range HTMLLinks(s) {
			c.AddURL(href, kind, "")
		}
		for _, m := range urlRe.FindAllString(s, -1) {
			c.AddURL(m, kind, "")
		}
	case []string:
		for _, s := range v {
			c.Add(s, kind)
		}
	case []any:
		for _, item := range v {
			c.Add(item, kind)
		}
	case map[string]any:
		c.addMap(v, kind)
	}
}

func (c *LinkCollector) addMap(m map[string]any, kind string) {
	if items, ok := m["items"]; ok {
		c.Add(items, kind)
		return
	}

	if u := StringField(m, linkURLKeys...); u != "" {
		t := StringField(m, linkTypeKeys...)
		if t == "" {
			t = kind
		}
		c.AddURL(u, t, StringField(m, linkDescKeys...))
		return
	}

	// map of label -> url
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		switch val := m[label].(type) {
		case string:
			c.AddURL(val, kind, label)
		case map[string]any, []any:
			c.Add(val, kind)
		}
	}
}

func (c *LinkCollector) Links() domain.DocumentLinks {
	if len(c.links) == 0 {
		return domain.DocumentLinks{}
	}
	return c.links
}

// NormalizeDocumentLinks is a one-shot LinkCollector.
func NormalizeDocumentLinks(raw any) domain.DocumentLinks {
	c := NewLinkCollector()
	c.Add(raw, "")
	return c.Links()
}

func validURL(raw string) (string, bool) {
	s := strings.TrimRight(strings.TrimSpace(raw), ".,;")
	if s == "" {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return s, true
}

// StringField reads the first non-blank string among keys of a decoded JSON object.
func StringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
