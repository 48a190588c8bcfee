// Package goquery implements document-tree extraction of method subsections
// from the Sphinx-generated Trello API documentation pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/trellodoc"
	"golang.org/x/net/html"
)

// Ensure Extractor implements trellodoc.RegionExtractor at compile time.
var _ trellodoc.RegionExtractor = (*Extractor)(nil)

// Extractor locates a named region inside an HTML page and extracts one
// RawMethod per method subsection found beneath it.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMethods parses the page, locates the node identified by region, and
// returns the methods documented beneath it in document order. Subsections
// without an extractable verb or path are skipped. Returns ENOTFOUND when the
// region identifier does not exist in the document and EINVALID when the HTML
// cannot be parsed.
func (e *Extractor) ExtractMethods(page string, region string) ([]*trellodoc.RawMethod, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, trellodoc.Errorf(trellodoc.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Find("#" + region).First()
	if root.Length() == 0 {
		return nil, trellodoc.Errorf(trellodoc.ENOTFOUND, "region %q not found in document", region)
	}

	var methods []*trellodoc.RawMethod
	root.Find(".section").Each(func(_ int, sec *goquery.Selection) {
		// A nested wrapper can carry the region's own identifier; it is not
		// a method subsection.
		if id, _ := sec.Attr("id"); id == region {
			return
		}
		if raw, ok := extractSection(sec); ok {
			methods = append(methods, raw)
		}
	})

	return methods, nil
}

// extractSection reduces one subsection to its verb, path, and documented
// arguments. Reports ok=false when the heading yields no verb or no path.
func extractSection(sec *goquery.Selection) (*trellodoc.RawMethod, bool) {
	heading := sec.Find("h1, h2, h3").First()
	if heading.Length() == 0 {
		return nil, false
	}

	verb := headingFreeText(heading)
	path := heading.Find("tt").First().Text()
	if verb == "" || path == "" {
		return nil, false
	}

	raw := &trellodoc.RawMethod{Verb: verb, Path: path}

	// Only direct children of the arguments list are parameter entries;
	// items nested inside valid-value sublists are not.
	if list := argumentsList(sec); list != nil {
		list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
			if p, ok := extractParam(item); ok {
				raw.Params = append(raw.Params, p)
			}
		})
	}

	return raw, true
}

// headingFreeText returns the text sitting directly inside the heading
// element, excluding child markup like the <tt> path label, with all
// whitespace removed. For "<h2>GET <tt>/1/boards</tt></h2>" it returns "GET".
func headingFreeText(heading *goquery.Selection) string {
	var b strings.Builder
	for _, node := range heading.Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				b.WriteString(child.Data)
			}
		}
	}
	return strings.Join(strings.Fields(b.String()), "")
}

// argumentsList locates the list of documented arguments: the first nested
// list under a list item whose rendered text starts with "Arguments".
// Returns nil when the subsection documents no arguments.
func argumentsList(sec *goquery.Selection) *goquery.Selection {
	marker := sec.Find("li").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.HasPrefix(strings.TrimSpace(s.Text()), "Arguments")
	}).First()
	if marker.Length() == 0 {
		return nil
	}
	list := marker.Find("ul").First()
	if list.Length() == 0 {
		return nil
	}
	return list
}

// extractParam pulls one documented argument out of its list item. Reports
// ok=false when the item has no <tt> name label. The Info field is set only
// when at least one metadata value was found.
func extractParam(item *goquery.Selection) (trellodoc.Param, bool) {
	name := item.Find("tt").First().Text()
	if name == "" {
		return trellodoc.Param{}, false
	}

	text := item.Text()
	p := trellodoc.Param{
		Name:     name,
		Required: strings.Contains(text, "required"),
	}

	info := &trellodoc.ParamInfo{}
	if marker := boldLabel(item, "Default:"); marker != nil {
		info.DefaultValue = marker.NextFiltered("tt").First().Text()
	}
	if marker := boldLabel(item, "Valid Values:"); marker != nil {
		item.Find("ul").First().ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			if v := li.Find("tt").First().Text(); v != "" {
				info.ValidValues = append(info.ValidValues, v)
			}
		})
		if strings.Contains(text, "or a comma-separated list of:") {
			info.AllowMultiple = true
		}
	}
	if !info.IsZero() {
		p.Info = info
	}

	return p, true
}

// boldLabel finds a bolded label in the item whose text starts with prefix.
// Returns nil when no such label exists.
func boldLabel(item *goquery.Selection, prefix string) *goquery.Selection {
	marker := item.Find("strong, b").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.HasPrefix(strings.TrimSpace(s.Text()), prefix)
	}).First()
	if marker.Length() == 0 {
		return nil
	}
	return marker
}
