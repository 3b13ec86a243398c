// Package web embeds the page templates served by the portal.
package web

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"

	"github.com/oksasatya/qos-portal/pkg/pagination"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page with the helper funcs the pages use.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		// pageURL keeps search and status while moving to page p.
		"pageURL": func(base string, q url.Values, p int) string {
			v := url.Values{}
			for k, vs := range q {
				v[k] = vs
			}
			v.Set("page", strconv.Itoa(p))
			return base + "?" + v.Encode()
		},
		"isCurrent": func(it pagination.Item, current int) bool {
			return !it.Ellipsis && it.Page == current
		},
	}
}
