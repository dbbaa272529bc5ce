package site

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE HTML>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Directory listing for {{.Path}}</title>
</head>
<body>
<h1>Directory listing for {{.Path}}</h1>
<hr>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Name}}</a></li>
{{- end}}
</ul>
<hr>
</body>
</html>
`))

type listingEntry struct {
	Name string
	Href template.URL
}

// renderListing builds the HTML index of dir, served at urlPath.
func renderListing(dir http.File, urlPath string) ([]byte, error) {
	infos, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}

	sort.Slice(infos, func(i, j int) bool {
		return strings.ToLower(infos[i].Name()) < strings.ToLower(infos[j].Name())
	})

	entries := make([]listingEntry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		href := url.PathEscape(name)
		if info.IsDir() {
			name += "/"
			href += "/"
		}
		entries = append(entries, listingEntry{Name: name, Href: template.URL(href)})
	}

	var buf bytes.Buffer
	err = listingTemplate.Execute(&buf, struct {
		Path    string
		Entries []listingEntry
	}{Path: urlPath, Entries: entries})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
