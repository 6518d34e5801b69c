package server

import "html/template"

var landingTmpl = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Graph Browser</title></head>
<body>
<main id="browser-landing">
  <h1>Graph Browser</h1>
  <p>
    The Data Commons Graph is constructed by synthesizing a single graph
    from many different data sources. The browser lets you explore each
    node of the graph, its types, its properties and its statistics.
  </p>
  <p>Some places to start:</p>
  <ul>
    {{- range .}}
    <li><a href="/browser/{{.Dcid}}">{{.Name}}</a></li>
    {{- end}}
  </ul>
</main>
</body>
</html>
`))

type landingLink struct {
	Dcid string
	Name string
}

var landingLinks = []landingLink{
	{"geoId/06", "California"},
	{"geoId/0649670", "Mountain View"},
	{"country/USA", "United States"},
	{"Count_Person", "Count of persons"},
}

var nodeShellTmpl = template.Must(template.New("node").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Name}} - Graph Browser</title></head>
<body>
<div id="page-loading">Loading...</div>
<div id="node" data-dcid="{{.Dcid}}" data-nn="{{.Name}}"></div>
</body>
</html>
`))
