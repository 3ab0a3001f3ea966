package templates

var Fail = `
{{ define "content" }}

<h1>{{ .StatusCode }}: {{ .StatusText }}</h1>
<div class="text-danger fw-bold">
{{ .Message }}
</div>

{{ end }}
`
