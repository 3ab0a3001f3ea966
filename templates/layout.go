package templates

// Layout is the main site template. It includes the navigation bar and
// embeds the content for every other page.  Every page has a .container
// element; success banners are prepended to it.
var Layout = `
{{ define "layout" }}
<!DOCTYPE html>
<html>
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<link rel="stylesheet" href="/assets/bootstrap.min.css">
		<link rel="stylesheet" href="/assets/custom.css">
		<title>{{ .Title }}</title>
	</head>
	<body>
		<nav class="navbar navbar-expand navbar-dark bg-dark mb-4">
			<div class="container-fluid">
				<a class="navbar-brand" href="/">Back office</a>
				<ul class="navbar-nav">
					{{ range .Nav }}
						<li class="nav-item"><a class="nav-link{{ if .Active }} active{{ end }}" href="{{ .Path }}">{{ .Label }}</a></li>
					{{ end }}
				</ul>
			</div>
		</nav>
		<main class="container">
			{{ template "content" . }}
		</main>
		<script src="/assets/bootstrap.bundle.min.js"></script>
		<script src="/assets/erpui.js"></script>
	</body>
</html>
{{ end }}
`
