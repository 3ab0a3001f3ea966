package templates

// Form renders a single back-office form.  Validation state, banners, and
// the confirmation dialog are applied to the rendered document afterwards.
const Form = `
{{ define "content" }}
	{{ with .Form }}
		<h3>{{ .Name }}</h3>
		{{ if .Description }}<p class="text-muted">{{ .Description }}</p>{{ end }}
		<form id="{{ .ID }}" action="{{ .Action }}" method="post" novalidate data-kind="{{ .Kind }}"{{ with $.Validate }} data-validate="{{ . }}"{{ end }}{{ with .Confirm }} data-confirm="true" data-confirm-title="{{ .Title }}" data-confirm-message="{{ .Message }}"{{ end }}>
			{{ range $page := .Pages }}
				{{ if $page.Description }}<p>{{ $page.Description }}</p>{{ end }}
				{{ range $elem := $page.Elements }}
					{{ if eq $elem.Type "hidden" }}
						<input type="hidden" id="{{ $elem.ID }}" name="{{ $elem.Name }}" value="{{ $elem.Value }}">
					{{ else }}
						<div class="mb-3{{ if $elem.Group }} {{ $elem.Group }}{{ end }}">
							<label class="form-label{{ if $elem.Required }} required{{ end }}" for="{{ $elem.ID }}">{{ $elem.Label }}</label>
							{{ if eq $elem.Type "select" }}
								<select class="form-select" id="{{ $elem.ID }}" name="{{ $elem.Name }}" {{ if $elem.Required }}required{{ end }} {{ if $elem.Disabled }}disabled{{ end }}>
									<option value="">Select...</option>
									{{ range $opt := $elem.ValueList }}
										<option value="{{ $opt }}" {{ if eq $opt $elem.Value }}selected{{ end }}>{{ $opt }}</option>
									{{ end }}
								</select>
							{{ else if eq $elem.Type "textarea" }}
								<textarea class="form-control" id="{{ $elem.ID }}" name="{{ $elem.Name }}" {{ if $elem.Required }}required{{ end }} {{ if $elem.ReadOnly }}readonly{{ end }} {{ if $elem.Disabled }}disabled{{ end }}>{{ $elem.Value }}</textarea>
							{{ else }}
								<input class="form-control" type="{{ if $elem.Type }}{{ $elem.Type }}{{ else }}text{{ end }}" id="{{ $elem.ID }}" name="{{ $elem.Name }}" value="{{ $elem.Value }}" {{ if $elem.Required }}required{{ end }} {{ if $elem.ReadOnly }}readonly{{ end }} {{ if $elem.Disabled }}disabled{{ end }}>
							{{ end }}
							{{ if $elem.Description }}<div class="form-text">{{ $elem.Description }}</div>{{ end }}
						</div>
					{{ end }}
				{{ end }}
			{{ end }}
			{{ if $.Hours }}
				<p>Hours worked: <strong id="hours_worked_display"></strong></p>
			{{ end }}
			<button type="submit" class="btn btn-primary">Save</button>
		</form>
	{{ end }}
{{ end }}
`

// Index lists the registered forms, grouped in tabs.
const Index = `
{{ define "content" }}
	<ul class="nav nav-tabs" role="tablist">
		{{ range .Tabs }}
			<li class="nav-item" role="presentation">
				<a class="nav-link{{ if .Tab.Active }} active{{ end }}" href="{{ .Href }}" data-bs-toggle="tab" data-bs-target="{{ .Tab.Target }}" role="tab" aria-selected="{{ if .Tab.Active }}true{{ else }}false{{ end }}">{{ .Tab.Label }}</a>
			</li>
		{{ end }}
	</ul>
	<div class="tab-content pt-3">
		{{ range .Tabs }}
			<div class="tab-pane fade{{ if .Tab.Active }} show active{{ end }}" id="{{ .Tab.PaneID }}" role="tabpanel">
				<ul class="list-group">
					{{ range .Links }}
						<li class="list-group-item"><a href="{{ .Path }}">{{ .Label }}</a></li>
					{{ end }}
				</ul>
			</div>
		{{ end }}
	</div>
{{ end }}
`
