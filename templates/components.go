package templates

// Alert is a dismissible banner.  Executed with a ui.Alert.
const Alert = `
{{- define "alert" -}}
<div id="{{ .ID }}" class="{{ .Class }}" role="alert"{{ with .DismissMillis }} data-dismiss-after="{{ . }}"{{ end }}{{ with .ReplaceURL }} data-replace-url="{{ . }}"{{ end }}>
	<strong>{{ .Heading }}</strong> {{ .Message }}
	<button type="button" class="btn-close" data-bs-dismiss="alert" aria-label="Close"></button>
</div>
{{- end -}}
`

// ConfirmModal is the confirmation dialog.  Executed with a
// ui.ConfirmDialog; confirming posts the carried values back with the
// confirmation marker set.
const ConfirmModal = `
{{- define "confirm" -}}
<div class="modal fade" id="{{ .ID }}" tabindex="-1" aria-labelledby="{{ .LabelID }}" aria-hidden="true">
	<div class="modal-dialog">
		<form class="modal-content" action="{{ .Action }}" method="post" data-confirm-for="{{ .FormID }}">
			<div class="modal-header">
				<h5 class="modal-title" id="{{ .LabelID }}">{{ .Title }}</h5>
				<button type="button" class="btn-close" data-bs-dismiss="modal" aria-label="Close"></button>
			</div>
			<div class="modal-body">{{ .Message }}</div>
			{{ range $name, $value := .Values }}
				<input type="hidden" name="{{ $name }}" value="{{ $value }}">
			{{ end }}
			<input type="hidden" name="_confirmed" value="1">
			<div class="modal-footer">
				<button type="button" class="btn btn-secondary" data-bs-dismiss="modal">Cancel</button>
				<button type="submit" class="btn btn-primary" id="confirmActionBtn">Confirm</button>
			</div>
		</form>
	</div>
</div>
{{- end -}}
`
