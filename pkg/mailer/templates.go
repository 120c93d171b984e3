package mailer

// Body templates for account emails. Rendered through Render with sprig
// functions in scope.

const ConfirmEmailTemplate = `Hello {{ .Name | title }},

Welcome to {{ .AppName }}. Confirm your email address by opening the link below:

{{ .BaseURL }}/confirm-email?email={{ .Email }}&token={{ .Token }}

If you did not create this account, ignore this message.
`

const ResetPasswordTemplate = `Hello {{ .Name | title }},

A password reset was requested for your account. Open the link below to choose a new password:

{{ .BaseURL }}/reset-password?email={{ .Email }}&token={{ .Token }}

The link expires in {{ .ExpiresIn }}. If you did not request a reset, ignore this message.
`
