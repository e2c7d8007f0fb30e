package template

import "errors"

var (
	// ErrTemplateNotFound reports a template file missing from the
	// embedded filesystem.
	ErrTemplateNotFound = errors.New("template: template not found")

	// ErrUnknownTemplate reports a template ID with no registry entry.
	ErrUnknownTemplate = errors.New("template: unknown template")

	// ErrMissingTemplateKey reports a template referencing a context
	// field the caller did not populate.
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken reports template tokens left in rendered
	// output, which means the context was missing a field.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")
)
