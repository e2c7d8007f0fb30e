// Package wizard prompts for the generation inputs a command was not
// given on the command line. It only runs on a TTY; headless callers
// must pass arguments instead.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/forgekit/forge/internal/spec"
)

// ErrCancelled reports that the user aborted the form.
var ErrCancelled = errors.New("wizard: cancelled")

// DomainInput is the raw answer set of the domain form, in the same
// shape the command-line flags provide.
type DomainInput struct {
	Name   string
	Fields string
}

// RunDomain prompts for a domain name and field list. Both answers are
// validated with the real parser, so a submitted form always parses.
func RunDomain() (*DomainInput, error) {
	input := &DomainInput{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Domain name").
				Description("Lowercase singular, e.g. product or order_item").
				Validate(func(s string) error {
					_, err := spec.Parse(s, "")
					return err
				}).
				Value(&input.Name),
			huh.NewInput().
				Title("Fields").
				Description("name:type pairs, ! marks required, e.g. title:string!,price:float64").
				Placeholder("title:string,price:float64").
				Validate(func(s string) error {
					_, err := spec.Parse("placeholder", s)
					return err
				}).
				Value(&input.Fields),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard: %w", err)
	}

	return input, nil
}
