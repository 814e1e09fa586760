// Package prompt wraps interactive confirmation behind an interface so
// commands stay testable.
package prompt

import "github.com/charmbracelet/huh"

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Title       string
	Description string
	Default     bool
}

// Prompter asks the user questions. Tests swap the real huh implementation
// for a Mock.
type Prompter interface {
	Confirm(cfg ConfirmConfig) (bool, error)
}

// Default is the package-level prompter used by commands.
var Default Prompter = &Huh{}

// SetDefault replaces the package-level prompter.
func SetDefault(p Prompter) {
	Default = p
}

// Huh implements Prompter using charmbracelet/huh forms.
type Huh struct{}

func (h *Huh) Confirm(cfg ConfirmConfig) (bool, error) {
	value := cfg.Default
	confirm := huh.NewConfirm().
		Title(cfg.Title).
		Value(&value)

	if cfg.Description != "" {
		confirm.Description(cfg.Description)
	}

	err := huh.NewForm(huh.NewGroup(confirm)).Run()
	return value, err
}
