package prompt

// Mock is a scripted Prompter for tests. It records every call so tests
// can assert on the prompts shown.
type Mock struct {
	ConfirmResponse bool
	ConfirmErr      error
	ConfirmCalls    []ConfirmConfig
}

var _ Prompter = (*Mock)(nil)

func (m *Mock) Confirm(cfg ConfirmConfig) (bool, error) {
	m.ConfirmCalls = append(m.ConfirmCalls, cfg)
	return m.ConfirmResponse, m.ConfirmErr
}
