package prompt

// MockPrompter implements Prompter for testing, returning pre-configured responses.
type MockPrompter struct {
	// Responses is a queue of zero-based indexes to return.
	Responses []int
	// Errors is a queue of errors; a non-nil entry is returned instead of
	// the response at the same position.
	Errors []error
	// Calls records all calls made to Prompt.
	Calls []MockPrompterCall

	callIndex int
}

// MockPrompterCall records a single call to Prompt.
type MockPrompterCall struct {
	Prompt     string
	Options    []string
	DefaultIdx int
}

// NewMockPrompter creates a MockPrompter with the given responses.
func NewMockPrompter(responses ...int) *MockPrompter {
	return &MockPrompter{Responses: responses}
}

// Prompt returns the next response, or defaultIdx once responses run out.
func (m *MockPrompter) Prompt(prompt string, options []string, defaultIdx int) (int, error) {
	m.Calls = append(m.Calls, MockPrompterCall{Prompt: prompt, Options: options, DefaultIdx: defaultIdx})
	i := m.callIndex
	m.callIndex++

	if i < len(m.Errors) && m.Errors[i] != nil {
		return 0, m.Errors[i]
	}
	if i < len(m.Responses) {
		return m.Responses[i], nil
	}
	return defaultIdx, nil
}

// MockYesNoPrompter implements YesNoPrompter for testing.
type MockYesNoPrompter struct {
	Responses []bool
	Errors    []error
	Calls     []MockYesNoCall

	callIndex int
}

// MockYesNoCall records a single call to PromptYesNo.
type MockYesNoCall struct {
	Prompt     string
	DefaultYes bool
}

// NewMockYesNoPrompter creates a MockYesNoPrompter with the given responses.
func NewMockYesNoPrompter(responses ...bool) *MockYesNoPrompter {
	return &MockYesNoPrompter{Responses: responses}
}

// PromptYesNo returns the next response, or defaultYes once responses run out.
func (m *MockYesNoPrompter) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	m.Calls = append(m.Calls, MockYesNoCall{Prompt: prompt, DefaultYes: defaultYes})
	i := m.callIndex
	m.callIndex++

	if i < len(m.Errors) && m.Errors[i] != nil {
		return false, m.Errors[i]
	}
	if i < len(m.Responses) {
		return m.Responses[i], nil
	}
	return defaultYes, nil
}

// MockInputPrompter implements InputPrompter for testing. Validation is
// applied to each queued input in turn, the way the stdin version re-prompts.
type MockInputPrompter struct {
	Inputs []string
	Errors []error
	Calls  []string

	callIndex int
}

// NewMockInputPrompter creates a MockInputPrompter with the given inputs.
func NewMockInputPrompter(inputs ...string) *MockInputPrompter {
	return &MockInputPrompter{Inputs: inputs}
}

// PromptInput consumes queued inputs until one validates.
func (m *MockInputPrompter) PromptInput(prompt string, validate func(string) error) (string, error) {
	m.Calls = append(m.Calls, prompt)
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		i := m.callIndex
		m.callIndex++

		if i < len(m.Errors) && m.Errors[i] != nil {
			return "", m.Errors[i]
		}
		input := ""
		if i < len(m.Inputs) {
			input = m.Inputs[i]
		}
		if validate == nil || validate(input) == nil {
			return input, nil
		}
	}
	return "", ErrTooManyAttempts
}

// MockCredentialReader implements CredentialReader for testing.
type MockCredentialReader struct {
	Credentials []string
	Errors      []error
	// Calls records the prompts passed to ReadCredential.
	Calls []string

	callIndex int
}

// NewMockCredentialReader creates a MockCredentialReader with the given credentials.
func NewMockCredentialReader(credentials ...string) *MockCredentialReader {
	return &MockCredentialReader{Credentials: credentials}
}

// ReadCredential returns the next credential, or "" once they run out.
func (m *MockCredentialReader) ReadCredential(prompt string) (string, error) {
	m.Calls = append(m.Calls, prompt)
	i := m.callIndex
	m.callIndex++

	if i < len(m.Errors) && m.Errors[i] != nil {
		return "", m.Errors[i]
	}
	if i < len(m.Credentials) {
		return m.Credentials[i], nil
	}
	return "", nil
}
