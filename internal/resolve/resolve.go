// Package resolve obtains concrete values for a template's placeholder
// tokens. Resolution is all-or-nothing: if any required token ends up empty
// the whole invocation fails and the command builder is never reached.
package resolve

import (
	"github.com/chazuruo/cmdpal/internal/errors"
	"github.com/chazuruo/cmdpal/internal/placeholders"
)

// Prompter reads one line of input for a placeholder token. Implementations
// live in the tui package; tests use a scripted fake.
type Prompter interface {
	Prompt(tok placeholders.Token) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(tok placeholders.Token) (string, error)

// Prompt implements Prompter.
func (f PrompterFunc) Prompt(tok placeholders.Token) (string, error) {
	return f(tok)
}

// Param is a resolved placeholder value, consumed by the command builder.
type Param struct {
	Name  string
	Value string
}

// Resolve obtains a value for every token, in order. Values present in
// presets (e.g. from --param flags) win over prompting. Empty input falls
// back to the default for defaulted tokens and fails with a
// *errors.MissingValueError for required ones.
func Resolve(tokens []placeholders.Token, prompter Prompter, presets map[string]string) ([]Param, error) {
	params := make([]Param, 0, len(tokens))

	for _, tok := range tokens {
		value, ok := presets[tok.Name]
		if !ok {
			var err error
			value, err = prompter.Prompt(tok)
			if err != nil {
				return nil, errors.Wrap(err, "prompt "+tok.Name)
			}
		}

		if value == "" {
			if !tok.HasDefault {
				return nil, &errors.MissingValueError{Name: tok.Name}
			}
			value = tok.Default
		}

		params = append(params, Param{Name: tok.Name, Value: Normalize(tok.Name, value)})
	}

	return params, nil
}

// Values converts resolved params into the map form the builder consumes.
func Values(params []Param) map[string]string {
	values := make(map[string]string, len(params))
	for _, p := range params {
		values[p.Name] = p.Value
	}
	return values
}
