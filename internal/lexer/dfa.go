package lexer

import (
	"bytes"
	"fmt"

	"github.com/nihei9/maleeni/compiler"
	"github.com/nihei9/maleeni/driver"
	"github.com/nihei9/maleeni/spec"
)

// Pattern names one DFA entry of the accelerated word-phase lexer and the
// Role the post-processing engine should treat its matches as.
type Pattern struct {
	Name  string
	Regex string
	Role  Role
}

// DFA is a compiled accelerated lexer for one encoding's word-phase
// pattern set, built once per Tokenizer and reused across Encode calls.
type DFA struct {
	compiled *spec.CompiledLexSpec
	roleByID map[int]Role
}

// Compile builds a maleeni DFA from a list of ordered patterns. Earlier
// patterns take priority over later ones at the same match length, which
// is how the contraction/punctuation/word/whitespace priority order of
// spec §4.1's reference regex is preserved in the DFA form.
func Compile(patterns []Pattern) (*DFA, error) {
	entries := make([]*spec.LexEntry, 0, len(patterns))
	roleByID := make(map[int]Role, len(patterns))
	for i, p := range patterns {
		entries = append(entries, spec.NewLexEntry(p.Name, p.Regex))
		// maleeni assigns kind IDs in entry order, starting at 1 (0 is
		// reserved for the implicit default kind).
		roleByID[i+1] = p.Role
	}
	compiled, err := compiler.Compile(&spec.LexSpec{Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("lexer: compile DFA: %w", err)
	}
	return &DFA{compiled: compiled, roleByID: roleByID}, nil
}

// Lex runs the compiled DFA over segment and returns a role-tagged token
// stream, with unmatched bytes reported as RoleGap runs.
func (d *DFA) Lex(segment string) ([]Token, error) {
	lex, err := driver.NewLexer(d.compiled, bytes.NewReader([]byte(segment)))
	if err != nil {
		return nil, fmt.Errorf("lexer: new driver: %w", err)
	}

	var out []Token
	pos := 0
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, fmt.Errorf("lexer: next: %w", err)
		}
		if tok.EOF {
			break
		}
		n := len(tok.Match)
		if tok.Invalid || n == 0 {
			// No entry matched at this position; maleeni advances by one
			// byte on an invalid token, which becomes a one-byte gap run.
			// Run() emits it as its own Gap span.
			out = append(out, Token{Start: pos, End: pos + max(n, 1), Role: RoleGap})
			pos += max(n, 1)
			continue
		}
		role, ok := d.roleByID[tok.ID]
		if !ok {
			return nil, fmt.Errorf("lexer: unknown kind id %d", tok.ID)
		}
		out = append(out, Token{Start: pos, End: pos + n, Role: role})
		pos += n
	}
	return out, nil
}
