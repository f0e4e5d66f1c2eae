package parser

import (
	"strings"

	"smallsh/internal/execute"
	"smallsh/internal/expand"
)

// maxArgs bounds one command, terminator slot included; scanning stops
// silently once maxArgs-1 arguments have been collected. A documented
// limitation, not an error.
const maxArgs = 512

// Parse turns one raw line into a command, or nil when the line should be
// skipped: blank, comment, or nothing but operators. Tokens are split on
// whitespace only; there is no quoting.
//
// "<" and ">" consume the following token as a redirection path, left
// unexpanded. "&" marks background execution only as the final token;
// anywhere else it is an ordinary argument. All other tokens become
// arguments after PID expansion.
func Parse(line string, pid int) *exec.Command {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
		return nil
	}

	var cmd exec.Command
	for i := 0; i < len(tokens) && len(cmd.Args) < maxArgs-1; i++ {
		switch tok := tokens[i]; {
		case tok == "<":
			if i+1 < len(tokens) {
				i++
				cmd.InFile = tokens[i]
			}
		case tok == ">":
			if i+1 < len(tokens) {
				i++
				cmd.OutFile = tokens[i]
			}
		case tok == "&" && i == len(tokens)-1:
			cmd.Background = true
		default:
			cmd.Args = append(cmd.Args, expand.PID(tok, pid))
		}
	}

	if len(cmd.Args) == 0 {
		return nil
	}
	return &cmd
}
