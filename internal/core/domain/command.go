package domain

import "strings"

// Command is a structured child-process invocation. Commands are always
// built as argument vectors, never as interpolated shell strings, so paths
// with spaces survive intact.
type Command struct {
	// Args is the argument vector; Args[0] is the executable.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds extra KEY=VALUE assignments appended to the parent
	// environment of the child. The parent process environment is never
	// mutated.
	Env []string

	// Echo prints the command line before execution.
	Echo bool
}

// String renders the command line for diagnostics.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}
