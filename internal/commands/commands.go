package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

const prefix = "cmd "

// Builder defines a command's flags on fs and returns the function to run once fs is parsed.
// The run function reads flag state and fs.Args().
type Builder func(fs *pflag.FlagSet) (run func() error)

// Command is a subcommand. Its FlagSet is rebuilt on every execution so flag values never leak
// from one invocation to the next.
type Command struct {
	Name  string
	Usage string
	Build Builder
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "height").
func (r *Registry) Register(name, usage string, build Builder) {
	r.cmds[name] = &Command{Name: name, Usage: usage, Build: build}
}

// Names returns the registered subcommands, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Usage returns the one-line usage of name.
func (r *Registry) Usage(name string) string {
	if c, ok := r.cmds[name]; ok {
		return c.Usage
	}
	return ""
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.Build(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run()
}
