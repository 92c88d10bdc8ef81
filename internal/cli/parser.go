package cli

import (
	"fmt"
	"strings"
)

// Args represents parsed command-line arguments.
type Args struct {
	// Debug enables diagnostic logging (--debug, -v, --verbose).
	Debug bool

	// Container overrides the configured container name.
	Container string
	// ConfigPath overrides the config file location.
	ConfigPath string

	// ToolArgs are forwarded verbatim to the tool inside the container.
	ToolArgs []string
}

var debugFlags = map[string]bool{
	"--debug":   true,
	"-v":        true,
	"--verbose": true,
}

// Parse splits launcher flags from tool arguments. args excludes the
// program name. Launcher flags may appear anywhere before a "--"; every
// argument after "--" is forwarded untouched.
func Parse(args []string) (*Args, error) {
	parsed := &Args{
		ToolArgs: []string{},
	}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--":
			parsed.ToolArgs = append(parsed.ToolArgs, args[i+1:]...)
			return parsed, nil

		case debugFlags[arg]:
			parsed.Debug = true
			i++

		case arg == "--container" || arg == "--config":
			if i+1 >= len(args) || args[i+1] == "" {
				return nil, fmt.Errorf("%s requires an argument", arg)
			}
			parsed.set(arg, args[i+1])
			i += 2

		case strings.HasPrefix(arg, "--container=") || strings.HasPrefix(arg, "--config="):
			name, value, _ := strings.Cut(arg, "=")
			if value == "" {
				return nil, fmt.Errorf("%s requires an argument", name)
			}
			parsed.set(name, value)
			i++

		default:
			parsed.ToolArgs = append(parsed.ToolArgs, arg)
			i++
		}
	}

	return parsed, nil
}

// FirstOperand returns the first argument that is neither a launcher flag
// nor a launcher flag's value. ok is false when there is none or when "--"
// comes first.
func FirstOperand(args []string) (word string, ok bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return "", false
		case debugFlags[arg]:
		case arg == "--container" || arg == "--config":
			i++
		case strings.HasPrefix(arg, "--container=") || strings.HasPrefix(arg, "--config="):
		default:
			return arg, true
		}
	}
	return "", false
}

func (a *Args) set(flag, value string) {
	switch flag {
	case "--container":
		a.Container = value
	case "--config":
		a.ConfigPath = value
	}
}
