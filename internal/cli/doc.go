// Package cli separates launcher flags from the arguments forwarded to the
// tool running inside the container.
//
// Launcher flags:
//   - --debug, -v, --verbose: diagnostic logging
//   - --container NAME: use a different persistent container
//   - --config PATH: read configuration from PATH
//
// Everything else, and everything after a literal "--", is forwarded in
// order:
//
//	args, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// args.ToolArgs goes to the tool unchanged.
package cli
