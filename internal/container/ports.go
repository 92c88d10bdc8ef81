package container

import (
	"fmt"
	"strconv"
	"strings"
)

// PortMapping represents a port mapping.
type PortMapping struct {
	Host      int
	Container int
}

// ParsePortMapping parses a port mapping string like "3000:3000" or "3000".
func ParsePortMapping(s string) (PortMapping, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return PortMapping{}, fmt.Errorf("invalid port mapping format: %s", s)
		}

		host, err := parsePort(parts[0])
		if err != nil {
			return PortMapping{}, fmt.Errorf("invalid host port: %s", parts[0])
		}

		container, err := parsePort(parts[1])
		if err != nil {
			return PortMapping{}, fmt.Errorf("invalid container port: %s", parts[1])
		}

		return PortMapping{Host: host, Container: container}, nil
	}

	// Single port - use same for host and container
	port, err := parsePort(s)
	if err != nil {
		return PortMapping{}, fmt.Errorf("invalid port: %s", s)
	}

	return PortMapping{Host: port, Container: port}, nil
}

// ParsePortMappings parses a list of port mapping strings.
func ParsePortMappings(specs []string) ([]PortMapping, error) {
	mappings := make([]PortMapping, 0, len(specs))
	for _, spec := range specs {
		pm, err := ParsePortMapping(spec)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, pm)
	}
	return mappings, nil
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range", port)
	}
	return port, nil
}
