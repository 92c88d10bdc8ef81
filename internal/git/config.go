package git

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// maxIncludes bounds include.path chasing so include cycles terminate.
const maxIncludes = 10

// UserConfig represents git user configuration.
type UserConfig struct {
	Name  string
	Email string
}

// ExtractUserConfig reads git user.name and user.email from home/.gitconfig
// and any included config files. A missing .gitconfig yields an empty config.
func ExtractUserConfig(home string) (*UserConfig, error) {
	config := &UserConfig{}

	gitconfig := filepath.Join(home, ".gitconfig")
	if _, err := os.Stat(gitconfig); os.IsNotExist(err) {
		return config, nil
	}

	visited := make(map[string]bool)
	queue := []string{gitconfig}

	for len(queue) > 0 && len(visited) < maxIncludes {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		file, err := os.Open(current)
		if err != nil {
			continue
		}

		section := ""
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
				continue
			}

			if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
				section = strings.ToLower(strings.Trim(line, "[] "))
				continue
			}

			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.Trim(strings.TrimSpace(value), `"`)

			switch {
			case section == "user" && key == "name" && config.Name == "":
				config.Name = value
			case section == "user" && key == "email" && config.Email == "":
				config.Email = value
			case section == "include" && key == "path":
				includePath := value
				if strings.HasPrefix(includePath, "~/") {
					includePath = filepath.Join(home, includePath[2:])
				} else if !filepath.IsAbs(includePath) {
					includePath = filepath.Join(filepath.Dir(current), includePath)
				}
				if _, err := os.Stat(includePath); err == nil {
					queue = append(queue, includePath)
				}
			}
		}
		_ = file.Close()
	}

	return config, nil
}

// Env returns the author and committer variables git reads inside the
// container. Unset fields are omitted.
func (c *UserConfig) Env() map[string]string {
	env := make(map[string]string)
	if c == nil {
		return env
	}
	if c.Name != "" {
		env["GIT_AUTHOR_NAME"] = c.Name
		env["GIT_COMMITTER_NAME"] = c.Name
	}
	if c.Email != "" {
		env["GIT_AUTHOR_EMAIL"] = c.Email
		env["GIT_COMMITTER_EMAIL"] = c.Email
	}
	return env
}
