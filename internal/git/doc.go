// Package git extracts the host's git identity so commits made inside the
// persistent container are attributed to the same person.
//
// This package reads user.name and user.email from ~/.gitconfig, following
// include.path directives.
//
// Example usage:
//
//	home, _ := os.UserHomeDir()
//	config, err := git.ExtractUserConfig(home)
//	if err == nil {
//	    for k, v := range config.Env() {
//	        env[k] = v
//	    }
//	}
package git
