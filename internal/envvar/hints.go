package envvar

// VerificationHints returns commands a user can run to check the variables
// in a shell, for the given mode and platform. keyEnv names the API key
// variable and defaults to DefaultKeyVar.
func VerificationHints(mode Mode, goos, keyEnv string) []string {
	if keyEnv == "" {
		keyEnv = DefaultKeyVar
	}
	if goos == "windows" {
		if mode == ModePerm {
			return []string{
				"In a new CMD window:",
				"  echo %" + BaseURLVar + "%",
				"  echo %" + keyEnv + "%",
			}
		}
		return []string{
			"In this window (variables only exist in child processes of claude-run):",
			"  claude-run env --format cmd",
		}
	}

	if mode == ModePerm {
		return []string{
			"In a new terminal, or after reloading your profile:",
			"  echo $" + BaseURLVar,
			"  echo ${" + keyEnv + ":+set}",
		}
	}
	return []string{
		"Variables only live in processes started by claude-run. To load them into this shell:",
		`  eval "$(claude-run env)"`,
		"  echo $" + BaseURLVar,
	}
}
