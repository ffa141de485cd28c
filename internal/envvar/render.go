package envvar

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// Format is an output syntax for Render.
type Format string

// Supported formats.
const (
	FormatShell      Format = "shell"
	FormatDotenv     Format = "dotenv"
	FormatPowerShell Format = "powershell"
	FormatCmd        Format = "cmd"
)

// Formats lists the accepted Format values.
var Formats = []Format{FormatShell, FormatDotenv, FormatPowerShell, FormatCmd}

// Render prints vars as assignments in the given syntax, one per line.
func Render(vars []Var, format Format) (string, error) {
	var b strings.Builder
	switch format {
	case FormatShell:
		for _, v := range vars {
			fmt.Fprintf(&b, "export %s=%s\n", v.Name, shellQuote(v.Value))
		}
	case FormatDotenv:
		env := make(map[string]string, len(vars))
		for _, v := range vars {
			env[v.Name] = v.Value
		}
		out, err := godotenv.Marshal(env)
		if err != nil {
			return "", fmt.Errorf("render dotenv: %w", err)
		}
		b.WriteString(out)
		b.WriteString("\n")
	case FormatPowerShell:
		for _, v := range vars {
			fmt.Fprintf(&b, "$env:%s = '%s'\n", v.Name, strings.ReplaceAll(v.Value, "'", "''"))
		}
	case FormatCmd:
		// Batch file syntax: % is doubled so values survive expansion.
		for _, v := range vars {
			fmt.Fprintf(&b, "set \"%s=%s\"\n", v.Name, strings.ReplaceAll(v.Value, "%", "%%"))
		}
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
	return b.String(), nil
}
