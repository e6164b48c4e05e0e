package infrastructure

import "strings"

// shellSpecial lists the characters that force quoting when a command line
// is rendered for log output.
const shellSpecial = " \t\n\r'\"$`\\!*?[](){}|;<>&~#%"

// shellQuote quotes a single argument for display in a shell command line.
// Display only; exec.Command passes arguments directly to the process.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, shellSpecial) {
		return s
	}
	// Single-quote the whole argument; embedded single quotes close the
	// quote, emit a double-quoted quote, and reopen.
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// commandLine renders a binary and its arguments as a copy-pasteable
// command line for logging.
func commandLine(binary string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellQuote(binary))
	for _, arg := range args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}
