package assistant

import "strings"

// ParseInput splits line on whitespace. The first field is the command, lower-cased;
// the rest are its arguments. An empty or blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
