package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	for _, ed := range []string{configEditor, os.Getenv("EDITOR"), os.Getenv("VISUAL")} {
		if ed != "" {
			return ed
		}
	}
	return "vi"
}

// Edit opens initial in editorCmd and returns the saved text. label becomes
// part of the temp file name so the editor shows which day is open.
// changed is false when the file comes back unchanged or blank.
func Edit(editorCmd, label, initial string) (text string, changed bool, err error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return "", false, fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "diarycal-"+label+"-*.md")
	if err != nil {
		return "", false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("writing temp file: %w", err)
	}
	tmp.Close()

	cmd := exec.Command(parts[0], append(parts[1:], tmpName)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}

	// Editors usually append a trailing newline; it is not part of the entry.
	result := strings.TrimRight(string(data), "\n")
	if strings.TrimSpace(result) == "" || result == strings.TrimRight(initial, "\n") {
		return initial, false, nil
	}
	return result, true, nil
}
