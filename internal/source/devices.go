// Package source implements the event sources feeding the monitor: the X
// input device reader, the feet/voice log-file tailers, and the call probe.
package source

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/workease/work-ease/internal/util"
)

// FindDeviceIDs resolves the X input device IDs for the configured keyboard
// and mouse names from `xinput` list output. An unresolvable device is a
// fatal startup condition.
func FindDeviceIDs(keyboardName, mouseName string) (string, string, error) {
	if !util.HasCommand("xinput") {
		return "", "", fmt.Errorf("xinput not found in PATH")
	}

	out, err := exec.Command("xinput").Output()
	if err != nil {
		return "", "", fmt.Errorf("listing input devices: %w", err)
	}

	keyboardID, mouseID := parseDeviceIDs(string(out), keyboardName, mouseName)
	if keyboardID == "" {
		return "", "", fmt.Errorf("keyboard device %q not found", keyboardName)
	}
	if mouseID == "" {
		return "", "", fmt.Errorf("mouse device %q not found", mouseName)
	}
	return keyboardID, mouseID, nil
}

// parseDeviceIDs scans xinput list output for the id= token on the lines
// naming the wanted devices.
func parseDeviceIDs(output, keyboardName, mouseName string) (keyboardID, mouseID string) {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, keyboardName) && keyboardID == "" {
			keyboardID = idToken(line)
		}
		if strings.Contains(line, mouseName) && mouseID == "" {
			mouseID = idToken(line)
		}
	}
	return keyboardID, mouseID
}

func idToken(line string) string {
	for _, word := range strings.Fields(line) {
		if strings.HasPrefix(word, "id=") {
			return strings.TrimPrefix(word, "id=")
		}
	}
	return ""
}
