package main

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/workease/work-ease/internal/config"
	"github.com/workease/work-ease/internal/source"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List X input devices and the IDs resolved from the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := exec.Command("xinput").CombinedOutput()
		if err != nil {
			return fmt.Errorf("listing input devices: %w", err)
		}
		fmt.Print(string(out))

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		keyboardID, mouseID, err := source.FindDeviceIDs(cfg.Devices.Keyboard, cfg.Devices.Mouse)
		if err != nil {
			fmt.Printf("\nconfigured devices not resolved: %v\n", err)
			return nil
		}
		fmt.Printf("\nresolved: keyboard %q -> id=%s, mouse %q -> id=%s\n",
			cfg.Devices.Keyboard, keyboardID, cfg.Devices.Mouse, mouseID)
		return nil
	},
}
