// Package uxnasm provides helpers to reassemble generated listings using the uxnasm assembler.
package uxnasm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// AssemblerName is the name of the external assembler executable.
const AssemblerName = "uxnasm"

// AssembleUsingExternalApp calls the external assembler to generate a .rom
// file from the given Uxntal file.
func AssembleUsingExternalApp(ctx context.Context, talFile, outputFile string) error {
	if _, err := exec.LookPath(AssemblerName); err != nil {
		return fmt.Errorf("%s is not installed", AssemblerName)
	}

	cmd := exec.CommandContext(ctx, AssemblerName, talFile, outputFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembling file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	return nil
}
