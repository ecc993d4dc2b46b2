package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"ironseal/internal/auditlog"
	"ironseal/internal/rotationconfig"
	"ironseal/internal/sealcore"
)

// resolvePassword returns the password to seal/unseal with. It prefers an
// explicit --password/IRONSEAL_PASSWORD value; if neither is set and stdin
// is a terminal, it prompts interactively without echoing the input.
func resolvePassword(explicit string) ([]byte, error) {
	if explicit != "" {
		return []byte(explicit), nil
	}
	if v := viper.GetString("password"); v != "" {
		return []byte(v), nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no password supplied: set --password, IRONSEAL_PASSWORD, or run interactively")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return pw, nil
}

// loadRotationTable loads the configured rotation table, or returns nil if
// none was configured (callers then fall back to an explicit password).
func loadRotationTable() (sealcore.PasswordTable, error) {
	path := viper.GetString("rotation-table")
	if path == "" {
		return nil, nil
	}
	return rotationconfig.Load(path)
}

// openAuditLog opens the configured audit log, or returns (nil, nil, nil)
// if auditing is disabled.
func openAuditLog() (*auditlog.Log, *os.File, error) {
	path := viper.GetString("audit-log")
	if path == "" {
		return nil, nil, nil
	}
	return auditlog.Open(path)
}
