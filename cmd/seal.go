package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ironseal/internal/auditlog"
	"ironseal/internal/sealcore"
)

var (
	sealPwdID    string
	sealPassword string
	sealInFile   string
	sealOutFile  string
)

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Seal a payload into a Fe26.1 token",
	RunE:  runSeal,
}

func init() {
	sealCmd.Flags().StringVar(&sealPwdID, "password-id", "", "password id to embed in the token (optional)")
	sealCmd.Flags().StringVar(&sealPassword, "password", "", "password to seal with (falls back to IRONSEAL_PASSWORD, then a prompt)")
	sealCmd.Flags().StringVar(&sealInFile, "in", "-", "input file (- for stdin)")
	sealCmd.Flags().StringVar(&sealOutFile, "out", "-", "output file (- for stdout)")
	rootCmd.AddCommand(sealCmd)
}

func runSeal(cmd *cobra.Command, args []string) error {
	payload, err := readInput(sealInFile)
	if err != nil {
		return err
	}

	password, err := resolvePassword(sealPassword)
	if err != nil {
		return err
	}

	audit, auditFileHandle, err := openAuditLog()
	if err != nil {
		return err
	}
	if auditFileHandle != nil {
		defer auditFileHandle.Close()
	}

	ctx := buildContext()
	token, err := sealcore.Seal(ctx, payload, []byte(sealPwdID), password)
	recordAudit(audit, auditlog.EventSeal, err, sealPwdID)
	if err != nil {
		return fmt.Errorf("seal: %w", err)
	}
	slog.Debug("sealed token", "bytes", len(token), "password_id", sealPwdID)

	return writeOutput(sealOutFile, token)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func recordAudit(audit *auditlog.Log, event auditlog.EventType, opErr error, pwdID string) {
	if audit == nil {
		return
	}
	outcome := auditlog.OutcomeSuccess
	errKind := ""
	detail := ""
	if opErr != nil {
		outcome = auditlog.OutcomeFailure
		detail = opErr.Error()
		if se, ok := opErr.(*sealcore.Error); ok {
			errKind = se.Kind.String()
		}
	}
	if err := audit.Record(time.Now(), event, outcome, pwdID, errKind, detail); err != nil {
		slog.Warn("failed to write audit entry", "error", err)
	}
}
