package cmd

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ironseal/internal/auditlog"
	"ironseal/internal/sealcore"
)

var (
	unsealPassword string
	unsealInFile   string
	unsealOutFile  string
)

var unsealCmd = &cobra.Command{
	Use:   "unseal",
	Short: "Unseal a Fe26.1 token back into its payload",
	RunE:  runUnseal,
}

func init() {
	unsealCmd.Flags().StringVar(&unsealPassword, "password", "", "fallback password (falls back to IRONSEAL_PASSWORD, then a prompt)")
	unsealCmd.Flags().StringVar(&unsealInFile, "in", "-", "input file (- for stdin)")
	unsealCmd.Flags().StringVar(&unsealOutFile, "out", "-", "output file (- for stdout)")
	rootCmd.AddCommand(unsealCmd)
}

func runUnseal(cmd *cobra.Command, args []string) error {
	token, err := readInput(unsealInFile)
	if err != nil {
		return err
	}

	table, err := loadRotationTable()
	if err != nil {
		return err
	}

	fallback, err := resolvePassword(unsealPassword)
	if err != nil && len(table) == 0 {
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
	plaintext, sealErr := sealcore.Unseal(ctx, token, table, fallback)
	recordAudit(audit, auditlog.EventUnseal, sealErr, tokenPasswordID(token))
	if sealErr != nil {
		return fmt.Errorf("unseal: %w", sealErr)
	}
	slog.Debug("unsealed token", "bytes", len(plaintext))

	return writeOutput(unsealOutFile, plaintext)
}

// tokenPasswordID pulls the pwd_id field out of a token for audit logging,
// without relying on Unseal's parser output: it must still recover the id
// when Unseal fails (on a bad MAC or password) after having parsed it fine.
// Fe26.1 * pwd_id * enc_salt * iv * ct * int_salt * mac
func tokenPasswordID(token []byte) string {
	parts := bytes.SplitN(token, []byte{sealcore.Delim}, 3)
	if len(parts) < 2 {
		return ""
	}
	return string(parts[1])
}
