package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ironseal/internal/rotationconfig"
)

var validateRotationFile string

var rotationCmd = &cobra.Command{
	Use:   "rotation-table",
	Short: "Inspect and validate password-rotation table files",
}

var rotationValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse a rotation table file and report its entries",
	RunE:  runRotationValidate,
}

func init() {
	rotationValidateCmd.Flags().StringVar(&validateRotationFile, "file", "", "path to the rotation table file (required)")
	rotationValidateCmd.MarkFlagRequired("file")
	rotationCmd.AddCommand(rotationValidateCmd)
	rootCmd.AddCommand(rotationCmd)
}

func runRotationValidate(cmd *cobra.Command, args []string) error {
	table, err := rotationconfig.Load(validateRotationFile)
	if err != nil {
		return err
	}
	id, _, err := rotationconfig.Current(table)
	if err != nil {
		return err
	}
	fmt.Printf("%d entries, current id %q\n", len(table), id)
	for _, entry := range table {
		fmt.Printf("  id=%q\n", entry.ID)
	}
	return nil
}
