package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/fielddef"
	"github.com/reoring/feedform/rules"
)

func (a *app) validateCmd() *cobra.Command {
	var values string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check stored values against the enabled fields of a section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			section, _, _, err := a.loadSection()
			if err != nil {
				return err
			}
			snap, err := fielddef.LoadSnapshot(values, a.scope())
			if err != nil {
				return err
			}
			err = rules.Validate(section, snap)
			if err == nil {
				_, werr := fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return werr
			}
			iss, ok := feedform.AsIssues(err)
			if !ok {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), issuesOutput(iss)); err != nil {
				return err
			}
			return &ExitError{Code: ExitInvalid}
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "stored values (YAML or JSON)")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}
