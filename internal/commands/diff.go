package commands

import (
	"github.com/spf13/cobra"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/fielddef"
	"github.com/reoring/feedform/internal/logging"
	"github.com/reoring/feedform/refresh"
)

type diffOutput struct {
	Scope         string   `json:"scope"`
	RefreshNeeded bool     `json:"refresh_needed"`
	Changed       []string `json:"changed"`
}

func (a *app) diffCmd() *cobra.Command {
	var before, after string
	var exclude []string
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Tell whether moving from one set of values to another requires a refresh",
		Long: `diff compares two value documents of the same scope field by field.
The refresh policy fields are ignored by default. The command exits with
status 3 when a refresh is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.FromContext(logging.WithComponent(cmd.Context(), "diff"))
			section, rc, _, err := a.loadSection()
			if err != nil {
				return err
			}
			scope := a.scope()
			sa, err := fielddef.LoadSnapshot(before, scope)
			if err != nil {
				return err
			}
			sb, err := fielddef.LoadSnapshot(after, scope)
			if err != nil {
				return err
			}

			var changed []feedform.ValuePath
			if rc != nil && !cmd.Flags().Changed("exclude") {
				changed, err = rc.ChangedPaths(scope, sa, sb)
			} else {
				changed, err = refresh.ChangedPaths(section, scope, sa, sb, exclude)
			}
			if err != nil {
				return err
			}

			out := diffOutput{Scope: scope.String(), RefreshNeeded: len(changed) > 0, Changed: make([]string, len(changed))}
			for i, p := range changed {
				out.Changed[i] = p.String()
			}
			log.Info().Bool("refresh_needed", out.RefreshNeeded).Int("changed", len(changed)).Msg("compared values")
			if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if out.RefreshNeeded {
				return &ExitError{Code: ExitRefreshNeeded}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "values before the change (YAML or JSON)")
	cmd.Flags().StringVar(&after, "after", "", "values after the change (YAML or JSON)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", refresh.PolicyFieldNames(), "fields ignored by the comparison")
	_ = cmd.MarkFlagRequired("before")
	_ = cmd.MarkFlagRequired("after")
	return cmd
}
