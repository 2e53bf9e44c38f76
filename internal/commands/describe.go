package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	feedform "github.com/reoring/feedform"
)

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the form descriptor of a section as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			section, _, label, err := a.loadSection()
			if err != nil {
				return err
			}
			d, err := section.UIMeta(label)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), d)
		},
	}
}

func (a *app) switcherCmd() *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "switcher",
		Short: "Print the switcher configuration compiled for a field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			section, _, _, err := a.loadSection()
			if err != nil {
				return err
			}
			f, ok := section.Field(field)
			if !ok {
				return feedform.Issues{feedform.IssueAt(feedform.Root(), feedform.CodeUnknownField, map[string]any{"field": field})}
			}
			sw, ok, err := f.SwitcherConfig()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("field %q has no dependencies", field)
			}
			return writeJSON(cmd.OutOrStdout(), sw)
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "name of the field")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}
