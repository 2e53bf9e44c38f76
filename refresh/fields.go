package refresh

import (
	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/dsl"
	"github.com/reoring/feedform/handler"
)

// Field keys of the refresh policy. They govern when the feed is refreshed,
// not what it contains.
const (
	KeyForceProductLoadForRefresh      = "force_product_load_for_refresh"
	KeyAutomaticRefreshState           = "automatic_refresh_state"
	KeyAutomaticRefreshDelay           = "automatic_refresh_delay"
	KeyEnableAdvisedRefreshRequirement = "enable_advised_refresh_requirement"
	KeyAdvisedRefreshRequirementDelay  = "advised_refresh_requirement_delay"
)

// PolicyFieldNames lists the fields excluded from refresh decisions.
func PolicyFieldNames() []string {
	return []string{
		KeyForceProductLoadForRefresh,
		KeyAutomaticRefreshState,
		KeyAutomaticRefreshDelay,
		KeyEnableAdvisedRefreshRequirement,
		KeyAdvisedRefreshRequirementDelay,
	}
}

// BaseFields declares the refresh policy fields shared by every refreshable
// section.
//
// Sort orders stay small: the form runtime probes every index up to the
// highest one.
func BaseFields() []*feedform.Field {
	return []*feedform.Field{
		dsl.Checkbox(KeyForceProductLoadForRefresh).
			Label("Force Full Loading of Products for Refresh").
			CheckedNotice("Products will be loaded individually, with all their data.\n" +
				"This method is (much) slower, and should therefore only be used if the other is insufficient.").
			UncheckedNotice("Products will be loaded in batch, with only the necessary data.\n" +
				"This method is (much) faster, but in some rare cases insufficient to fetch specific data.").
			SortOrder(100010).
			MustBuild(),

		dsl.Select(KeyAutomaticRefreshState).
			Handler(handler.NewOption("number", true,
				handler.Choice{Value: "", Label: "No"},
				handler.Choice{Value: StateAdvised.FormValue(), Label: "Advised"},
				handler.Choice{Value: StateRequired.FormValue(), Label: "Required"},
			)).
			Default("").
			Label("Force Automatic Refresh").
			Notice("Indicates whether to refresh the section data on a regular basis:\n"+
				"- \"No\": data will only be refreshed when updates are detected.\n"+
				"- \"Advised\" / \"Required\": data will also be refreshed after a specific amount of time.\n"+
				"- \"Required\": takes priority over \"Advised\" refresh, and is enforced before any generation of the feed.").
			Dependency(
				[]string{StateAdvised.FormValue(), StateRequired.FormValue()},
				KeyAutomaticRefreshDelay,
			).
			SortOrder(100020).
			MustBuild(),

		dsl.TextBox(KeyAutomaticRefreshDelay).
			Handler(handler.NewPositiveInteger()).
			Required().
			Label("Force Automatic Refresh After").
			Notice("In minutes.").
			SortOrder(100030).
			MustBuild(),

		dsl.Checkbox(KeyEnableAdvisedRefreshRequirement).
			Label("Require Advised Refresh").
			CheckedDependents(KeyAdvisedRefreshRequirementDelay).
			SortOrder(100040).
			MustBuild(),

		dsl.TextBox(KeyAdvisedRefreshRequirementDelay).
			Handler(handler.NewPositiveInteger()).
			Required().
			Label("Require Advised Refresh After").
			Notice("In minutes.").
			SortOrder(100050).
			MustBuild(),
	}
}
