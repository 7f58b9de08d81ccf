package main

import (
	"net/url"
	"strconv"

	"shelter-outcomes/internal/domain/outcomes"
	"shelter-outcomes/internal/platform/config"

	"github.com/spf13/cobra"
)

func newViewsCmd(opts *globalOptions, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List built-in and custom views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.loadService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), svc.Views())
		},
	}
}

func newMetaCmd(opts *globalOptions, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "meta",
		Short: "Print dataset bounds, filter options and page defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.loadService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), svc.Meta())
		},
	}
}

// filterFlags refleja los parámetros de /views/{view}; se traducen a url.Values
// para reutilizar outcomes.ParseParams.
type filterFlags struct {
	startDate, endDate   string
	ageMin, ageMax       int
	sexes, breeds, cols  []string
	outcomeType          string
	cfaBreed             string
	weekday, month, year string
	period               string
	bins                 int
	kpis                 []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.startDate, "start-date", "", "start date (YYYY-MM-DD)")
	fl.StringVar(&f.endDate, "end-date", "", "end date (YYYY-MM-DD)")
	fl.IntVar(&f.ageMin, "age-min", -1, "minimum age in months")
	fl.IntVar(&f.ageMax, "age-max", -1, "maximum age in months")
	fl.StringArrayVar(&f.sexes, "sex", nil, "sex upon outcome (repeatable)")
	fl.StringArrayVar(&f.breeds, "breed", nil, "breed (repeatable)")
	fl.StringArrayVar(&f.cols, "color", nil, "color (repeatable)")
	fl.StringVar(&f.outcomeType, "outcome-type", "", "outcome type")
	fl.StringVar(&f.cfaBreed, "cfa-breed", "", "restrict to CFA breeds (true/false)")
	fl.StringVar(&f.weekday, "weekday", "", "weekday filter for the hour histogram")
	fl.StringVar(&f.month, "month", "", "month filter for the weekday histogram")
	fl.StringVar(&f.year, "year", "", "year filter for the month histogram")
	fl.StringVar(&f.period, "period", "", "date, month_year or year")
	fl.IntVar(&f.bins, "bins", 0, "number of age groups (5 to 100)")
	fl.StringArrayVar(&f.kpis, "kpi", nil, "KPI outcome types (up to 3)")
}

func (f *filterFlags) values(cmd *cobra.Command) url.Values {
	q := url.Values{}
	set := func(flag, key, v string) {
		if cmd.Flags().Changed(flag) {
			q.Set(key, v)
		}
	}
	set("start-date", "start_date", f.startDate)
	set("end-date", "end_date", f.endDate)
	set("age-min", "age_min", strconv.Itoa(f.ageMin))
	set("age-max", "age_max", strconv.Itoa(f.ageMax))
	set("outcome-type", "outcome_type", f.outcomeType)
	set("cfa-breed", "cfa_breed", f.cfaBreed)
	set("weekday", "weekday", f.weekday)
	set("month", "month", f.month)
	set("year", "year", f.year)
	set("period", "period", f.period)
	set("bins", "bins", strconv.Itoa(f.bins))
	q["sex"] = f.sexes
	q["breed"] = f.breeds
	q["color"] = f.cols
	q["kpi"] = f.kpis
	return q
}

func newViewCmd(opts *globalOptions, cfg config.Config) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "view <name>",
		Short: "Compute one named view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			p, err := outcomes.ParseParams(ff.values(cmd), svc.Dataset())
			if err != nil {
				return err
			}
			res, err := svc.Compute(cmd.Context(), outcomes.ViewName(args[0]), p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	ff.register(cmd)
	return cmd
}

func newPageCmd(opts *globalOptions, cfg config.Config) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "page <name>",
		Short: "Compute every view of a page (overview, subtypes, distributions, age, breed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			p, err := outcomes.ParseParams(ff.values(cmd), svc.Dataset())
			if err != nil {
				return err
			}
			res, err := svc.ComputePage(cmd.Context(), outcomes.PageName(args[0]), p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	ff.register(cmd)
	return cmd
}
