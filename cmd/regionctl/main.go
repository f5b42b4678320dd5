package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/EmpoweredVote/insightforge/internal/config"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/politicians"
	"github.com/EmpoweredVote/insightforge/internal/regions"
	"github.com/EmpoweredVote/insightforge/internal/search"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "regionctl",
		Short: "Inspect the regional statistics documents offline",
		Long: `regionctl reads the same data directory as the API server and runs
the aggregation, neighborhood resolution, roster matching and search
without starting the server.

Configuration is read like the server does (.env.local, CONFIG_PATH,
DATA_DIR); --data overrides the data directory.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("data", "", "data directory (default from config)")
	root.PersistentFlags().Bool("json", false, "print JSON instead of tables")

	root.AddCommand(aggregateCmd())
	root.AddCommand(emdongCmd())
	root.AddCommand(timeseriesCmd())
	root.AddCommand(rosterCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(yearsCmd())
	return root
}

// env holds what every subcommand needs.
type env struct {
	cfg   config.Config
	store *docstore.Store
	json  bool
	out   io.Writer
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("data"); dir != "" {
		cfg.DataDir = dir
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	return &env{
		cfg:   cfg,
		store: docstore.New(cfg.DataDir, cfg.Documents),
		json:  asJSON,
		out:   cmd.OutOrStdout(),
	}, nil
}

func (e *env) printJSON(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func aggregateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate",
		Short: "Run the province and district aggregation and print the province totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			agg, err := regions.NewAggregator(e.store).Aggregate()
			if err != nil {
				return fmt.Errorf("aggregate: %w", err)
			}
			if e.json {
				return e.printJSON(map[string]any{
					"run_id":       agg.RunID,
					"generated_at": agg.GeneratedAt,
					"sido":         agg.SidoList(),
					"sigungu":      agg.Sigungu,
				})
			}

			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tSIGUNGU\tPOPULATION\tHOUSEHOLD\tCOMPANY")
			for _, s := range agg.SidoList() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n",
					s.Code, s.Name, s.SigunguCount, s.TotalPopulation, s.TotalHousehold, s.TotalCompany)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "\n%d sigungu rollups, run %s\n", len(agg.Sigungu), agg.RunID)
			return nil
		},
	}
}

func emdongCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emdong <code>",
		Short: "Resolve one neighborhood for a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			year, _ := cmd.Flags().GetString("year")
			n, err := regions.NewResolver(e.store, e.cfg.DefaultYear, e.cfg.LatestYear).Neighborhood(args[0], year)
			if err != nil {
				return err
			}
			if e.json {
				return e.printJSON(n)
			}
			fmt.Fprintf(e.out, "%s %s (%s, %s)\n", n.Code, n.FullAddress, n.Year, n.Source)
			fmt.Fprintf(e.out, "  population %d, households %d, corrected %v\n",
				n.Household.Int("family_member_cnt"), n.Household.Int("household_cnt"), n.PopulationCorrected)
			return nil
		},
	}
	cmd.Flags().String("year", "", "snapshot year (default from config)")
	return cmd
}

func timeseriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeseries <code>",
		Short: "List the yearly snapshots of a neighborhood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			r := regions.NewResolver(e.store, e.cfg.DefaultYear, e.cfg.LatestYear)
			enhanced, _ := cmd.Flags().GetBool("enhanced")

			var ts *regions.Timeseries
			if enhanced {
				ts, err = r.Enhanced(args[0])
			} else {
				ts, err = r.Timeseries(args[0])
			}
			if err != nil {
				return err
			}
			if e.json {
				return e.printJSON(ts)
			}
			fmt.Fprintf(e.out, "%s: %v\n", ts.Code, ts.Years)
			return nil
		},
	}
	cmd.Flags().Bool("enhanced", false, "use the age-bracket statistics")
	return cmd
}

func rosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster <code>",
		Short: "Show the office holders of a neighborhood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			m := politicians.NewMatcher(e.store, e.cfg.SupportedSidoCode, e.cfg.SupportedSidoPrefix)
			roster, err := m.RosterFor(args[0])
			if err != nil {
				return err
			}
			if e.json {
				return e.printJSON(roster)
			}

			fmt.Fprintf(e.out, "%s %s %s\n", roster.EmdongCode, roster.SigunguName, roster.EmdongName)
			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PRIORITY\tTYPE\tNAME\tPARTY\tDISTRICT")
			for _, p := range roster.Politicians {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.Priority, p.Type, p.Name, p.Party, p.District)
			}
			return tw.Flush()
		},
	}
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search region and representative names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			typeFilter, _ := cmd.Flags().GetString("type")
			res, err := search.NewSearcher(e.store).Search(args[0], typeFilter)
			if err != nil {
				return err
			}
			if e.json {
				return e.printJSON(res)
			}
			for _, r := range res.Regions {
				fmt.Fprintf(e.out, "region    %s  %s\n", r.ID, r.Name)
			}
			for _, m := range res.AssemblyMembers {
				fmt.Fprintf(e.out, "assembly  %s  %s\n", m.Str("name"), m.Str("district"))
			}
			for _, p := range res.LocalPoliticians {
				fmt.Fprintf(e.out, "local     %s  %s  %s\n", p.Name, p.Type, p.District)
			}
			return nil
		},
	}
	cmd.Flags().String("type", "", "restrict to region, assembly or local")
	return cmd
}

func yearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the years covered by the multi-year statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			y, err := regions.NewResolver(e.store, e.cfg.DefaultYear, e.cfg.LatestYear).Years()
			if err != nil {
				return err
			}
			if e.json {
				return e.printJSON(y)
			}
			for _, year := range y.Years {
				fmt.Fprintln(e.out, year)
			}
			return nil
		},
	}
}
