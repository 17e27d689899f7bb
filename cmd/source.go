package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/fredctl/filter"
	"github.com/s0up4200/fredctl/fred"
)

func newSourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "source",
		Aliases: []string{"sources", "src"},
		Short:   "Browse the sources of economic data",
	}

	cmd.AddCommand(newSourceListCmd(), newSourceGetCmd(), newSourceReleasesCmd())
	return cmd
}

func newSourceListCmd() *cobra.Command {
	var (
		rt      realtimeFlags
		pg      pagingFlags
		orderBy string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fred.SourcesParams{Limit: pg.limit, Offset: pg.offset}
			var err error
			if p.RealtimePeriod, err = rt.period(); err != nil {
				return err
			}
			if p.SortOrder, err = pg.sortOrder(); err != nil {
				return err
			}
			if p.OrderBy, err = parseEnum("order-by", orderBy, fred.ParseSourceOrderBy); err != nil {
				return err
			}

			sources, err := client.GetSources(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, sources, filter.SourceEnv, sourceColumns)
		},
	}
	rt.register(cmd)
	pg.register(cmd)
	cmd.Flags().StringVar(&orderBy, "order-by", "", "order by: source_id, name, realtime_start or realtime_end")
	return cmd
}

func newSourceGetCmd() *cobra.Command {
	var rt realtimeFlags
	cmd := &cobra.Command{
		Use:   "get <source-id>",
		Short: "Get a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("source", args[0])
			if err != nil {
				return err
			}
			period, err := rt.period()
			if err != nil {
				return err
			}
			s, err := client.GetSource(cmd.Context(), fred.SourceParams{SourceID: id, RealtimePeriod: period})
			if err != nil {
				return err
			}
			return printOne(cmd, s, sourceColumns)
		},
	}
	rt.register(cmd)
	return cmd
}

func newSourceReleasesCmd() *cobra.Command {
	var (
		rt      realtimeFlags
		pg      pagingFlags
		orderBy string
	)
	cmd := &cobra.Command{
		Use:   "releases <source-id>",
		Short: "List the releases of a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("source", args[0])
			if err != nil {
				return err
			}
			p := fred.SourceReleasesParams{SourceID: id, Limit: pg.limit, Offset: pg.offset}
			if p.RealtimePeriod, err = rt.period(); err != nil {
				return err
			}
			if p.SortOrder, err = pg.sortOrder(); err != nil {
				return err
			}
			if p.OrderBy, err = parseEnum("order-by", orderBy, fred.ParseReleaseOrderBy); err != nil {
				return err
			}

			releases, err := client.GetSourceReleases(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, releases, filter.ReleaseEnv, releaseColumns)
		},
	}
	rt.register(cmd)
	pg.register(cmd)
	cmd.Flags().StringVar(&orderBy, "order-by", "", "order by: release_id, name, press_release, realtime_start or realtime_end")
	return cmd
}
