package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/blackwood/internal/cel"
	"github.com/oakwood-commons/blackwood/internal/formatter"
	"github.com/oakwood-commons/blackwood/internal/limiter"
	"github.com/oakwood-commons/blackwood/internal/mansion"
	"github.com/oakwood-commons/blackwood/pkg/logger"
)

type mapOptions struct {
	output      string
	depth       int
	direction   string
	maxName     int
	showBlocked bool
	where       string
	page        limiter.Config
}

func newMapCmd(root *rootOptions) *cobra.Command {
	o := &mapOptions{}
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print the mansion map without playing",
		Example: "\n  blackwood map\n  blackwood map --depth 2 --show-blocked\n" +
			"  blackwood map -o mermaid --direction LR\n  blackwood map -o html > map.html\n" +
			"  blackwood map --where '_.leaf && _.side == \"left\"'\n",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.depth < 0 {
				return fmt.Errorf("invalid depth %d: must be 0 (unlimited) or more", o.depth)
			}
			if err := o.page.Validate(); err != nil {
				return err
			}
			if o.page.IsActive() && o.where == "" {
				return fmt.Errorf("--limit, --offset and --tail require --where")
			}
			house := mansion.Blackwood()
			defer func() {
				released := mansion.Release(house, nil)
				logger.FromContext(cmd.Context()).V(1).Info("mansion released", "rooms", released)
			}()

			if o.where != "" {
				return printMatches(cmd, house, o.where, o.page)
			}
			out, err := formatter.Format(house, formatter.Options{
				Output:       o.output,
				MaxDepth:     o.depth,
				MaxNameWidth: o.maxName,
				ShowBlocked:  o.showBlocked,
				Direction:    o.direction,
				Title:        strings.Trim(root.messages.Title, "- "),
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&o.output, "output", "o", formatter.OutputTree, "output format: tree|mermaid|markdown|html")
	cmd.Flags().IntVar(&o.depth, "depth", 0, "limit map depth below the hall (0 = unlimited)")
	cmd.Flags().StringVar(&o.direction, "direction", "TD", "Mermaid diagram direction: TD, LR, BT, RL")
	cmd.Flags().IntVar(&o.maxName, "max-name", 0, "truncate room names to this display width (0 = no limit)")
	cmd.Flags().BoolVar(&o.showBlocked, "show-blocked", false, "mark the missing exit of rooms with a single exit")
	cmd.Flags().StringVar(&o.where, "where", "",
		"print the path to every room matching a CEL expression over _ (fields: "+strings.Join(cel.Fields(), ", ")+")")
	cmd.Flags().IntVar(&o.page.Limit, "limit", 0, "print only the first N matches of --where (0 = all)")
	cmd.Flags().IntVar(&o.page.Offset, "offset", 0, "skip the first N matches of --where")
	cmd.Flags().IntVar(&o.page.Tail, "tail", 0, "print only the last N matches of --where")
	return cmd
}

// printMatches prints one path per matching room, hall first.
func printMatches(cmd *cobra.Command, house *mansion.Room, expr string, page limiter.Config) error {
	if err := mansion.Validate(house); err != nil {
		return err
	}
	q, err := cel.Compile(expr)
	if err != nil {
		return fmt.Errorf("invalid --where: %w", err)
	}
	found, err := cel.Find(house, q)
	if err != nil {
		return err
	}
	logger.FromContext(cmd.Context()).V(1).Info("query matched", "query", q.String(), "rooms", len(found))
	for _, f := range limiter.Apply(page, found) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(f.Path, " > "))
	}
	return nil
}
