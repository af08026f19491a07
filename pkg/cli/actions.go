package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/gameops-lab/rconhub/pkg/service/catalog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdActions() *cli.Command {
	var surfaceArg string

	return &cli.Command{
		Name:    "actions",
		Aliases: []string{"a"},
		Usage:   "Print the builtin action catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "surface",
				Usage:       "Limit output to one surface (profile or roster)",
				Destination: &surfaceArg,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			surfaces := types.AllSurfaces()
			if surfaceArg != "" {
				surface, err := types.ParseSurface(surfaceArg)
				if err != nil {
					return goerr.Wrap(err, "invalid surface")
				}
				surfaces = []types.Surface{surface}
			}

			cat := catalog.New()
			header := color.New(color.FgCyan, color.Bold)
			name := color.New(color.FgWhite, color.Bold)
			deprecated := color.New(color.FgYellow)
			perms := color.New(color.Faint)

			for _, surface := range surfaces {
				actions, err := cat.ListActions(surface)
				if err != nil {
					return goerr.Wrap(err, "failed to list actions", goerr.V("surface", surface))
				}

				header.Printf("%s (%d actions)\n", surface, len(actions))
				for _, a := range actions {
					name.Printf("  %-16s", a.Name)
					fmt.Printf(" %s", a.Description)
					if a.Deprecated {
						deprecated.Printf("  [deprecated: %s]", a.DeprecationNote)
					}
					fmt.Println()
					if len(a.RequiredPermissions) > 0 {
						list := make([]string, len(a.RequiredPermissions))
						for i, p := range a.RequiredPermissions {
							list[i] = p.String()
						}
						perms.Printf("  %-16s requires %s\n", "", strings.Join(list, ", "))
					}
				}
				fmt.Println()
			}

			return nil
		},
	}
}
