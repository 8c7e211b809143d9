package app

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/gocmd/version"
)

func (c *cli) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Args:  cobra.NoArgs,
		// No config or logger needed.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			r, err := newRenderer(c.format, c.out, c.errOut)
			c.render = r
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()
			return c.render.value(info, serviceName+" "+info.String())
		},
	}
}
