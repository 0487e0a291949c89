// Package expand 提供记法展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/command"
)

// Command 展开命令
var Command = &cli.Command{
	Name:      "expand",
	Usage:     "展开主机名记法",
	ArgsUsage: "<notation>",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "expand-separator",
			Aliases: []string{"s"},
			Value:   command.Defaults.Expand.Separator,
			Usage:   "展开结果的分隔符",
		},
	},
}
