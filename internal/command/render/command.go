// Package render 提供记法展开后的模板渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/command"
)

// Command 渲染命令
var Command = &cli.Command{
	Name:      "render",
	Usage:     "展开记法并将主机名代入模板",
	ArgsUsage: "<notation> <template>",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "render-placeholder",
			Aliases: []string{"p"},
			Value:   command.Defaults.Render.Placeholder,
			Usage:   "模板中的占位符标记",
		},
		&cli.StringFlag{
			Name:    "render-separator",
			Aliases: []string{"s"},
			Value:   command.Defaults.Render.Separator,
			Usage:   "渲染结果的分隔符",
		},
	},
}
