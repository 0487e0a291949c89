package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/command"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/command/client"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/command/expand"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/command/render"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/command/server"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "SLURM 风格主机名记法展开工具",
		Version: version.GetVersion(),
		// 不带子命令时按历史用法处理：sexpand <notation> [template]
		ArgsUsage: "<notation> [template]",
		Action:    command.Action,
		Commands: []*cli.Command{
			version.Command,
			expand.Command,
			render.Command,
			server.Command,
			client.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
