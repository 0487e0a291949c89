package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/config"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/version"
	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/hostexp"
	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/subst"
)

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return errors.New("render: expected notation and template arguments")
	}

	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg := config.MustLoad(cmd, version.AppRawName)

	hosts, err := hostexp.Expand(cmd.Args().Get(0))
	if err != nil {
		return err
	}

	out, err := subst.Render(hosts, cmd.Args().Get(1),
		subst.WithPlaceholder(cfg.Render.Placeholder),
		subst.WithSeparator(cfg.Render.Separator),
	)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
