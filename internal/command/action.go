package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/config"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/version"
	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/hostexp"
	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/subst"
)

// Action 处理不带子命令的直接调用（与历史命令行保持兼容）：
//
//	sexpand <notation>            # 展开为分隔符拼接的列表
//	sexpand <notation> <template> # 展开并代入模板
func Action(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() < 1 || args.Len() > 2 {
		return errors.New("expected <notation> [template] arguments, see --help")
	}

	cfg := config.MustLoad(cmd, version.AppRawName)

	hosts, err := hostexp.Expand(args.Get(0))
	if err != nil {
		return err
	}

	if args.Len() == 1 {
		fmt.Println(strings.Join(hosts, cfg.Expand.Separator))

		return nil
	}

	out, err := subst.Render(hosts, args.Get(1),
		subst.WithPlaceholder(cfg.Render.Placeholder),
		subst.WithSeparator(cfg.Render.Separator),
	)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
