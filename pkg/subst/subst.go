package subst

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPlaceholder 模板中默认的占位符标记。
const DefaultPlaceholder = "{}"

// DefaultSeparator 渲染结果的默认分隔符。
const DefaultSeparator = "\n"

// ErrMissingPlaceholder 模板中未出现占位符标记。
var ErrMissingPlaceholder = errors.New("subst: template has no placeholder")

// options 渲染选项。
type options struct {
	placeholder string
	separator   string
}

// Option 渲染选项函数。
type Option func(*options)

// WithPlaceholder 设置占位符标记（默认 [DefaultPlaceholder]）。
func WithPlaceholder(marker string) Option {
	return func(o *options) {
		o.placeholder = marker
	}
}

// WithSeparator 设置结果拼接的分隔符（默认 [DefaultSeparator]）。
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Render 将每个主机名代入模板并拼接结果。
//
// 模板中占位符的每次出现都被当前主机名替换，每个主机名产生一条
// 结果，结果按分隔符拼接后返回。模板不含占位符时返回
// [ErrMissingPlaceholder]。
func Render(hosts []string, template string, opts ...Option) (string, error) {
	o := &options{
		placeholder: DefaultPlaceholder,
		separator:   DefaultSeparator,
	}
	for _, opt := range opts {
		opt(o)
	}

	if !strings.Contains(template, o.placeholder) {
		return "", fmt.Errorf("%w: %q not found in %q", ErrMissingPlaceholder, o.placeholder, template)
	}

	lines := make([]string, len(hosts))
	for i, host := range hosts {
		lines[i] = strings.ReplaceAll(template, o.placeholder, host)
	}

	return strings.Join(lines, o.separator), nil
}
