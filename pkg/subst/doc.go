// Package subst 提供主机名列表到模板表达式的代入渲染。
//
// 模板中的占位符（默认 `{}`）被逐个主机名替换，每个主机名产生一行
// 结果，最终按分隔符拼接。只做字符串替换，不引入模板引擎。
//
// # 语义说明
//
//  1. 模板必须至少包含一次占位符，否则返回 error（不静默透传）
//  2. 占位符的每次出现都被替换，模板其余部分原样保留
//  3. 输出顺序与输入主机名列表一致
//
// # 快速开始
//
// 将主机名代入域名模板：
//
//	out, err := subst.Render([]string{"n01", "n02"}, "{}.example.com")
//	// out = "n01.example.com\nn02.example.com"
//
// 自定义占位符与分隔符：
//
//	out, err := subst.Render(hosts, "ssh %h",
//	    subst.WithPlaceholder("%h"),
//	    subst.WithSeparator(", "),
//	)
//
// 详见 [Render] 文档。
package subst
