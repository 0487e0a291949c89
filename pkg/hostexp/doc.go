// Package hostexp 提供 SLURM 风格主机名记法的展开。
//
// 该包将形如 `n[01-04,09],gw01` 的紧凑记法展开为去重、排序后的
// 完整主机名列表。只做字符串层面的解析与展开，不做任何网络解析，
// 强调可读性与可预测性。
//
// # 记法子集
//
//  1. 顶层以逗号分隔多个分组，逗号不在括号内时才分隔
//  2. 每个分组为 前缀 + 数字部分 + 后缀，数字部分可省略（纯字面量）
//  3. 括号体内为逗号分隔的裸数字或等宽区间，前导零有效
//  4. 无括号的连字符区间（如 n1-n4）按数字自然宽度展开
//  5. 括号仅支持单层，每个分组至多一个括号体
//
// # 语义说明
//
//  1. 括号区间按起止操作数的书写宽度补零，宽度不一致视为错误
//  2. 结果集合去重后按完整字符串升序排序，等宽补零时即数字序
//  3. 展开是纯函数：相同输入恒产生相同输出（含顺序）
//  4. 所有错误快速失败，不做静默修正
//
// # 快速开始
//
// 展开一个带区间的记法：
//
//	hosts, err := hostexp.Expand("n[01-04]")
//	// hosts = ["n01", "n02", "n03", "n04"]
//
// 多分组自动合并去重：
//
//	hosts, err := hostexp.Expand("n[02-03,09-11],n01")
//	// hosts = ["n01", "n02", "n03", "n09", "n10", "n11"]
//
// 详见 [Expand] 文档。
package hostexp
