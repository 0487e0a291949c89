package hostexp

import "errors"

// 解析错误均为哨兵值，调用方可用 errors.Is 区分错误种类。
var (
	// ErrUnmatchedBracket 括号不配对（缺少 `[` 或 `]`）。
	ErrUnmatchedBracket = errors.New("hostexp: unmatched bracket")

	// ErrNestedBracket 括号超出单层限制（嵌套或同组出现第二个括号体）。
	ErrNestedBracket = errors.New("hostexp: nested bracket")

	// ErrEmptyGroup 空的顶层分组或空的括号体。
	ErrEmptyGroup = errors.New("hostexp: empty group")

	// ErrReversedRange 区间终点小于起点。
	ErrReversedRange = errors.New("hostexp: reversed range")

	// ErrWidthMismatch 区间起止操作数书写宽度不一致。
	ErrWidthMismatch = errors.New("hostexp: range bounds have mismatched widths")

	// ErrInvalidItem 括号体内出现非数字项。
	ErrInvalidItem = errors.New("hostexp: invalid range item")
)
