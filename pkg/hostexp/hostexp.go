package hostexp

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 记法模型
// ═══════════════════════════════════════════════════════════════════════════

// numericKind 标识分组数字部分的形态。
type numericKind int

const (
	numericNone    numericKind = iota // 纯字面量，无需展开
	numericInline                     // 无括号的连字符区间
	numericBracket                    // 括号体
)

// rangeItem 括号体内的一项：裸数字或等宽区间。
//
// 裸数字保留书写原文，前导零原样进入结果；
// 区间按 width 补零展开。
type rangeItem struct {
	literal string
	start   int
	end     int
	width   int
	isRange bool
}

// group 一个顶层逗号分隔单元。
//
// kind 为 numericNone 时整段原文存放在 prefix 中。
type group struct {
	prefix string
	suffix string
	items  []rangeItem
	start  int
	end    int
	kind   numericKind
}

// ═══════════════════════════════════════════════════════════════════════════
// 解析
// ═══════════════════════════════════════════════════════════════════════════

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	return true
}

// splitGroups 在括号外的逗号处拆分记法，同时校验括号配对与深度。
func splitGroups(notation string) ([]string, error) {
	var segments []string
	depth := 0
	start := 0
	for i := 0; i < len(notation); i++ {
		switch notation[i] {
		case '[':
			if depth > 0 {
				return nil, fmt.Errorf("%w in %q", ErrNestedBracket, notation)
			}
			depth++
		case ']':
			if depth == 0 {
				return nil, fmt.Errorf("%w in %q", ErrUnmatchedBracket, notation)
			}
			depth--
		case ',':
			if depth == 0 {
				segments = append(segments, notation[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w in %q", ErrUnmatchedBracket, notation)
	}

	return append(segments, notation[start:]), nil
}

// parseGroup 解析一个顶层分组。
//
// splitGroups 已保证段内括号配对，这里只需定位首对括号；
// 后缀中再次出现括号说明同组有第二个括号体，超出单层子集。
func parseGroup(segment string) (group, error) {
	if segment == "" {
		return group{}, fmt.Errorf("%w: empty segment", ErrEmptyGroup)
	}

	open := strings.IndexByte(segment, '[')
	if open < 0 {
		return parseInline(segment)
	}

	closing := strings.IndexByte(segment, ']')
	body := segment[open+1 : closing]
	if body == "" {
		return group{}, fmt.Errorf("%w: empty bracket body in %q", ErrEmptyGroup, segment)
	}
	suffix := segment[closing+1:]
	if strings.ContainsAny(suffix, "[]") {
		return group{}, fmt.Errorf("%w: second bracket body in %q", ErrNestedBracket, segment)
	}

	items, err := parseBody(body)
	if err != nil {
		return group{}, err
	}

	return group{
		prefix: segment[:open],
		suffix: suffix,
		items:  items,
		kind:   numericBracket,
	}, nil
}

// parseInline 识别无括号的连字符区间（如 n1-n4 或 n1-4）。
//
// 终点操作数允许重复书写分组前缀。数字后不是连字符、或连字符后
// 无法按 [前缀]数字 解析时，整段按纯字面量处理（如 my-node01、n01-ib）。
func parseInline(segment string) (group, error) {
	i := 0
	for i < len(segment) && !isDigit(segment[i]) {
		i++
	}
	prefix := segment[:i]
	j := i
	for j < len(segment) && isDigit(segment[j]) {
		j++
	}
	if i == j || j >= len(segment) || segment[j] != '-' {
		return group{prefix: segment, kind: numericNone}, nil
	}

	rest := segment[j+1:]
	if prefix != "" {
		rest = strings.TrimPrefix(rest, prefix)
	}
	k := 0
	for k < len(rest) && isDigit(rest[k]) {
		k++
	}
	if k == 0 {
		return group{prefix: segment, kind: numericNone}, nil
	}

	start, err := strconv.Atoi(segment[i:j])
	if err != nil {
		return group{}, fmt.Errorf("%w: %q: %v", ErrInvalidItem, segment[i:j], err)
	}
	end, err := strconv.Atoi(rest[:k])
	if err != nil {
		return group{}, fmt.Errorf("%w: %q: %v", ErrInvalidItem, rest[:k], err)
	}
	if end < start {
		return group{}, fmt.Errorf("%w: %d-%d in %q", ErrReversedRange, start, end, segment)
	}

	return group{
		prefix: prefix,
		suffix: rest[k:],
		start:  start,
		end:    end,
		kind:   numericInline,
	}, nil
}

// parseBody 解析括号体：逗号分隔的裸数字或等宽区间。
func parseBody(body string) ([]rangeItem, error) {
	parts := strings.Split(body, ",")
	items := make([]rangeItem, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty item in %q", ErrEmptyGroup, body)
		}

		dash := strings.IndexByte(part, '-')
		if dash < 0 {
			if !allDigits(part) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidItem, part)
			}
			items = append(items, rangeItem{literal: part})

			continue
		}

		lo, hi := part[:dash], part[dash+1:]
		if !allDigits(lo) || !allDigits(hi) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidItem, part)
		}
		if len(lo) != len(hi) {
			return nil, fmt.Errorf("%w: %q", ErrWidthMismatch, part)
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidItem, lo, err)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidItem, hi, err)
		}
		if end < start {
			return nil, fmt.Errorf("%w: %q", ErrReversedRange, part)
		}
		items = append(items, rangeItem{start: start, end: end, width: len(lo), isRange: true})
	}

	return items, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 展开
// ═══════════════════════════════════════════════════════════════════════════

// materialize 将分组的全部主机名写入结果集合。
//
// 括号区间按书写宽度补零；无括号区间按各数字的自然宽度输出。
func (g group) materialize(out map[string]struct{}) {
	switch g.kind {
	case numericNone:
		out[g.prefix] = struct{}{}
	case numericInline:
		for i := g.start; i <= g.end; i++ {
			out[g.prefix+strconv.Itoa(i)+g.suffix] = struct{}{}
		}
	case numericBracket:
		for _, item := range g.items {
			if !item.isRange {
				out[g.prefix+item.literal+g.suffix] = struct{}{}

				continue
			}
			for i := item.start; i <= item.end; i++ {
				out[fmt.Sprintf("%s%0*d%s", g.prefix, item.width, i, g.suffix)] = struct{}{}
			}
		}
	}
}

// Expand 将主机名记法展开为去重、升序排列的主机名列表。
//
// 支持语法：
//   - n01,gw - 逗号分隔的纯字面量
//   - n[01-04] - 括号区间，按书写宽度补零
//   - n[01,05-07] - 括号体内混合裸数字与区间
//   - n1-n4 - 无括号区间，数字取自然宽度
//   - n[01-02]-ib - 括号后可带字面量后缀
//
// 结果按完整字符串升序排序，跨分组的重复主机名只保留一个。
// 记法不在上述子集内时返回 error，错误种类见本包哨兵值。
func Expand(notation string) ([]string, error) {
	segments, err := splitGroups(notation)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, segment := range segments {
		g, err := parseGroup(segment)
		if err != nil {
			return nil, err
		}
		g.materialize(set)
	}

	hosts := make([]string, 0, len(set))
	for host := range set {
		hosts = append(hosts, host)
	}
	slices.Sort(hosts)

	return hosts, nil
}
