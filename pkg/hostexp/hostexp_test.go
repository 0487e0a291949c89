package hostexp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/hostexp"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     []string
	}{
		{
			name:     "single literal",
			notation: "node1",
			want:     []string{"node1"},
		},
		{
			name:     "literal list",
			notation: "n01,n02",
			want:     []string{"n01", "n02"},
		},
		{
			name:     "inline range",
			notation: "n1-n4",
			want:     []string{"n1", "n2", "n3", "n4"},
		},
		{
			name:     "inline range without repeated prefix",
			notation: "n1-4",
			want:     []string{"n1", "n2", "n3", "n4"},
		},
		{
			name:     "inline range uses natural widths",
			notation: "n8-n11",
			want:     []string{"n10", "n11", "n8", "n9"},
		},
		{
			name:     "bracket range keeps padding",
			notation: "n[01-04]",
			want:     []string{"n01", "n02", "n03", "n04"},
		},
		{
			name:     "bracket body mixes literals and ranges",
			notation: "n[01,02],n03,n[05-07,09]",
			want:     []string{"n01", "n02", "n03", "n05", "n06", "n07", "n09"},
		},
		{
			name:     "groups union dedup and sort",
			notation: "n[02-03,09-11],n01",
			want:     []string{"n01", "n02", "n03", "n09", "n10", "n11"},
		},
		{
			name:     "duplicate literals collapse",
			notation: "n01,n01",
			want:     []string{"n01"},
		},
		{
			name:     "literal overlapping a range collapses",
			notation: "n01,n[01-02]",
			want:     []string{"n01", "n02"},
		},
		{
			name:     "suffix after bracket",
			notation: "n[01-02]-ib",
			want:     []string{"n01-ib", "n02-ib"},
		},
		{
			name:     "hyphen inside literal is not a range",
			notation: "my-node01",
			want:     []string{"my-node01"},
		},
		{
			name:     "hyphen before non-numeric tail is not a range",
			notation: "n01-ib",
			want:     []string{"n01-ib"},
		},
		{
			name:     "prefix only group",
			notation: "gw",
			want:     []string{"gw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hostexp.Expand(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		wantErr  error
	}{
		{
			name:     "missing closing bracket",
			notation: "n[01-04",
			wantErr:  hostexp.ErrUnmatchedBracket,
		},
		{
			name:     "missing opening bracket",
			notation: "n01-04]",
			wantErr:  hostexp.ErrUnmatchedBracket,
		},
		{
			name:     "nested bracket",
			notation: "n[0[1-2]]",
			wantErr:  hostexp.ErrNestedBracket,
		},
		{
			name:     "second bracket body in one group",
			notation: "n[1-2]x[3-4]",
			wantErr:  hostexp.ErrNestedBracket,
		},
		{
			name:     "reversed bracket range",
			notation: "n[04-01]",
			wantErr:  hostexp.ErrReversedRange,
		},
		{
			name:     "reversed inline range",
			notation: "n4-n1",
			wantErr:  hostexp.ErrReversedRange,
		},
		{
			name:     "mismatched widths",
			notation: "n[1-04]",
			wantErr:  hostexp.ErrWidthMismatch,
		},
		{
			name:     "empty notation",
			notation: "",
			wantErr:  hostexp.ErrEmptyGroup,
		},
		{
			name:     "stray comma",
			notation: "n01,,n02",
			wantErr:  hostexp.ErrEmptyGroup,
		},
		{
			name:     "trailing comma",
			notation: "n01,",
			wantErr:  hostexp.ErrEmptyGroup,
		},
		{
			name:     "empty bracket body",
			notation: "n[]",
			wantErr:  hostexp.ErrEmptyGroup,
		},
		{
			name:     "empty bracket item",
			notation: "n[1,,2]",
			wantErr:  hostexp.ErrEmptyGroup,
		},
		{
			name:     "non numeric bracket item",
			notation: "n[a-b]",
			wantErr:  hostexp.ErrInvalidItem,
		},
		{
			name:     "open ended bracket range",
			notation: "n[1-]",
			wantErr:  hostexp.ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hostexp.Expand(tt.notation)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

// TestExpand_OrderInvariance 顶层分组任意排列，结果一致。
func TestExpand_OrderInvariance(t *testing.T) {
	a, err := hostexp.Expand("n01,n[02-03]")
	require.NoError(t, err)
	b, err := hostexp.Expand("n[02-03],n01")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestExpand_Stability 已展开的输出重新作为记法解析，集合不变。
func TestExpand_Stability(t *testing.T) {
	notations := []string{
		"n[02-03,09-11],n01",
		"n1-n4,gw",
		"rack[01-03]-sw,rack02-sw",
	}

	for _, notation := range notations {
		t.Run(notation, func(t *testing.T) {
			first, err := hostexp.Expand(notation)
			require.NoError(t, err)

			second, err := hostexp.Expand(strings.Join(first, ","))
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
