package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/subst"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		hosts    []string
		template string
		opts     []subst.Option
		want     string
		wantErr  error
	}{
		{
			name:     "basic substitution",
			hosts:    []string{"n01", "n02"},
			template: "{}.example.com",
			want:     "n01.example.com\nn02.example.com",
		},
		{
			name:     "placeholder replaced on every occurrence",
			hosts:    []string{"n01"},
			template: "scp {}:/etc/hosts backup/{}.hosts",
			want:     "scp n01:/etc/hosts backup/n01.hosts",
		},
		{
			name:     "custom separator",
			hosts:    []string{"n01", "n02", "n03"},
			template: "{}",
			opts:     []subst.Option{subst.WithSeparator(",")},
			want:     "n01,n02,n03",
		},
		{
			name:     "custom placeholder",
			hosts:    []string{"n01"},
			template: "ssh %h uptime",
			opts:     []subst.Option{subst.WithPlaceholder("%h")},
			want:     "ssh n01 uptime",
		},
		{
			name:     "empty host list yields empty output",
			hosts:    nil,
			template: "{}.example.com",
			want:     "",
		},
		{
			name:     "missing placeholder",
			hosts:    []string{"n01"},
			template: "no-placeholder-here",
			wantErr:  subst.ErrMissingPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := subst.Render(tt.hosts, tt.template, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
