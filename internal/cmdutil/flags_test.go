package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unprops/cli/internal/output"
)

func TestReportFlags_AddTo(t *testing.T) {
	var f ReportFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--scale-bands", "0,500,1200"}))
	assert.Equal(t, []float64{0, 500, 1200}, f.ScaleBands)
}

func TestFormatFlags(t *testing.T) {
	tests := []struct {
		args    []string
		want    output.Format
		wantErr bool
	}{
		{args: nil, want: output.FormatTable},
		{args: []string{"-o", "json"}, want: output.FormatJSON},
		{args: []string{"--output", "yaml"}, want: output.FormatYAML},
		{args: []string{"-o", "csv"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			var f FormatFlags
			cmd := &cobra.Command{Use: "test"}
			f.AddTo(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			got, err := f.Format()
			if tt.wantErr {
				assert.ErrorContains(t, err, `invalid output format "csv"`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
