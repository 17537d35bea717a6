package utils_test

import (
	"testing"
	"time"

	"github.com/megachinese/bot/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCutoff(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "date only", input: "2025-01-02", want: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{name: "datetime", input: "2025-01-02 03:04:05", want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "datetime utc", input: "2025-01-02 03:04:05 utc", want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "rfc3339", input: "2025-01-02T03:04:05+08:00", want: time.Date(2025, 1, 1, 19, 4, 5, 0, time.UTC)},
		{name: "duration", input: "720h", want: now.Add(-720 * time.Hour)},
		{name: "negative duration", input: "-1h", wantErr: utils.ErrInvalidTimeFormat},
		{name: "empty", input: " ", wantErr: utils.ErrInvalidTimeFormat},
		{name: "garbage", input: "yesterday", wantErr: utils.ErrInvalidTimeFormat},
		{name: "bad datetime", input: "2025-13-40 99:00:00", wantErr: utils.ErrInvalidTimeFormat},
		{name: "unknown zone", input: "2025-01-02 03:04:05 Mars/Olympus", wantErr: utils.ErrInvalidTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := utils.ParseCutoff(tt.input, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
