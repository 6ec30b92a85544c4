package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wilyamx/thinkittwice/internal/feed"
)

func TestParseCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    uint64
		wantErr bool
	}{
		{name: "empty means no cursor", raw: "", want: 0},
		{name: "numeric", raw: "42", want: 42},
		{name: "non-numeric", raw: "abc", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "fractional", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cursor, err := feed.ParseCursor(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, feed.ErrBadCursor)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cursor)
		})
	}
}
