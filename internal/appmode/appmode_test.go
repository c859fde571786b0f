package appmode_test

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/stretchr/testify/require"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"

func TestRunSearch(t *testing.T) {
	dir := t.TempDir()
	poemFile := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(poemFile, []byte(poem), 0o600))

	cases := []struct {
		name    string
		cfg     *model.Config
		stdin   io.Reader
		wantOut string
		wantErr error
	}{
		{
			name:    "Positive - case-sensitive file search",
			cfg:     &model.Config{Query: "duct", Target: poemFile, CaseSensitive: true},
			wantOut: "safe, fast, productive.\n",
		},
		{
			name:    "Positive - case-insensitive file search",
			cfg:     &model.Config{Query: "rUsT", Target: poemFile},
			wantOut: "Rust:\nTrust me.\n",
		},
		{
			name:    "Positive - stdIn search",
			cfg:     &model.Config{Query: "Pick", Target: reader.StdInTarget, CaseSensitive: true},
			stdin:   strings.NewReader(poem),
			wantOut: "Pick three.\n",
		},
		{
			name:    "Positive - no matches, no output",
			cfg:     &model.Config{Query: "golang", Target: poemFile, CaseSensitive: true},
			wantOut: "",
		},
		{
			name:    "Negative - file not found",
			cfg:     &model.Config{Query: "duct", Target: filepath.Join(dir, "missing.txt"), CaseSensitive: true},
			wantErr: fs.ErrNotExist,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			err := appmode.RunSearch(tt.cfg, tt.stdin, out)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestRunServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Positive - graceful stop on cancel", func(t *testing.T) {
		ctx, stop := context.WithCancel(context.Background())
		go func() {
			time.Sleep(100 * time.Millisecond)
			stop()
		}()

		err := appmode.RunServer(ctx, stop, &model.ServerParam{Address: "127.0.0.1:0"}, logger)
		require.NoError(t, err)
	})

	t.Run("Negative - bad address", func(t *testing.T) {
		ctx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()

		err := appmode.RunServer(ctx, stop, &model.ServerParam{Address: "bad-address"}, logger)
		require.Error(t, err)
	})
}
