package dotenv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sagarc03/typenv/dotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      map[string]string
		wantError bool
		wantLine  int
	}{
		{
			name:  "simple pairs",
			input: "DB_HOST=127.0.0.1\nPORT=8080\n",
			want:  map[string]string{"DB_HOST": "127.0.0.1", "PORT": "8080"},
		},
		{
			name:  "value keeps everything after the first equals",
			input: "DSN=postgres://u:p@host/db?sslmode=disable\n",
			want:  map[string]string{"DSN": "postgres://u:p@host/db?sslmode=disable"},
		},
		{
			name:  "empty value",
			input: "EMPTY=\n",
			want:  map[string]string{"EMPTY": ""},
		},
		{
			name:  "blank lines and comments are skipped",
			input: "\n# a comment\nKEY=value\n\n  # indented comment\n",
			want:  map[string]string{"KEY": "value"},
		},
		{
			name:  "key surrounding whitespace is trimmed",
			input: "  KEY  =value\n",
			want:  map[string]string{"KEY": "value"},
		},
		{
			name:  "value is taken verbatim",
			input: "KEY= spaced out \n",
			want:  map[string]string{"KEY": " spaced out "},
		},
		{
			name:  "no interpolation",
			input: "A=1\nB=$A and ${A}\n",
			want:  map[string]string{"A": "1", "B": "$A and ${A}"},
		},
		{
			name:  "duplicate key keeps the last value",
			input: "KEY=first\nKEY=second\n",
			want:  map[string]string{"KEY": "second"},
		},
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
		},
		{
			name:      "line without equals fails",
			input:     "GOOD=1\nbroken line\n",
			wantError: true,
			wantLine:  2,
		},
		{
			name:      "empty key fails",
			input:     "=value\n",
			wantError: true,
			wantLine:  1,
		},
		{
			name:  "export prefix is not understood",
			input: "export KEY=value\n",
			want:  map[string]string{"export KEY": "value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := dotenv.Parse(strings.NewReader(tt.input))

			if tt.wantError {
				assert.Nil(t, values)

				var syntaxErr *dotenv.SyntaxError
				require.ErrorAs(t, err, &syntaxErr)
				assert.Equal(t, tt.wantLine, syntaxErr.Line)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, values)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "DB_HOST=127.0.0.1\n# comment\nPORT=8080\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		values, err := dotenv.Load(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"DB_HOST": "127.0.0.1", "PORT": "8080"}, values)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := dotenv.Load(filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
