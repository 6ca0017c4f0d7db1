package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "FIELDRULES_LANG", "FIELDRULES_TRANSLATIONS"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Chdir(t.TempDir())
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := execute(t.Context(), args, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestDemo(t *testing.T) {
	setupEnv(t)

	code, out, logs := run(t, "demo")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "[ok]   valid credentials\n")
	assert.Contains(t, out, "[fail] long username: Username must be at most 10 characters long\n")
	assert.Contains(t, out, "6 scenarios: 1 accepted, 5 rejected, 0 unexpected\n")
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "env=development")
	assert.Contains(t, logs, `level=DEBUG msg="demo finished"`)
}

func TestDemo_German(t *testing.T) {
	setupEnv(t)

	code, out, _ := run(t, "--lang", "de_AT", "demo")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "[fehler] short username: Benutzername muss mindestens 4 Zeichen lang sein\n")
	assert.Contains(t, out, "6 Szenarien: 1 akzeptiert, 5 abgelehnt, 0 unerwartet\n")
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{
			name: "valid",
			args: []string{"check", "-u", "johndoe", "-p", "correct-horse"},
			code: 0,
			want: "login_request is valid\n",
		},
		{
			name: "absent username",
			args: []string{"check", "-p", "correct-horse"},
			code: 1,
			want: "- Username must not be blank\n",
		},
		{
			name: "empty username",
			args: []string{"check", "--username", "", "-p", "correct-horse"},
			code: 1,
			want: "- Username must not be blank\n",
		},
		{
			name: "stops at first violation",
			args: []string{"check", "-u", "joe"},
			code: 1,
			want: "- Username must be at least 4 characters long\n",
		},
		{
			name: "all violations",
			args: []string{"check", "-u", "joe", "--all"},
			code: 1,
			want: "- Username must be at least 4 characters long\n- Password must not be blank\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)

			code, out, logs := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.want, out)
			assert.NotContains(t, logs, "Error:")
		})
	}
}

func TestCheck_EnvFileAndTranslations(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	catalog := filepath.Join(dir, "messages.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte("en:\n  fields:\n    username: Login name\n"), 0o600))

	envFile := filepath.Join(dir, "app.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"APP_ENV=production\nFIELDRULES_TRANSLATIONS="+catalog+"\n",
	), 0o600))

	code, out, logs := run(t, "--env-file", envFile, "check", "-p", "correct-horse")
	assert.Equal(t, 1, code)
	assert.Equal(t, "- Login name must not be blank\n", out)
	assert.Contains(t, logs, `"env":"production"`)
	assert.Contains(t, logs, `"run_id":"`)
}

func TestErrors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		setupEnv(t)

		code, out, logs := run(t, "--env-file", "missing.env", "demo")
		assert.Equal(t, 1, code)
		assert.Empty(t, out)
		assert.True(t, strings.HasPrefix(logs, "Error: "))
	})

	t.Run("invalid log level", func(t *testing.T) {
		setupEnv(t)
		t.Setenv("LOG_LEVEL", "loud")

		code, _, logs := run(t, "demo")
		assert.Equal(t, 1, code)
		assert.Contains(t, logs, "LOG_LEVEL")
	})

	t.Run("missing translations file", func(t *testing.T) {
		setupEnv(t)

		code, _, logs := run(t, "--translations", "nope.yaml", "demo")
		assert.Equal(t, 1, code)
		assert.Contains(t, logs, "load translations")
	})

	t.Run("unknown command", func(t *testing.T) {
		setupEnv(t)

		code, _, logs := run(t, "frobnicate")
		assert.Equal(t, 1, code)
		assert.Contains(t, logs, "unknown command")
	})
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "fieldrules version "+Version+" (build: "+BuildTime+")\n", out)
}
