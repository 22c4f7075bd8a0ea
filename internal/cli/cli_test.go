package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`projects:
  - name: Portal
    purpose: Clientes
    developmentType: web
    language: TypeScript
    databaseType: PostgreSQL
    connections:
      - name: CRM
        dataFlow:
          sends: pedidos
          receives: clientes
  - name: Nomina
    purpose: RRHH
    developmentType: mainframe
    language: COBOL
    databaseType: VSAM
`), 0o600))

	out, err := run(t, "seed", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 projects (web 1, desktop 0, legacy 0, other 1)")
	assert.Contains(t, out, "Portal [Aplicación Web] 1 connections")
	assert.Contains(t, out, "Nomina [Otro]")
}

func TestSeedCheck_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - name: x\n"), 0o600))

	_, err := run(t, "seed", "check", path)
	assert.Error(t, err)

	_, err = run(t, "seed", "check")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	t.Setenv("APP_VERSION", "")
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
