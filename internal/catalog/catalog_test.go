package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

func TestDefault_Lookups(t *testing.T) {
	c := Default()

	assert.Equal(t, 5, c.SessionsForPackage("Renove 5 sessões (1h)"))
	assert.Equal(t, 20, c.SessionsForPackage("Pacote 20 sessões (1h30)"))
	assert.Equal(t, domain.Period2h, c.DefaultPeriodForPackage("Renovare 10 sessões (2h)"))

	// неизвестные имена не считаются ошибкой
	assert.Equal(t, 1, c.SessionsForPackage("Unknown"))
	assert.Equal(t, domain.Period(""), c.DefaultPeriodForPackage("Unknown"))
	assert.False(t, c.Has("Unknown"))
}

func TestDefault_Order(t *testing.T) {
	names := Default().PackageNames()

	require.Len(t, names, 9)
	assert.Equal(t, "Relax 5 sessões (30 min)", names[0])
	assert.Equal(t, "Pacote 20 sessões (1h30)", names[8])
}

func TestDefault_Prices(t *testing.T) {
	c := Default()

	p, ok := c.Price("Renove 10 sessões (1h)")
	require.True(t, ok)
	assert.Equal(t, 1250.0, p)

	_, ok = c.Price("Pacote 20 sessões (1h30)")
	assert.False(t, ok)

	rate, ok := c.AvulsaRate(domain.Period1h30)
	require.True(t, ok)
	assert.Equal(t, 200.0, rate)
}

func TestLoadFile(t *testing.T) {
	body := `
packages:
  - name: "Teste 3 sessões (1h)"
    sessions: 3
    period: 1h
    price: 300
  - name: "Teste 2 sessões (2h)"
    sessions: 2
    period: 2h
avulsa_rates:
  1h: 170
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Teste 3 sessões (1h)", "Teste 2 sessões (2h)"}, c.PackageNames())
	assert.Equal(t, 3, c.SessionsForPackage("Teste 3 sessões (1h)"))
	rate, ok := c.AvulsaRate(domain.Period1h)
	require.True(t, ok)
	assert.Equal(t, 170.0, rate)
	_, ok = c.AvulsaRate(domain.Period2h)
	assert.False(t, ok)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadFile)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("packages: [::"), 0o600))
	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, ErrParseFile)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("packages: []"), 0o600))
	_, err = LoadFile(empty)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("packages:\n  - name: X\n    sessions: 0\n"), 0o600))
	_, err = LoadFile(zero)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
