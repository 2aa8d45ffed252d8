package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apparentlymart/riscv-illegals/illegal"
)

func TestParseOverridesDefaults(t *testing.T) {
	c, err := Parse([]byte(`
isa: RV32IM
coverage: cartesian
hint_register: 7
fence_correction: true
drop_legal: true
`))
	require.NoError(t, err)

	assert.Equal(t, "RV32IM", c.ISA)
	assert.Equal(t, "cartesian", c.Coverage)
	assert.Equal(t, uint32(7), c.HintRegister)
	assert.True(t, c.FenceCorrection)
	assert.True(t, c.DropLegal)

	// untouched keys keep their defaults
	assert.Equal(t, uint32(5), c.BaseRegister)
	assert.Equal(t, "illegal_instructions", c.Label)
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("coverage: exhaustive\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	_, err = Parse([]byte("isa: [RV32I\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "illegals.yaml")
	require.NoError(t, os.WriteFile(path, []byte("label: traps\nbase_register: 9\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "traps", c.Label)
	assert.Equal(t, uint32(9), c.BaseRegister)
	assert.Equal(t, "RV64IMAFD", c.ISA)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Coverage = "cartesian"
	c.HintRegister = 1
	c.BaseRegister = 2
	c.FenceCorrection = true
	c.DropLegal = true

	opts, err := c.Options()
	require.NoError(t, err)

	o := illegal.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, illegal.CoverageCartesian, o.Coverage)
	assert.Equal(t, uint32(1), o.HintRegister)
	assert.Equal(t, uint32(2), o.BaseRegister)
	assert.True(t, o.FenceCorrection)
	assert.True(t, o.DropLegal)

	c.Coverage = "bogus"
	_, err = c.Options()
	assert.Error(t, err)
}
