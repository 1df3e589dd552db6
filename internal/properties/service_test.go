package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	props := Default()
	require.Len(t, props, 12)
	assert.Equal(t, "2111_9th", props[0].ID)
	assert.Equal(t, "2111 9th Street", props[0].Name)
	assert.Equal(t, "353000", props[0].Value.String())
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry(Default())

	p, ok := reg.Get("harbor_st")
	require.True(t, ok)
	assert.Equal(t, "Harbor St", p.Name)

	assert.True(t, reg.Exists("las_palmas"))
	assert.False(t, reg.Exists("nonexistent"))
	assert.Len(t, reg.All(), 12)
}

func TestRegistry_SaveLoad(t *testing.T) {
	dir := t.TempDir()

	reg := NewRegistry(Default())
	require.NoError(t, reg.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, loaded.All(), 12)

	p, ok := loaded.Get("5th_st_e")
	require.True(t, ok)
	assert.Equal(t, "5th ST E", p.Name)
	assert.Equal(t, "305000", p.Value.String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestTenantProperty(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Zelle payment from Jack Sevilla", "5th_st_e"},
		{"LUCY CEPEDA march rent", "2024_50th"},
		{"deposit - angel de la cruz", "las_palmas"},
		{"Home Depot purchase", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TenantProperty(tt.desc), "TenantProperty(%q)", tt.desc)
	}
}
