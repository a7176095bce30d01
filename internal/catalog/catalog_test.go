package catalog

import (
	"testing"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packageIDs(pkgs []Package) []string {
	ids := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestPlatforms(t *testing.T) {
	ps := Platforms()
	require.Len(t, ps, 4)
	assert.Equal(t, docgen.PlatformWeb, ps[0].ID)
	assert.Equal(t, docgen.PlatformAPI, ps[3].ID)

	ps[0].Name = "mutated"
	again := Platforms()
	assert.Equal(t, "Web Application", again[0].Name)
}

func TestFrameworksByPlatform(t *testing.T) {
	fws := FrameworksByPlatform(docgen.PlatformMobile)
	require.NotEmpty(t, fws)
	assert.Equal(t, "react-native", fws[0].ID)

	assert.Nil(t, FrameworksByPlatform("tv"))
	assert.Nil(t, FrameworksByPlatform(docgen.PlatformNone))
}

func TestFrameworkByName(t *testing.T) {
	fw, ok := FrameworkByName("next.JS")
	require.True(t, ok)
	assert.Equal(t, "next", fw.ID)

	fw, ok = FrameworkByName("spring")
	require.True(t, ok)
	assert.Equal(t, "Spring Boot", fw.Name)

	_, ok = FrameworkByName("cobol")
	assert.False(t, ok)
}

func TestPackagesFor(t *testing.T) {
	t.Run("vue on web", func(t *testing.T) {
		ids := packageIDs(PackagesFor(docgen.PlatformWeb, "vue"))
		assert.Contains(t, ids, "pinia")
		assert.Contains(t, ids, "vuex")
		assert.Contains(t, ids, "tailwind")
		assert.NotContains(t, ids, "redux")
	})

	t.Run("express api", func(t *testing.T) {
		ids := packageIDs(PackagesFor(docgen.PlatformAPI, "express"))
		assert.Contains(t, ids, "prisma")
		assert.Contains(t, ids, "zod")
		assert.NotContains(t, ids, "tailwind")
	})

	t.Run("desktop has no packages", func(t *testing.T) {
		assert.Empty(t, PackagesFor(docgen.PlatformDesktop, "electron"))
	})
}

func TestPackagesByIDs(t *testing.T) {
	pkgs := PackagesByIDs([]string{"zod", "auth", "nope"})
	assert.Equal(t, []string{"auth", "zod"}, packageIDs(pkgs))
}
