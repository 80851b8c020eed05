package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlank(t *testing.T) {
	assert.True(t, Blank(""))
	assert.True(t, Blank("   "))
	assert.True(t, Blank("\t\n"))
	assert.False(t, Blank("x"))
	assert.False(t, Blank(" x "))
}

func TestRecordIsBlank(t *testing.T) {
	record := Record{"name": "テスト太郎", "company": " "}

	assert.False(t, record.IsBlank("name"))
	assert.True(t, record.IsBlank("company"))
	assert.True(t, record.IsBlank("absent"), "a missing key counts as blank")
}

func TestRecordClone(t *testing.T) {
	record := Record{"name": "テスト太郎"}
	clone := record.Clone()
	clone["name"] = "変更後"

	assert.Equal(t, "テスト太郎", record["name"])
	assert.Equal(t, "変更後", clone["name"])
}

func TestCatalogs(t *testing.T) {
	t.Run("validation catalog", func(t *testing.T) {
		catalog := ValidationCatalog()
		assert.Len(t, catalog, 7)

		required := 0
		for _, spec := range catalog {
			if spec.Required {
				required++
			}
		}
		assert.Equal(t, 6, required, "capital is the only optional field")
	})

	t.Run("validation catalog is a subset of the completeness catalog", func(t *testing.T) {
		full := make(map[string]bool)
		for _, spec := range CompletenessCatalog() {
			full[spec.Key] = true
		}
		for _, spec := range ValidationCatalog() {
			assert.True(t, full[spec.Key], "field %q missing from completeness catalog", spec.Key)
		}
	})

	t.Run("completeness catalog", func(t *testing.T) {
		assert.Len(t, CompletenessCatalog(), 13)
	})

	t.Run("response catalog requires every field", func(t *testing.T) {
		catalog := ResponseCatalog()
		assert.Len(t, catalog, 8)
		for _, spec := range catalog {
			assert.True(t, spec.Required, "field %q", spec.Key)
		}
	})

	t.Run("catalogs return fresh slices", func(t *testing.T) {
		first := ValidationCatalog()
		first[0].Key = "tampered"
		assert.Equal(t, "name", ValidationCatalog()[0].Key)
	})
}
