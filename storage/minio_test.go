package storage

import "testing"

func TestCatalogObjectKeyDeterministic(t *testing.T) {
	a := CatalogObjectKey("gallery-easel")
	b := CatalogObjectKey("gallery-easel")
	if a != b {
		t.Errorf("repeated derivations disagree: %q vs %q", a, b)
	}
	if a != "models/catalog/gallery-easel.glb" {
		t.Errorf("key = %q", a)
	}
}

func TestCatalogObjectKeysDistinctPerModel(t *testing.T) {
	if CatalogObjectKey("a") == CatalogObjectKey("b") {
		t.Error("distinct catalog ids map to the same object")
	}
}
