package world

import "testing"

const testDirectory = `
establishments:
  t:
    type: tavern
    name: The Rusty Nail
    menu:
      - Drink ale
      - Eat a meal
      - "Exit to street"
  S:
    type: shop
    menu:
      - Browse wares
`

func TestParseDirectory(t *testing.T) {
	d, err := ParseDirectory([]byte(testDirectory))
	if err != nil {
		t.Fatalf("ParseDirectory: %v", err)
	}

	est, ok := d.ByTile(Tile('t'))
	if !ok {
		t.Fatal("tavern not found by tile")
	}
	if est.Name != "The Rusty Nail" || est.Type != "tavern" {
		t.Errorf("tavern = %+v", est)
	}

	// Lookup is case-insensitive both ways.
	if _, ok := d.ByTile(Tile('T')); !ok {
		t.Error("uppercase tile should resolve")
	}
	if _, ok := d.ByTile(Tile('s')); !ok {
		t.Error("uppercase key should be stored lowercase")
	}
}

func TestParseDirectoryDropsExitEntries(t *testing.T) {
	d, err := ParseDirectory([]byte(testDirectory))
	if err != nil {
		t.Fatalf("ParseDirectory: %v", err)
	}

	est, _ := d.ByTile(Tile('t'))
	if len(est.Menu) != 2 {
		t.Fatalf("menu = %v, exit entries should be dropped", est.Menu)
	}
	for _, item := range est.Menu {
		if item == "Exit to street" {
			t.Error("exit entry survived sanitization")
		}
	}
}

func TestParseDirectoryValidation(t *testing.T) {
	if _, err := ParseDirectory([]byte("establishments:\n  tt:\n    type: x")); err == nil {
		t.Error("multi-letter keys should be rejected")
	}
	if _, err := ParseDirectory([]byte("establishments:\n  t:\n    name: x")); err == nil {
		t.Error("missing type should be rejected")
	}
	if _, err := ParseDirectory([]byte("establishments: [unclosed")); err == nil {
		t.Error("invalid yaml should be rejected")
	}
}

func TestByType(t *testing.T) {
	d, err := ParseDirectory([]byte(testDirectory))
	if err != nil {
		t.Fatalf("ParseDirectory: %v", err)
	}
	if _, ok := d.ByType("shop"); !ok {
		t.Error("shop not found by type")
	}
	if _, ok := d.ByType("castle"); ok {
		t.Error("unknown type should not resolve")
	}
}

func TestDisplayName(t *testing.T) {
	e := Establishment{Type: "shop"}
	if e.DisplayName() != "Shop" {
		t.Errorf("DisplayName() = %q, want Shop", e.DisplayName())
	}
	e.Name = "General Store"
	if e.DisplayName() != "General Store" {
		t.Errorf("DisplayName() = %q", e.DisplayName())
	}
}
