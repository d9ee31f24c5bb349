package entity

import "testing"

func TestRegistryBuiltins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		symbol rune
		name   string
	}{
		{Empty, "Empty"},
		{Wall, "Wall"},
		{Player, "Player"},
		{Block, "Block"},
		{Diamond, "Diamond"},
		{Egg, "Egg"},
		{Enemy, "Enemy"},
	}

	for _, c := range cases {
		d, err := reg.Resolve(c.symbol)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", c.symbol, err)
		}
		if d.Name != c.name {
			t.Fatalf("Resolve(%q) = %s, want %s", c.symbol, d.Name, c.name)
		}
	}
}

func TestRegistryRegister(t *testing.T) {
	cases := []struct {
		name    string
		desc    Descriptor
		wantErr bool
	}{
		{"new_symbol", Descriptor{Symbol: '6', Name: "SnoBee"}, false},
		{"letter_symbol", Descriptor{Symbol: 'I', Name: "IceBlock"}, false},
		{"duplicate_builtin", Descriptor{Symbol: Wall, Name: "OtherWall"}, true},
		{"newline", Descriptor{Symbol: '\n', Name: "Bad"}, true},
		{"nul", Descriptor{Symbol: 0, Name: "Bad"}, true},
		{"missing_name", Descriptor{Symbol: '7'}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(c.desc)
			if c.wantErr {
				if err == nil {
					t.Fatalf("Register(%q) should fail", c.desc.Symbol)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register(%q): %v", c.desc.Symbol, err)
			}
			d, err := reg.Resolve(c.desc.Symbol)
			if err != nil {
				t.Fatalf("Resolve after Register: %v", err)
			}
			if d != c.desc {
				t.Fatalf("Resolve = %+v, want %+v", d, c.desc)
			}
		})
	}
}

func TestRegistryDuplicateExtension(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Descriptor{Symbol: '6', Name: "SnoBee"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := reg.Register(Descriptor{Symbol: '6', Name: "Imposter"}); err == nil {
		t.Fatal("second Register of same symbol should fail")
	}
}

func TestRegistryUnknownSymbol(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Resolve('x'); err == nil {
		t.Fatal("Resolve of unregistered symbol should fail")
	}
	if reg.Known('x') {
		t.Fatal("Known should be false for unregistered symbol")
	}
}

func TestRegistryDescriptorsOrdered(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Descriptor{Symbol: 'Z', Name: "Zapper"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	descs := reg.Descriptors()
	if len(descs) != 8 {
		t.Fatalf("expected 8 descriptors, got %d", len(descs))
	}
	for i := 1; i < len(descs); i++ {
		if descs[i-1].Symbol >= descs[i].Symbol {
			t.Fatalf("descriptors not ordered by symbol: %q before %q", descs[i-1].Symbol, descs[i].Symbol)
		}
	}
}

func TestDescriptorIsEmpty(t *testing.T) {
	if !(Descriptor{Symbol: Empty, Name: "Empty"}).IsEmpty() {
		t.Fatal("empty descriptor should report IsEmpty")
	}
	if (Descriptor{Symbol: Wall, Name: "Wall"}).IsEmpty() {
		t.Fatal("wall descriptor should not report IsEmpty")
	}
}
