package preset

import (
	"testing"
)

func TestRegistryInvoke(t *testing.T) {
	store := NewStore()
	reg := NewRegistry(store)

	var invokedWith string
	err := reg.Register("default", func(p Preset) error {
		invokedWith = p.Name
		return nil
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := reg.Invoke("default"); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if invokedWith != "default" {
		t.Errorf("action received preset %q, want default", invokedWith)
	}
}

func TestRegistryUnknownPreset(t *testing.T) {
	reg := NewRegistry(NewStore())

	if err := reg.Register("ghost", func(Preset) error { return nil }); err == nil {
		t.Error("Register for a preset missing from the store should fail")
	}
	if err := reg.Invoke("ghost"); err == nil {
		t.Error("Invoke without a registered action should fail")
	}
}

func TestRegistryDeregister(t *testing.T) {
	store := NewStore()
	p := Default()
	p.Name = "extra"
	store.Put(p)

	reg := NewRegistry(store)
	for _, name := range []string{"default", "extra"} {
		if err := reg.Register(name, func(Preset) error { return nil }); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}

	reg.Deregister("extra")
	if err := reg.Invoke("extra"); err == nil {
		t.Error("Invoke after Deregister should fail")
	}

	names := reg.Names()
	if len(names) != 1 || names[0] != "default" {
		t.Errorf("Names() = %v, want [default]", names)
	}
}
