package cereal

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func newTestType(t *testing.T, name string) *RecordType {
	t.Helper()
	rt, err := DynamicType(name, MustSchema(Field{Name: "v", Type: U32()}))
	if err != nil {
		t.Fatalf("DynamicType: %v", err)
	}
	return rt
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	rt := newTestType(t, "Header")
	if err := reg.Register(rt); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok := reg.Lookup("Header")
	if !ok || got != rt {
		t.Fatal("Lookup did not return the registered type")
	}
	if reg.Count() != 1 {
		t.Fatalf("count %d, want 1", reg.Count())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(newTestType(t, "Header")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := reg.Register(newTestType(t, "Header"))
	if !errors.Is(err, ErrDuplicateType) {
		t.Fatalf("got %v, want ErrDuplicateType", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		if err := reg.Register(newTestType(t, name)); err != nil {
			t.Fatalf("Register %s: %v", name, err)
		}
	}
	names := reg.Names()
	want := []string{"Alpha", "Mid", "Zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names %v, want %v", names, want)
		}
	}
}

func TestRegistryConcurrentRegistration(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rt, _ := DynamicType(fmt.Sprintf("T%d", i), MustSchema(Field{Name: "v", Type: U8()}))
			if err := reg.Register(rt); err != nil {
				t.Errorf("Register T%d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()
	if reg.Count() != 16 {
		t.Fatalf("count %d, want 16", reg.Count())
	}
}

func TestGlobalRegistry(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	rt := newTestType(t, "Global")
	if err := RegisterType(rt); err != nil {
		t.Fatalf("RegisterType: %v", err)
	}
	got, ok := LookupType("Global")
	if !ok || got != rt {
		t.Fatal("LookupType did not return the registered type")
	}
	if names := TypeNames(); len(names) != 1 || names[0] != "Global" {
		t.Fatalf("TypeNames = %v", names)
	}
}
