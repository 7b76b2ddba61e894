package pluginx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStubA struct{ name string }
type fakeStubB struct{ name string }

func TestServiceRegistry(t *testing.T) {
	r := newServiceRegistry()
	r.add(fakeStubA{name: "a"})

	c := &Client{registry: r}

	got, ok := Dispense[fakeStubA](c)
	require.True(t, ok)
	assert.Equal(t, "a", got.name)

	_, ok = Dispense[fakeStubB](c)
	assert.False(t, ok, "dispensing an unregistered type must fail")
}

func TestServiceRegistry_LastRegistrationWins(t *testing.T) {
	r := newServiceRegistry()
	r.add(fakeStubA{name: "first"})
	r.add(fakeStubA{name: "second"})

	c := &Client{registry: r}

	got, ok := Dispense[fakeStubA](c)
	require.True(t, ok)
	assert.Equal(t, "second", got.name)
}

type fakeNamer interface{ Name() string }

func (s *fakeStubA) Name() string { return s.name }

func TestServiceRegistry_DispenseByInterface(t *testing.T) {
	// Generated gRPC constructors return interface values backed by
	// unexported struct types, so callers dispense by interface type.
	r := newServiceRegistry()
	var stub any = &fakeStubA{name: "iface"}
	r.add(stub)

	c := &Client{registry: r}

	got, ok := Dispense[fakeNamer](c)
	require.True(t, ok)
	assert.Equal(t, "iface", got.Name())
}

func TestServiceRegistry_PointerStub(t *testing.T) {
	// The registry keys each entry on the dynamic type of the stored
	// value, so a stub stored as a pointer is dispensed by that same
	// pointer type.
	r := newServiceRegistry()
	r.add(&fakeStubA{name: "ptr"})

	c := &Client{registry: r}

	got, ok := Dispense[*fakeStubA](c)
	require.True(t, ok)
	assert.Equal(t, "ptr", got.name)
}
