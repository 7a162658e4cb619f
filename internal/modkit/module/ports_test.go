package module

import (
	"testing"

	phttp "needle/internal/platform/net/http"
	kit "needle/internal/platform/testkit"
)

type greeter interface{ Greet() string }

type hello struct{}

func (hello) Greet() string { return "hi" }

type bundle struct {
	Greeter greeter
	hidden  greeter
}

type fakeModule struct{ ports any }

func (fakeModule) MountRoutes(phttp.Router) {}
func (f fakeModule) Ports() any             { return f.ports }
func (fakeModule) Name() string             { return "fake" }
func (fakeModule) Prefix() string           { return "/fake" }

func TestPortsOf(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil", nil, false},
		{"direct", hello{}, true},
		{"struct field", bundle{Greeter: hello{}}, true},
		{"pointer struct", &bundle{Greeter: hello{}}, true},
		{"unexported only", bundle{hidden: hello{}}, false},
		{"unrelated", 7, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, ok := PortsOf[greeter](fakeModule{ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v want %v", ok, tc.ok)
			}
			if ok && g.Greet() != "hi" {
				t.Fatalf("greet = %q", g.Greet())
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()
	kit.MustPanic(t, func() { MustPortsOf[greeter](fakeModule{}) })
	if MustPortsOf[greeter](fakeModule{ports: hello{}}).Greet() != "hi" {
		t.Fatal("unexpected greet")
	}
}
