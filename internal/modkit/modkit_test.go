package modkit

import (
	"net/http"
	"reflect"
	"testing"

	"screenwatch/internal/modkit/httpkit"
	"screenwatch/internal/platform/config"
	"screenwatch/internal/platform/logger"
)

func fnPtr(f func(http.Handler) http.Handler) uintptr { return reflect.ValueOf(f).Pointer() }

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}

	var r httpkit.Router
	if b.Subrouter(r) != r {
		t.Fatal("default Subrouter should be identity")
	}
	b.Register(r)
}

func TestBuild_OptionsAndCopySemantics(t *testing.T) {
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA}

	type ports struct{ X int }
	registered := 0
	b := Build(
		WithName("status"),
		WithPrefix("/monitor"),
		WithMiddlewares(mid...),
		WithMiddlewares(mwB),
		WithPorts(ports{X: 7}),
		WithRegister(func(httpkit.Router) { registered++ }),
		WithSubrouter(func(r httpkit.Router) httpkit.Router { return nil }),
	)

	if b.Name != "status" || b.Prefix != "/monitor" {
		t.Fatalf("name/prefix %q %q", b.Name, b.Prefix)
	}
	if got, ok := b.Ports.(ports); !ok || got.X != 7 {
		t.Fatalf("ports %#v", b.Ports)
	}
	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatal("middleware order not preserved")
	}

	mid[0] = mwB
	if fnPtr(b.Mw[0]) != fnPtr(mwA) {
		t.Fatal("Built.Mw aliases the caller slice")
	}

	b.Register(nil)
	if registered != 1 {
		t.Fatalf("register called %d times", registered)
	}
	if b.Subrouter(nil) != nil {
		t.Fatal("subrouter override ignored")
	}
}

func TestWithPorts_LastWins(t *testing.T) {
	b := Build(WithPorts("first"), WithPorts(2))
	if b.Ports != 2 {
		t.Fatalf("ports %#v", b.Ports)
	}
}

func TestDeps_Logger(t *testing.T) {
	var d Deps
	if d.Logger("analyze") == nil {
		t.Fatal("zero deps must still yield a logger")
	}
	l := logger.Named("custom")
	d = Deps{Log: l, Cfg: config.New()}
	if d.Logger("analyze") != l {
		t.Fatal("explicit logger ignored")
	}
}
