package strings

import (
	"testing"

	"screenwatch/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty([]int{1, 2}, []int{9}); len(got) != 2 {
		t.Fatalf("non-empty replaced: %v", got)
	}
	if got := IfEmpty(nil, []string{"GET"}); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("default not used: %v", got)
	}
}

func TestMustString(t *testing.T) {
	if MustString("status", "name") != "status" {
		t.Fatal("value changed")
	}
	testkit.MustPanic(t, func() { MustString("  ", "module name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"monitor":     "/monitor",
		"/monitor/":   "/monitor",
		" //meta// ":  "/meta",
		"api/v1/meta": "/api/v1/meta",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix(" / ") })
}
