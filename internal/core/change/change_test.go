package change

import (
	"testing"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/testkit"
)

func TestDigest_Decide(t *testing.T) {
	d := Digest{}
	tests := []struct {
		name     string
		prev     string
		cur      string
		changed  bool
		emptySum bool
	}{
		{"same text", "hello", "hello", false, false},
		{"from empty", "", "hello", true, false},
		{"to empty", "hello", "", false, true},
		{"both empty", "", "", false, true},
		{"different", "hello", "hello!", true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := d.Decide(tc.prev, tc.cur)
			if v.Changed != tc.changed {
				t.Fatalf("changed = %v, want %v", v.Changed, tc.changed)
			}
			if v.Magnitude != nil {
				t.Fatalf("digest verdict must not carry a magnitude")
			}
			if (v.Digest == "") != tc.emptySum {
				t.Fatalf("digest = %q", v.Digest)
			}
		})
	}
}

func TestSum(t *testing.T) {
	if Sum("") != "" {
		t.Fatal("empty text has no digest")
	}
	// sha1("abc")
	if got := Sum("abc"); got != "a9993e364706816aba3e25717850c26c9cd0d89d" {
		t.Fatalf("Sum(abc) = %s", got)
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		prev, cur string
		want      int
	}{
		{"", "", 0},
		{"same", "same", 0},
		{"", "abcd", 4},
		{"abcd", "", 4},
		{"hello world", "hello world!!!", 3},
		{"abc", "abd", 2},
		{"héllo", "hello", 2},
	}
	for _, tc := range tests {
		if got := Magnitude(tc.prev, tc.cur); got != tc.want {
			t.Fatalf("Magnitude(%q, %q) = %d, want %d", tc.prev, tc.cur, got, tc.want)
		}
	}
}

func TestMagnitude_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"hello world", "hello world!!!"},
		{"status: ok", "status: failed"},
		{"", "new text"},
	}
	for _, p := range pairs {
		if a, b := Magnitude(p[0], p[1]), Magnitude(p[1], p[0]); a != b {
			t.Fatalf("asymmetric for %q: %d vs %d", p, a, b)
		}
	}
}

func TestFuzzy_Decide(t *testing.T) {
	f := Fuzzy{MinChange: 2}
	v := f.Decide("hello world", "hello world!!!")
	if !v.Changed || v.Magnitude == nil || *v.Magnitude < 3 {
		t.Fatalf("verdict = %+v", v)
	}

	for _, th := range []int{0, 1, 50} {
		v := Fuzzy{MinChange: th}.Decide("steady", "steady")
		if *v.Magnitude != 0 {
			t.Fatalf("identical text magnitude = %d", *v.Magnitude)
		}
		if v.Changed {
			t.Fatalf("threshold %d: identical text flagged", th)
		}
	}

	v = Fuzzy{MinChange: 0}.Decide("a", "b")
	if !v.Changed {
		t.Fatal("threshold 0 should flag any difference")
	}

	v = Fuzzy{MinChange: 50}.Decide("hello world", "hello world!!!")
	if v.Changed {
		t.Fatal("small edit should stay under threshold 50")
	}

	v = Fuzzy{MinChange: 5}.Decide("everything here", "")
	if !v.Changed || *v.Magnitude != len("everything here") {
		t.Fatalf("disappearing text verdict = %+v", v)
	}
}

func TestNew(t *testing.T) {
	d, err := New(StrategyFuzzy, 10)
	if err != nil || d.Strategy() != StrategyFuzzy {
		t.Fatalf("fuzzy: %v %v", d, err)
	}
	d, err = New(StrategyDigest, -1)
	if err != nil || d.Strategy() != StrategyDigest {
		t.Fatalf("digest: %v %v", d, err)
	}
	_, err = New(StrategyFuzzy, -1)
	testkit.MustCode(t, err, perr.ErrorCodeConfig)
	_, err = New("nope", 0)
	testkit.MustCode(t, err, perr.ErrorCodeConfig)
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"": StrategyFuzzy, "FUZZY": StrategyFuzzy, "digest": StrategyDigest} {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Fatalf("ParseStrategy(%q) = %v, %v", in, got, err)
		}
	}
	_, err := ParseStrategy("exact")
	testkit.MustCode(t, err, perr.ErrorCodeConfig)
}
