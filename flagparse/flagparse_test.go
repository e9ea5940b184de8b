package flagparse

import (
	stderrors "errors"
	"testing"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

func kindOf(t *testing.T, err error) errors.Kind {
	t.Helper()
	var se *errors.Error
	if !stderrors.As(err, &se) {
		t.Fatalf("expected a structured error, got %T: %v", err, err)
	}
	return se.Kind
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dont_verify", "KF_FLAG_DONT_VERIFY"},
		{"DONT_VERIFY", "KF_FLAG_DONT_VERIFY"},
		{"kf_flag_dont_verify", "KF_FLAG_DONT_VERIFY"},
		{"KF_FLAG_NO_ALIAS", "KF_FLAG_NO_ALIAS"},
		{"Simple_IdList", "KF_FLAG_SIMPLE_IDLIST"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslate_Empty(t *testing.T) {
	opts, err := Translate(nil)
	if err != nil {
		t.Fatalf("Translate(nil) failed: %v", err)
	}
	if opts != knownfolders.FlagDefault {
		t.Fatalf("Translate(nil) = %#x, want default (zero)", uint32(opts))
	}
}

func TestTranslate_Accumulates(t *testing.T) {
	opts, err := Translate([]string{"dont_verify", "no_alias"})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	want := knownfolders.FlagDontVerify | knownfolders.FlagNoAlias
	if opts != want {
		t.Fatalf("Translate = %#x, want %#x", uint32(opts), uint32(want))
	}
}

func TestTranslate_OrderInsensitiveAndIdempotent(t *testing.T) {
	inputs := [][]string{
		{"dont_verify", "no_alias"},
		{"NO_ALIAS", "DONT_VERIFY"},
		{"no_alias", "dont_verify", "no_alias", "KF_FLAG_DONT_VERIFY"},
	}

	var results []knownfolders.Options
	for _, in := range inputs {
		opts, err := Translate(in)
		if err != nil {
			t.Fatalf("Translate(%v) failed: %v", in, err)
		}
		results = append(results, opts)
	}

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatalf("Translate(%v) = %#x, Translate(%v) = %#x",
				inputs[i], uint32(results[i]), inputs[0], uint32(results[0]))
		}
	}
}

func TestTranslate_RejectsOptionMarkers(t *testing.T) {
	for _, arg := range []string{"-h", "--dont_verify", "-", "--"} {
		_, err := Translate([]string{arg})
		if got := kindOf(t, err); got != errors.KindUnrecognizedOption {
			t.Errorf("Translate(%q) kind = %s, want unrecognized_option", arg, got)
		}
	}
}

func TestTranslate_RejectsUnknownNames(t *testing.T) {
	_, err := Translate([]string{"definitely_not_a_flag"})
	if got := kindOf(t, err); got != errors.KindUnrecognizedFlag {
		t.Fatalf("kind = %s, want unrecognized_flag", got)
	}
}

func TestTranslate_RejectsBannedInEveryForm(t *testing.T) {
	banned := []string{
		"create", "CREATE", "Create", "kf_flag_create", "KF_FLAG_CREATE",
		"init", "INIT", "Init", "kf_flag_init", "KF_FLAG_INIT",
	}
	for _, arg := range banned {
		_, err := Translate([]string{arg})
		if got := kindOf(t, err); got != errors.KindBannedFlag {
			t.Errorf("Translate(%q) kind = %s, want banned_flag", arg, got)
		}
	}
}

func TestTranslate_BannedAmongValidFlags(t *testing.T) {
	_, err := Translate([]string{"dont_verify", "create", "no_alias"})
	if got := kindOf(t, err); got != errors.KindBannedFlag {
		t.Fatalf("kind = %s, want banned_flag", got)
	}
}

func TestTranslate_ErrorBeforeLookup(t *testing.T) {
	// An option marker wins over what would otherwise be a banned name.
	_, err := Translate([]string{"-create"})
	if got := kindOf(t, err); got != errors.KindUnrecognizedOption {
		t.Fatalf("kind = %s, want unrecognized_option", got)
	}
}

func TestTranslate_EveryNamedFlagAccepted(t *testing.T) {
	for name, want := range namedFlags {
		if isBanned(want) {
			continue
		}
		opts, err := Translate([]string{name})
		if err != nil {
			t.Errorf("Translate(%q) failed: %v", name, err)
			continue
		}
		if opts != want {
			t.Errorf("Translate(%q) = %#x, want %#x", name, uint32(opts), uint32(want))
		}
	}
}
