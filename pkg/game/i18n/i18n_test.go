package i18n

import "testing"

func TestT_Translated(t *testing.T) {
	if got, want := T("SHOWING_ROOM", 42), "Showing room from seed 42:"; got != want {
		t.Errorf("T(SHOWING_ROOM, 42) = %q, want %q", got, want)
	}
}

func TestT_FallbackToKey(t *testing.T) {
	if got, want := T("NO_SUCH_KEY"), "NO_SUCH_KEY"; got != want {
		t.Errorf("T(NO_SUCH_KEY) = %q, want %q", got, want)
	}
}

func TestSetLanguage(t *testing.T) {
	if err := SetLanguage(""); err != nil {
		t.Errorf("SetLanguage(\"\") = %v, want nil", err)
	}
	if err := SetLanguage("xx"); err == nil {
		t.Error("SetLanguage(xx) = nil, want error")
	}
	if got := T("HELP_KEYS"); got == "HELP_KEYS" {
		t.Error("failed SetLanguage replaced the catalogue")
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 1 || langs[0] != DefaultLanguage {
		t.Errorf("Languages() = %v, want [%s]", langs, DefaultLanguage)
	}
}
