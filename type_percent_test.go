package marketbot

import "testing"

func TestPercentString(t *testing.T) {
	if got := Percent(12.3456).String(); got != "12.35%" {
		t.Errorf("String = %q", got)
	}
	if got := Percent(-3.2).SignedString(); got != "-3.20%" {
		t.Errorf("SignedString = %q", got)
	}
	if got := Percent(3.2).SignedString(); got != "+3.20%" {
		t.Errorf("SignedString = %q", got)
	}
}

func TestPercentEmoji(t *testing.T) {
	if got := Percent(-0.1).Emoji(); got != "🔴" {
		t.Errorf("negative emoji = %q", got)
	}
	if got := Percent(0).Emoji(); got != "🔵" {
		t.Errorf("zero emoji = %q", got)
	}
	if got := Percent(5).Emoji(); got != "🔵" {
		t.Errorf("positive emoji = %q", got)
	}
}

func TestPercentEqual(t *testing.T) {
	if !Percent(50).Equal(50.00001) {
		t.Error("near-equal percents should compare equal")
	}
	if Percent(50).Equal(50.1) {
		t.Error("distinct percents should not compare equal")
	}
}
