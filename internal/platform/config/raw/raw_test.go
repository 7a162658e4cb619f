package raw

import "testing"

func TestConf(t *testing.T) {
	c := New().Prefix("RAWT_")
	t.Setenv("RAWT_NAME", "  needle ")
	t.Setenv("RAWT_ON", "YES")
	t.Setenv("RAWT_OFF", "nope")
	t.Setenv("RAWT_N", "12")
	t.Setenv("RAWT_NEG", "-3")
	t.Setenv("RAWT_JUNK", "1x")

	if got := c.Get("NAME", "d"); got != "needle" {
		t.Fatalf("Get=%q", got)
	}
	if got := c.Get("MISSING", "d"); got != "d" {
		t.Fatalf("Get default=%q", got)
	}
	if !c.GetBool("ON", false) || c.GetBool("OFF", true) || !c.GetBool("MISSING", true) {
		t.Fatal("GetBool mismatch")
	}
	if c.GetInt("N", 0) != 12 || c.GetInt("NEG", 5) != 5 || c.GetInt("JUNK", 7) != 7 || c.GetInt("MISSING", 9) != 9 {
		t.Fatal("GetInt mismatch")
	}
}
