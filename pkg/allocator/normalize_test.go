package allocator

import "testing"

func TestNormalizeMagnitude(t *testing.T) {
	cases := []struct {
		raw      int
		want     int
		adjusted bool
	}{
		{264, 264000, true},
		{99999, 99999000, true},
		{100000, 100000, false},
		{450000, 450000, false},
		{0, 0, false},
		{-5, -5, false},
	}

	for _, c := range cases {
		got, adjusted := NormalizeMagnitude(c.raw)
		if got != c.want || adjusted != c.adjusted {
			t.Errorf("NormalizeMagnitude(%d) = (%d, %v), want (%d, %v)", c.raw, got, adjusted, c.want, c.adjusted)
		}
	}
}
