package topic

import (
	"errors"
	"testing"
)

func TestTierValue(t *testing.T) {
	cases := []struct {
		tier Tier
		want float64
	}{
		{TierEasy, 3},
		{TierMedium, 6},
		{TierHard, 9},
		{Tier("bogus"), 6},
	}
	for _, tc := range cases {
		if got := tc.tier.Value(); got != tc.want {
			t.Errorf("Value(%s) = %v, want %v", tc.tier, got, tc.want)
		}
	}
}

func TestTiersForLevel(t *testing.T) {
	cases := []struct {
		level float64
		want  []Tier
	}{
		{1, []Tier{TierEasy}},
		{3, []Tier{TierEasy}},
		{3.1, []Tier{TierEasy, TierMedium}},
		{6, []Tier{TierEasy, TierMedium}},
		{6.1, []Tier{TierMedium, TierHard}},
		{10, []Tier{TierMedium, TierHard}},
	}
	for _, tc := range cases {
		got := TiersForLevel(tc.level)
		if len(got) != len(tc.want) {
			t.Errorf("TiersForLevel(%v) = %v, want %v", tc.level, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("TiersForLevel(%v)[%d] = %v, want %v", tc.level, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParseTier(t *testing.T) {
	if _, err := ParseTier("medium"); err != nil {
		t.Errorf("ParseTier(medium) error: %v", err)
	}
	if _, err := ParseTier("extreme"); err == nil {
		t.Error("ParseTier(extreme) succeeded, want error")
	}
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog([]Topic{
		{ID: "a", DisplayName: "A"},
		{ID: "b", DisplayName: "B"},
		{ID: "a", DisplayName: "duplicate"},
	})

	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2 (duplicate collapsed)", c.Len())
	}

	got, err := c.Get("a")
	if err != nil {
		t.Fatalf("Get(a): %v", err)
	}
	if got.DisplayName != "A" {
		t.Errorf("duplicate registration replaced the original: %q", got.DisplayName)
	}

	_, err = c.Get("missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Get(missing) error = %v, want NotFoundError", err)
	}

	ids := c.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs = %v, want registration order [a b]", ids)
	}
}

func TestDefaultCatalogNonEmpty(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	if !c.Contains("word-knowledge") {
		t.Error("default catalog missing word-knowledge")
	}
}
