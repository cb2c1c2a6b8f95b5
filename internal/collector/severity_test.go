package collector

import "testing"

func TestClassifyKeywordPriorities(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"a bomb exploded", 5},
		{"airstrike reported near the border", 5},
		{"violent protest erupts", 4},
		{"suspected kidnapping in the suburbs", 4},
		{"routine embassy update", 3},
		{"", 3},
		// 爆炸类优先于暴力类
		{"riot follows market blast", 5},
	}

	for _, c := range cases {
		if got := Classify(c.text); got != c.want {
			t.Fatalf("Classify(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	lower := Classify("a bomb exploded")
	mixed := Classify("A BoMb ExPlOdEd")
	if lower != mixed {
		t.Fatalf("mixed case should classify like lowercase: %d vs %d", lower, mixed)
	}
	if mixed != 5 {
		t.Fatalf("Classify mixed case = %d, want 5", mixed)
	}
}
