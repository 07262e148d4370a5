package scoring

import (
	"reflect"
	"testing"
)

func TestBuildRecommendations(t *testing.T) {
	p := ProfileFor(English)

	t.Run("no issues tops up with generic advice", func(t *testing.T) {
		got := buildRecommendations(p)
		if len(got) != minRecommendations {
			t.Fatalf("got %d recommendations, want %d", len(got), minRecommendations)
		}
		if !reflect.DeepEqual(got, p.Messages.GenericAdvice[:minRecommendations]) {
			t.Errorf("got %v, want first %d generic items", got, minRecommendations)
		}
	})

	t.Run("issues kept in scorer order", func(t *testing.T) {
		got := buildRecommendations(p,
			[]string{"format issue"},
			[]string{"content issue one", "content issue two"},
			[]string{"readability issue"},
		)
		want := []string{"format issue", "content issue one", "content issue two", "readability issue"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("top-up skips duplicates", func(t *testing.T) {
		got := buildRecommendations(p, []string{p.Messages.GenericAdvice[0]})
		if len(got) != minRecommendations {
			t.Fatalf("got %d recommendations, want %d", len(got), minRecommendations)
		}
		seen := map[string]int{}
		for _, r := range got {
			seen[r]++
			if seen[r] > 1 {
				t.Errorf("duplicate recommendation %q", r)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := buildRecommendations(p, []string{"x"})
		b := buildRecommendations(p, []string{"x"})
		if !reflect.DeepEqual(a, b) {
			t.Errorf("recommendations differ between runs: %v vs %v", a, b)
		}
	})
}
