package repository

import "testing"

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", []string{"title", "content"})
	if condition != "title LIKE ? OR content LIKE ?" {
		t.Fatalf("sqlite condition unexpected: %s", condition)
	}
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}

	condition, argCount = buildLikeConditionByDialect("postgres", []string{"title"})
	if condition != "title ILIKE ?" {
		t.Fatalf("postgres condition unexpected: %s", condition)
	}
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}

	condition, argCount = buildLikeConditionByDialect("sqlite", []string{" ", ""})
	if condition != "" || argCount != 0 {
		t.Fatalf("blank columns want empty condition, got %q/%d", condition, argCount)
	}
}

func TestLikeOperatorByDialect(t *testing.T) {
	cases := map[string]string{
		"sqlite":     "LIKE",
		"postgres":   "ILIKE",
		"postgresql": "ILIKE",
		"":           "LIKE",
	}
	for dialect, want := range cases {
		if got := likeOperatorByDialect(dialect); got != want {
			t.Fatalf("dialect %q want %s got %s", dialect, want, got)
		}
	}
}
