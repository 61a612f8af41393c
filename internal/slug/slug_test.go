package slug

import (
	"regexp"
	"testing"
)

func TestTransliterate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Наполеон", "napoleon"},
		{"Київський", "kyyivskyy"},
		{"Щастя", "shchastya"},
		{"Їжак", "yizhak"},
		{"Ґудзик", "gudzyk"},
		{"м'ята", "myata"},
		{"Чізкейк", "chizkeyk"},
	}
	for _, c := range cases {
		if got := Transliterate(c.in); got != c.want {
			t.Errorf("Transliterate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Торт «Наполеон»", "napoleon"},
		{"Торт Київський", "kyyivskyy"},
		{"Медовик", "medovyk"},
		{"Шоколадний торт 2 кг", "shokoladnyy-2-kh"},
		{"Chocolate Dream", "chocolate-dream"},
		{"Торт", "cake"},
		{"", "cake"},
		{"!!!", "cake"},
		{"  Торт  --  Празький  ", "prazkyy"},
	}
	for _, c := range cases {
		if got := Generate(c.in); got != c.want {
			t.Errorf("Generate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenerateShape(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	names := []string{
		"Торт «Наполеон»",
		"Птичне молоко!!!",
		"   ", "№%:?*", "Cake #1 (great)",
	}
	for _, name := range names {
		got := Generate(name)
		if !shape.MatchString(got) {
			t.Errorf("Generate(%q) = %q, does not match slug shape", name, got)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	names := []string{"Торт «Наполеон»", "Медовик", "Chocolate Dream"}
	for _, name := range names {
		first := Generate(name)
		if second := Generate(first); second != first {
			t.Errorf("Generate not idempotent: %q -> %q -> %q", name, first, second)
		}
	}
}

func TestAssignUnique(t *testing.T) {
	used := map[string]bool{
		"napoleon":   true,
		"napoleon-1": true,
	}
	taken := func(candidate string) (bool, error) {
		return used[candidate], nil
	}

	got, err := AssignUnique("Торт «Наполеон»", taken)
	if err != nil {
		t.Fatalf("AssignUnique: %v", err)
	}
	if got != "napoleon-2" {
		t.Errorf("AssignUnique = %q, want %q", got, "napoleon-2")
	}

	got, err = AssignUnique("Медовик", taken)
	if err != nil {
		t.Fatalf("AssignUnique: %v", err)
	}
	if got != "medovyk" {
		t.Errorf("AssignUnique = %q, want %q", got, "medovyk")
	}
}
