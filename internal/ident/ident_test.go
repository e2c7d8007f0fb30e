package ident

import "testing"

func TestCaseConversions(t *testing.T) {
	t.Run("to_snake", func(t *testing.T) {
		cases := map[string]string{
			"userName":   "user_name",
			"UserName":   "user_name",
			"user_name":  "user_name",
			"category":   "category",
			"orderItem2": "order_item2",
		}
		for in, want := range cases {
			if got := ToSnake(in); got != want {
				t.Errorf("ToSnake(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("to_pascal", func(t *testing.T) {
		cases := map[string]string{
			"user_name":  "UserName",
			"category":   "Category",
			"order_item": "OrderItem",
		}
		for in, want := range cases {
			if got := ToPascal(in); got != want {
				t.Errorf("ToPascal(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("to_camel", func(t *testing.T) {
		cases := map[string]string{
			"user_name":  "userName",
			"category":   "category",
			"order_item": "orderItem",
		}
		for in, want := range cases {
			if got := ToCamel(in); got != want {
				t.Errorf("ToCamel(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("to_kebab", func(t *testing.T) {
		if got := ToKebab("order_item"); got != "order-item" {
			t.Errorf("ToKebab(order_item) = %q", got)
		}
	})
}

func TestPluralize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		rule PluralRule
	}{
		{"user", "users", RuleDefault},
		{"category", "categories", RuleConsonantY},
		{"day", "days", RuleDefault}, // vowel before y
		{"status", "statuses", RuleSibilant},
		{"box", "boxes", RuleSibilant},
		{"branch", "branches", RuleSibilant},
		{"dish", "dishes", RuleSibilant},
		{"person", "people", RuleIrregular},
		{"child", "children", RuleIrregular},
		{"order_item", "order_items", RuleDefault},
		{"delivery_person", "delivery_people", RuleIrregular},
	}
	for _, tc := range cases {
		got, rule := Pluralize(tc.in)
		if got != tc.want {
			t.Errorf("Pluralize(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if rule != tc.rule {
			t.Errorf("Pluralize(%q) rule = %v, want %v", tc.in, rule, tc.rule)
		}
	}
}

func TestDerive(t *testing.T) {
	f := Derive("order_item")

	want := Forms{
		Singular:       "order_item",
		Plural:         "order_items",
		PascalSingular: "OrderItem",
		PascalPlural:   "OrderItems",
		CamelSingular:  "orderItem",
		CamelPlural:    "orderItems",
		SnakeSingular:  "order_item",
		SnakePlural:    "order_items",
		KebabPlural:    "order-items",
	}
	if f != want {
		t.Errorf("Derive(order_item) = %+v, want %+v", f, want)
	}
}

// Re-deriving from any derived form must return the original set.
func TestDeriveStability(t *testing.T) {
	for _, name := range []string{"user", "category", "product", "order_item"} {
		first := Derive(name)

		if again := Derive(first.SnakeSingular); again != first {
			t.Errorf("Derive(%q) not stable via snake form", name)
		}
		if snake := ToSnake(first.PascalSingular); snake != first.SnakeSingular {
			t.Errorf("ToSnake(%q) = %q, want %q", first.PascalSingular, snake, first.SnakeSingular)
		}
		if snake := ToSnake(first.CamelSingular); snake != first.SnakeSingular {
			t.Errorf("ToSnake(%q) = %q, want %q", first.CamelSingular, snake, first.SnakeSingular)
		}
	}
}

func TestLooksPlural(t *testing.T) {
	if !LooksPlural("items") {
		t.Error("expected items to look plural")
	}
	if LooksPlural("item") {
		t.Error("did not expect item to look plural")
	}
}
