package domain

import "testing"

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories {
		if !category.Valid() {
			t.Errorf("expected %s to be valid", category)
		}
	}

	invalid := []Category{"", "food", "Gambling", "OTHER"}
	for _, category := range invalid {
		if category.Valid() {
			t.Errorf("expected %q to be invalid", category)
		}
	}
}

func TestCategoriesCount(t *testing.T) {
	// The enum is fixed at 11 values, shared by transactions and budgets
	if len(Categories) != 11 {
		t.Errorf("expected 11 categories, got %d", len(Categories))
	}
}

func TestCategoryOrOther(t *testing.T) {
	if got := CategoryOrOther(""); got != CategoryOther {
		t.Errorf("expected Other for empty category, got %s", got)
	}
	if got := CategoryOrOther(CategoryFood); got != CategoryFood {
		t.Errorf("expected Food to pass through, got %s", got)
	}
}
