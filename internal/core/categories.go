package core

// DefaultCategory is the fallback used when a category is missing, unknown,
// or the suggestion gateway cannot produce one.
const DefaultCategory = "Other"

// categorySet is the fixed, ordered vocabulary of allowed category names per
// transaction type. It constrains input at creation time only; stored rows
// are never re-validated against it.
var categorySet = map[TransactionType][]string{
	Income:  {"Salary", "Freelance", "Investments", "Business", "Gift", "Other"},
	Expense: {"Food", "Rent", "Utilities", "Transport", "Entertainment", "Health", "Education", "Shopping", "Other"},
}

// Categories returns the ordered allowed category names for a type.
func Categories(t TransactionType) []string {
	return append([]string(nil), categorySet[t]...)
}

// KnownCategory reports whether name belongs to the vocabulary for t.
func KnownCategory(t TransactionType, name string) bool {
	for _, c := range categorySet[t] {
		if c == name {
			return true
		}
	}
	return false
}

// AnyKnownCategory reports whether name belongs to either vocabulary. The
// suggestion gateway answers from the combined list, so validation of its
// output cannot assume a type.
func AnyKnownCategory(name string) bool {
	return KnownCategory(Income, name) || KnownCategory(Expense, name)
}

// NormalizeCategory returns name when it is valid for t, and the default
// category otherwise.
func NormalizeCategory(t TransactionType, name string) string {
	if KnownCategory(t, name) {
		return name
	}
	return DefaultCategory
}
