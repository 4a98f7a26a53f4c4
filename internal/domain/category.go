package domain

import "strings"

// Category tags a transaction. Each category is either income-bearing or expense-bearing.
type Category string

const (
	// Income categories
	CategorySalary      Category = "SALARY"
	CategoryFreelance   Category = "FREELANCE"
	CategoryInvestment  Category = "INVESTMENT"
	CategoryBusiness    Category = "BUSINESS"
	CategoryGift        Category = "GIFT"
	CategoryOtherIncome Category = "OTHER_INCOME"

	// Expense categories
	CategoryHousing        Category = "HOUSING"
	CategoryFood           Category = "FOOD"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryHealthcare     Category = "HEALTHCARE"
	CategoryEntertainment  Category = "ENTERTAINMENT"
	CategoryShopping       Category = "SHOPPING"
	CategoryEducation      Category = "EDUCATION"
	CategoryTravel         Category = "TRAVEL"
	CategoryInsurance      Category = "INSURANCE"
	CategoryUtilities      Category = "UTILITIES"
	CategoryOtherExpense   Category = "OTHER_EXPENSE"
)

type categoryInfo struct {
	enumInfo
	income bool
}

var categoryOrder = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryBusiness,
	CategoryGift,
	CategoryOtherIncome,
	CategoryHousing,
	CategoryFood,
	CategoryTransportation,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryShopping,
	CategoryEducation,
	CategoryTravel,
	CategoryInsurance,
	CategoryUtilities,
	CategoryOtherExpense,
}

var categoryTable = map[Category]categoryInfo{
	CategorySalary:         {enumInfo{"Salary", "Regular employment income"}, true},
	CategoryFreelance:      {enumInfo{"Freelance", "Freelance or contract work"}, true},
	CategoryInvestment:     {enumInfo{"Investment Returns", "Dividends, interest, capital gains"}, true},
	CategoryBusiness:       {enumInfo{"Business Income", "Business revenue"}, true},
	CategoryGift:           {enumInfo{"Gift", "Gifts and donations received"}, true},
	CategoryOtherIncome:    {enumInfo{"Other Income", "Miscellaneous income"}, true},
	CategoryHousing:        {enumInfo{"Housing", "Rent, mortgage, utilities"}, false},
	CategoryFood:           {enumInfo{"Food & Dining", "Groceries, restaurants, food delivery"}, false},
	CategoryTransportation: {enumInfo{"Transportation", "Gas, public transit, car maintenance"}, false},
	CategoryHealthcare:     {enumInfo{"Healthcare", "Medical expenses, insurance, pharmacy"}, false},
	CategoryEntertainment:  {enumInfo{"Entertainment", "Movies, games, hobbies, subscriptions"}, false},
	CategoryShopping:       {enumInfo{"Shopping", "Clothing, electronics, general purchases"}, false},
	CategoryEducation:      {enumInfo{"Education", "Tuition, books, courses"}, false},
	CategoryTravel:         {enumInfo{"Travel", "Vacations, hotels, flights"}, false},
	CategoryInsurance:      {enumInfo{"Insurance", "Auto, health, life insurance"}, false},
	CategoryUtilities:      {enumInfo{"Utilities", "Electricity, water, internet, phone"}, false},
	CategoryOtherExpense:   {enumInfo{"Other Expense", "Miscellaneous expenses"}, false},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// ExpenseCategories returns the expense-bearing categories in declaration order.
func ExpenseCategories() []Category {
	var out []Category
	for _, c := range categoryOrder {
		if c.IsExpense() {
			out = append(out, c)
		}
	}
	return out
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	_, ok := categoryTable[c]
	return ok
}

// IsIncome reports whether c is an income category.
func (c Category) IsIncome() bool {
	return categoryTable[c].income
}

// IsExpense reports whether c is an expense category.
func (c Category) IsExpense() bool {
	return c.IsValid() && !c.IsIncome()
}

// DisplayName returns the human-readable label.
func (c Category) DisplayName() string {
	return categoryTable[c].display
}

// Description returns the static description.
func (c Category) Description() string {
	return categoryTable[c].description
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory accepts an identifier or display label, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categoryOrder {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.DisplayName()) {
			return c, nil
		}
	}

	return "", NewValidationError("category", "unknown category "+quote(s))
}
