package parser

import "strings"

// categoryRule pairs a merchant substring with the category it resolves to.
type categoryRule struct {
	pattern  string
	category string
}

// categoryRules is evaluated in declared order, first match wins. Keep new
// entries below existing ones unless they must shadow a broader pattern.
var categoryRules = []categoryRule{
	{"RACING", "Entertainment"},
	{"HUSH", "Clothing"},
	{"WWW.AEROLINEAS.COM.AR", "Travel"},
	{"MERPAGO", "E-commerce"},
	{"MERCADOPAGO", "E-commerce"},
	{"FARMACIA", "Health"},
	{"SUPERMERCADO", "Groceries"},
	{"COTO", "Groceries"},
	{"CARREFOUR", "Groceries"},
	{"YPF", "Fuel"},
	{"SHELL", "Fuel"},
	{"NETFLIX", "Subscriptions"},
	{"SPOTIFY", "Subscriptions"},
	{"UBER", "Transport"},
	{"CABIFY", "Transport"},
	{"PEDIDOSYA", "Food Delivery"},
	{"RAPPI", "Food Delivery"},
}

// defaultCategory is used when no rule matches the merchant.
const defaultCategory = "Other"

// Categorize resolves a merchant identifier to its spending category.
func Categorize(merchant string) string {
	upper := strings.ToUpper(merchant)
	for _, rule := range categoryRules {
		if strings.Contains(upper, rule.pattern) {
			return rule.category
		}
	}
	return defaultCategory
}
