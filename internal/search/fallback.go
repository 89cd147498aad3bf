package search

import "strings"

// fallbackSQL derives a query from keywords when no completion endpoint is
// reachable. It only ever produces SELECT statements.
func fallbackSQL(query string) string {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, "inventory", "product", "item", "stock"):
		switch {
		case strings.Contains(q, "low") || strings.Contains(q, "out of"):
			return "SELECT * FROM inventory WHERE quantity < 10 ORDER BY quantity ASC;"
		case strings.Contains(q, "expensive") || strings.Contains(q, "highest price"):
			return "SELECT * FROM inventory ORDER BY unit_price DESC LIMIT 10;"
		case strings.Contains(q, "cheap") || strings.Contains(q, "lowest price"):
			return "SELECT * FROM inventory ORDER BY unit_price ASC LIMIT 10;"
		default:
			return "SELECT * FROM inventory LIMIT 20;"
		}

	case containsAny(q, "supplier", "vendor", "provider"):
		if strings.Contains(q, "active") {
			return "SELECT * FROM suppliers WHERE is_active = TRUE;"
		}
		return "SELECT * FROM suppliers LIMIT 20;"

	case containsAny(q, "order", "purchase"):
		switch {
		case strings.Contains(q, "pending"):
			return "SELECT * FROM orders WHERE status = 'pending';"
		case strings.Contains(q, "completed"):
			return "SELECT * FROM orders WHERE status = 'completed';"
		case strings.Contains(q, "cancelled") || strings.Contains(q, "canceled"):
			return "SELECT * FROM orders WHERE status = 'cancelled';"
		default:
			return "SELECT * FROM orders LIMIT 20;"
		}

	case containsAny(q, "user", "account"):
		return "SELECT id, email, full_name, is_active FROM users LIMIT 20;"
	}

	return "SELECT * FROM inventory LIMIT 10;"
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
