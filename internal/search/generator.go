// Package search turns natural language questions into SELECT statements,
// preferring a configured completion model and degrading to keyword rules.
package search

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// SQLSource produces a SQL statement for a natural language query.
type SQLSource interface {
	GenerateSQL(ctx context.Context, query string) (string, error)
}

// Generator coordinates the completion model and the rule-based fallback.
type Generator struct {
	completion SQLSource
	logger     *zap.Logger
}

// NewGenerator builds a generator. completion may be nil, in which case every
// query uses the fallback rules.
func NewGenerator(completion SQLSource, logger *zap.Logger) *Generator {
	return &Generator{completion: completion, logger: logger}
}

// Generate returns a validated SELECT statement for the query.
func (g *Generator) Generate(ctx context.Context, query string) string {
	if g.completion == nil {
		return fallbackSQL(query)
	}

	raw, err := g.completion.GenerateSQL(ctx, query)
	if err != nil {
		g.logger.Warn("completion generation failed, using fallback", zap.Error(err))
		return fallbackSQL(query)
	}

	sql, ok := sanitizeSQL(raw)
	if !ok {
		g.logger.Warn("completion produced unusable SQL, using fallback", zap.String("sql", raw))
		return fallbackSQL(query)
	}
	return sql
}

// sanitizeSQL trims model chatter around the statement and enforces the
// SELECT-only rule. Returns false when the output cannot be used.
func sanitizeSQL(raw string) (string, bool) {
	sql := strings.TrimSpace(raw)

	if idx := strings.Index(strings.ToUpper(sql), "SELECT"); idx > 0 {
		sql = sql[idx:]
	}
	sql = strings.TrimSuffix(sql, "```")
	sql = strings.TrimSpace(sql)

	if len(sql) < 10 {
		return "", false
	}
	if !strings.HasPrefix(strings.ToLower(sql), "select") {
		return "", false
	}
	if !strings.HasSuffix(sql, ";") {
		sql += ";"
	}
	return sql, true
}
