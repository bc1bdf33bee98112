package repository

import sq "github.com/Masterminds/squirrel"

// psql builds PostgreSQL statements with dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const sessionsTable = "sessions"

// sessionColumns is the shared list of columns for session queries.
var sessionColumns = []string{
	"id", "step", "mode", "industry", "parameters",
	"created_at", "updated_at", "expires_at",
}
