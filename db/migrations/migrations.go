package migrations

import "embed"

// FS holds the decision_log schema. internal/db applies it through the
// golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves to.
const Version = 1
