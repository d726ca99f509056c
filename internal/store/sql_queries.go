package store

import sq "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (name, email, username, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, username, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, username, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

// psql is the statement builder used for all resource queries.
// PostgreSQL expects $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
