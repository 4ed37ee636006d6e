package store

const (
	tokensTable = "tokens"

	// the auth preference holds a single token, always stored under this id
	tokenRowID = 1

	colID           = "id"
	colTokenType    = "token_type"
	colAccessToken  = "access_token"
	colRefreshToken = "refresh_token"
	colCreatedAt    = "created_at"
	colExpiresIn    = "expires_in"

	upsertTokenSuffix = `ON CONFLICT (id) DO UPDATE SET
		token_type    = excluded.token_type,
		access_token  = excluded.access_token,
		refresh_token = excluded.refresh_token,
		created_at    = excluded.created_at,
		expires_in    = excluded.expires_in`
)
