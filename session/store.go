package session

// TokenKey is the storage key holding the session token.
const TokenKey = "jwt_token"

// Store is a persistent key-value store shared by every page of the client.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
