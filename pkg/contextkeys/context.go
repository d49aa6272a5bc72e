package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// DBContextKey is the key under which a *gorm.DB handle (usually a test
// transaction) can be carried through a request context.
const DBContextKey = contextKey("db")
