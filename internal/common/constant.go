package common

// TokenCookieName is the cookie carrying the session token between the
// browser and the editor backend. Logout overwrites it with an empty value.
const TokenCookieName = "token"
