package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential
// on authorized requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix prefixes the credential inside the Authorization header.
const BearerPrefix = "Bearer "
