package contextkeys

type contextKey string

const (
	SessionIDKey   contextKey = "sessionID"
	SessionUserKey contextKey = "sessionUser"
)
