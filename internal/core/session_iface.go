package core

// SessionID identifies one transport connection for its whole lifetime.
type SessionID string
