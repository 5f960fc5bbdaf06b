package hub

// User is the authorization record the hub returns for a valid session
// cookie. Records are immutable; re-verification replaces, never mutates.
type User struct {
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}
