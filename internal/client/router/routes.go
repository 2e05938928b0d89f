package router

// Route names.
const (
	NameHome     = "home"
	NameLogin    = "login"
	NameLogout   = "logout"
	NameRegister = "register"
	NameUsers    = "users"
)

// Wildcard matches any path no other route matches.
const Wildcard = "*"

const (
	PathHome     = "/"
	PathLogin    = "/login"
	PathLogout   = "/logout"
	PathRegister = "/register"
	PathUsers    = "/users"
)

// Route is one entry of the route table. A route with Redirect set is never
// shown; navigating to it continues to the redirect target.
type Route struct {
	Path     string
	Name     string
	Public   bool
	Redirect string
}

// DefaultRoutes is the client's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: PathHome, Name: NameHome, Public: true},
		{Path: PathLogin, Name: NameLogin, Public: true},
		{Path: PathLogout, Name: NameLogout, Public: true},
		{Path: PathRegister, Name: NameRegister, Public: true},
		{Path: PathUsers, Name: NameUsers},
		{Path: Wildcard, Redirect: PathLogin},
	}
}
