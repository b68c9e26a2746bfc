package domain

// Keys of the durable client storage.
const (
	StorageKeyToken    = "authToken"
	StorageKeyUsername = "username"
)

// Identity is what a successful login hands to the shell.
type Identity struct {
	Token     string
	FirstName string
	LastName  string
}

// SessionState is the Root Shell's belief about the current browser session.
// The names are empty when the backend did not return them.
type SessionState struct {
	LoggedIn      bool
	LoggingOut    bool
	LogoutMessage string
	Loading       bool
	FirstName     string
	LastName      string
}

// SidebarState is the navigation panel state. OpenSection is empty when every
// section is collapsed.
type SidebarState struct {
	Open        bool
	OpenSection string
}

// Roles offered by the user registration panel.
var Roles = []string{"Group Admin", "Team Leader", "Field Staff", "Volunteer"}

// NewUser is the record submitted by the registration panel.
type NewUser struct {
	FirstName string `json:"firstname" form:"firstname" validate:"required,max=100"`
	LastName  string `json:"lastname" form:"lastname" validate:"required,max=100"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Username  string `json:"username" form:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" form:"password" validate:"required,min=8"`
	Role      string `json:"role" form:"role" validate:"required,oneof='Group Admin' 'Team Leader' 'Field Staff' 'Volunteer'"`
}
