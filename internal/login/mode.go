package login

// Mode selects which form the login panel shows.
type Mode int

const (
	ModeLogin Mode = iota
	ModeForgotPassword
)

// ParseMode maps the "mode" query value onto a Mode. Unknown values select ModeLogin.
func ParseMode(s string) Mode {
	if s == "forgot" {
		return ModeForgotPassword
	}
	return ModeLogin
}

func (m Mode) String() string {
	if m == ModeForgotPassword {
		return "forgot"
	}
	return "login"
}

// Other returns the mode the toggle button switches to.
func (m Mode) Other() Mode {
	if m == ModeForgotPassword {
		return ModeLogin
	}
	return ModeForgotPassword
}

// Title is the panel subheading.
func (m Mode) Title() string {
	if m == ModeForgotPassword {
		return "Forgot Password"
	}
	return "Login"
}

// SubmitLabel is the idle label of the submit button.
func (m Mode) SubmitLabel() string {
	if m == ModeForgotPassword {
		return "Send Password Reset Email"
	}
	return "Login"
}

// BusyLabel is shown on the submit button while a request is in flight.
func (m Mode) BusyLabel() string {
	if m == ModeForgotPassword {
		return "Sending..."
	}
	return "Logging in..."
}

// ToggleLabel is the label of the mode switch button.
func (m Mode) ToggleLabel() string {
	if m == ModeForgotPassword {
		return "Back to Login"
	}
	return "Forgot Password?"
}

// Action is the path the form posts to.
func (m Mode) Action() string {
	if m == ModeForgotPassword {
		return "/forgot-password"
	}
	return "/login"
}
