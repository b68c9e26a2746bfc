package domain

// Success sentinels returned by the backend in the reply's "message" field.
const (
	LoginSuccessSentinel         = "Login successful"
	PasswordResetSuccessSentinel = "Password reset email sent successfully"
)

// User-visible messages.
const (
	MsgMissingCredentials  = "Please enter a username and password."
	MsgMissingEmail        = "Please enter your email."
	MsgLoginFailed         = "Login failed. Please try again."
	MsgResetFailed         = "Failed to reset password. Try again."
	MsgServerError         = "Server error. Please try again."
	MsgResetSent           = "Password reset email sent. Check your inbox."
	MsgBusy                = "A request is already in progress."
	MsgLoggedOut           = "You have successfully logged out."
	MsgSessionExpired      = "Your session has expired. Please log in again."
	MsgRegistered          = "User registered successfully."
	MsgRegistrationFailed  = "Registration failed. Please try again."
	MsgRegistrationInvalid = "Please fill in every field with a valid value."
)

// OrDefault returns msg, or fallback when the backend sent no message.
func OrDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
