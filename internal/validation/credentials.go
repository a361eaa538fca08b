// Package validation holds the presence and length rules applied to form input.
package validation

import "unicode/utf8"

// User-facing validation messages.
const (
	MsgUsernameRequired   = "You must provide username."
	MsgPasswordRequired   = "You must provide password."
	MsgConfirmRequired    = "You should confirm password."
	MsgPasswordMismatch   = "Password and confirm password should be same."
	MsgUsernameLength     = "Username must be of minimum 3 characters and maximum 30 characters."
	MsgPasswordLength     = "Password must be at least 8 characters."
	MsgInvalidCredentials = "Invalid credentials"
	MsgTitleRequired      = "You must provide title."
	MsgTitleLength        = "Title must be at most 300 characters."
	MsgContentLength      = "Content must be at most 50000 characters."
)

// Length bounds, counted in characters.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
	PasswordMinLength = 8
	TitleMaxLength    = 300
	ContentMaxLength  = 50000
)

// Signup returns every problem with a signup submission, in display order.
// An empty result means the submission is acceptable.
func Signup(username, password, confirm string) []string {
	var errs []string
	if username == "" {
		errs = append(errs, MsgUsernameRequired)
	}
	if password == "" {
		errs = append(errs, MsgPasswordRequired)
	}
	if confirm == "" {
		errs = append(errs, MsgConfirmRequired)
	}
	if password != confirm {
		errs = append(errs, MsgPasswordMismatch)
	}
	if n := utf8.RuneCountInString(username); n < UsernameMinLength || n > UsernameMaxLength {
		errs = append(errs, MsgUsernameLength)
	}
	if utf8.RuneCountInString(password) < PasswordMinLength {
		errs = append(errs, MsgPasswordLength)
	}
	return errs
}

// Login returns the presence problems with a login submission.
func Login(username, password string) []string {
	var errs []string
	if username == "" {
		errs = append(errs, MsgUsernameRequired)
	}
	if password == "" {
		errs = append(errs, MsgPasswordRequired)
	}
	return errs
}

// Record returns the problems with a record title and content.
func Record(title, content string) []string {
	var errs []string
	if title == "" {
		errs = append(errs, MsgTitleRequired)
	} else if utf8.RuneCountInString(title) > TitleMaxLength {
		errs = append(errs, MsgTitleLength)
	}
	if utf8.RuneCountInString(content) > ContentMaxLength {
		errs = append(errs, MsgContentLength)
	}
	return errs
}
