package models

import "strings"

// SignupForm is the body of POST /signedup.
type SignupForm struct {
	Username        string `form:"username" json:"username"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirmpassword" json:"confirmpassword"`
}

// LoginForm is the body of POST /loggedin.
type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// RecordForm carries the editable fields of a record. Browser forms post
// kind-prefixed names (journaltitle, bookcontent, ...); API clients may use
// the plain names.
type RecordForm struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"content" json:"content"`

	JournalTitle   string `form:"journaltitle" json:"journaltitle"`
	JournalContent string `form:"journalcontent" json:"journalcontent"`
	BookTitle      string `form:"booktitle" json:"booktitle"`
	BookContent    string `form:"bookcontent" json:"bookcontent"`
	StoryTitle     string `form:"storytitle" json:"storytitle"`
	StoryContent   string `form:"storycontent" json:"storycontent"`
}

// Resolve returns the title and content for kind, preferring the
// kind-prefixed fields when present.
func (f RecordForm) Resolve(kind Kind) (title, content string) {
	title, content = f.Title, f.Content
	var pt, pc string
	switch kind {
	case KindJournal:
		pt, pc = f.JournalTitle, f.JournalContent
	case KindBook:
		pt, pc = f.BookTitle, f.BookContent
	case KindStory:
		pt, pc = f.StoryTitle, f.StoryContent
	}
	if pt != "" {
		title = pt
	}
	if pc != "" {
		content = pc
	}
	return title, content
}

// ToggleForm is the body of POST /togglecheck/:id. An HTML checkbox posts
// "on" when ticked and nothing otherwise.
type ToggleForm struct {
	Checked string `form:"checked" json:"checked"`
}

// IsChecked reports whether the checkbox was ticked.
func (f ToggleForm) IsChecked() bool {
	switch strings.ToLower(strings.TrimSpace(f.Checked)) {
	case "", "0", "false", "off":
		return false
	default:
		return true
	}
}
