package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/vitrine/internal/contact"
)

// formField describes one contact form input
type formField struct {
	name        string
	label       string
	placeholder string
	limit       int
}

var formFields = []formField{
	{name: contact.FieldFullName, label: "Full name *", placeholder: "Ada Lovelace", limit: 120},
	{name: contact.FieldEmail, label: "Email *", placeholder: "ada@example.com", limit: 254},
	{name: contact.FieldPhone, label: "Phone", placeholder: "optional", limit: 40},
	{name: contact.FieldMessage, label: "Message", placeholder: "optional", limit: 1000},
}

// contactForm holds the form inputs plus its alert and toast.
type contactForm struct {
	inputs  []textinput.Model
	handler *contact.Handler

	alert    string // Blocking alert, "" when none
	toast    string // Transient notice, "" when none
	toastGen uint64
}

func newContactForm(width int) *contactForm {
	f := &contactForm{handler: contact.NewHandler()}
	for _, field := range formFields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = field.placeholder
		ti.CharLimit = field.limit
		f.inputs = append(f.inputs, ti)
	}
	f.setWidth(width)
	return f
}

// setWidth resizes every input for a terminal width
func (f *contactForm) setWidth(width int) {
	w := inputWidth(width) - 3 // prompt and cursor
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
}

// focus focuses input i and blurs the rest
func (f *contactForm) focus(i int) tea.Cmd {
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *contactForm) blurAll() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

// update forwards a message to input i
func (f *contactForm) update(i int, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[i], cmd = f.inputs[i].Update(msg)
	return cmd
}

// submission returns the raw field values
func (f *contactForm) submission() contact.Submission {
	return contact.Submission{
		FullName: f.inputs[0].Value(),
		Email:    f.inputs[1].Value(),
		Phone:    f.inputs[2].Value(),
		Message:  f.inputs[3].Value(),
	}
}

// submit validates the form. A rejection raises the alert and keeps the
// values; an acceptance clears the fields and raises the toast. The
// returned generation tags the toast's expiry.
func (f *contactForm) submit() (contact.Outcome, uint64) {
	out := f.handler.Submit(f.submission())
	if !out.Accepted() {
		f.alert = out.Alert
		return out, f.toastGen
	}

	if out.Clear {
		for i := range f.inputs {
			f.inputs[i].Reset()
		}
	}
	f.toast = out.Notice
	f.toastGen++
	return out, f.toastGen
}

// dismissAlert closes the alert and reports whether one was up
func (f *contactForm) dismissAlert() bool {
	if f.alert == "" {
		return false
	}
	f.alert = ""
	return true
}

// expireToast clears the toast if gen is still current
func (f *contactForm) expireToast(gen uint64) bool {
	if gen != f.toastGen || f.toast == "" {
		return false
	}
	f.toast = ""
	return true
}

// fieldIndex returns the input index for a field name, or -1
func fieldIndex(name string) int {
	for i, field := range formFields {
		if field.name == name {
			return i
		}
	}
	return -1
}
