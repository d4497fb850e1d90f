// Package contact validates the showcase page's contact form.
//
// Submissions are checked in two passes, mirroring what the user sees:
// first every required field (full name and email) must be non-blank, then
// the email must have a local@domain.tld shape. The first failing rule is
// reported as a *ValidationError. Accepted submissions produce a success
// notice and a request to clear the form.
//
// Nothing in this package stores or transmits field values.
//
// # Usage Example
//
//	h := contact.NewHandler()
//	out := h.Submit(contact.Submission{FullName: "Ada", Email: "ada@example.com"})
//	if out.Err != nil {
//	    showAlert(out.Alert)
//	    return
//	}
//	showToast(out.Notice)
package contact
