package contact

import "testing"

func TestHandlerSubmit(t *testing.T) {
	tests := []struct {
		name      string
		sub       Submission
		accepted  bool
		wantAlert string
	}{
		{"Missing field", Submission{FullName: "", Email: "a@b.com"}, false, MessageMissing},
		{"Bad shape", Submission{FullName: "A", Email: "not-an-email"}, false, MessageEmailShape},
		{"Accepted", Submission{FullName: "A", Email: "a@b.com"}, true, ""},
	}

	h := NewHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := h.Submit(tt.sub)
			if out.Accepted() != tt.accepted {
				t.Fatalf("Accepted() = %v, want %v (err %v)", out.Accepted(), tt.accepted, out.Err)
			}
			if out.Alert != tt.wantAlert {
				t.Errorf("Alert = %q, want %q", out.Alert, tt.wantAlert)
			}
			if tt.accepted {
				if !out.Clear || out.Notice != SuccessNotice {
					t.Errorf("accepted outcome = %+v, want Clear and SuccessNotice", out)
				}
			} else {
				if out.Clear || out.Notice != "" {
					t.Errorf("rejected outcome should keep fields, got %+v", out)
				}
				if !IsValidationError(out.Err) {
					t.Errorf("Err = %T, want *ValidationError", out.Err)
				}
			}
		})
	}
}
