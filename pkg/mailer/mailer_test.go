package mailer

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRender(t *testing.T) {
	body, err := Render("confirm", ConfirmEmailTemplate, map[string]any{
		"Name":    "ada lovelace",
		"AppName": "Backoffice",
		"BaseURL": "https://app.example.com",
		"Email":   "ada@example.com",
		"Token":   "tok123",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(body, "Hello Ada Lovelace,") {
		t.Errorf("name was not title-cased:\n%s", body)
	}
	if !strings.Contains(body, "https://app.example.com/confirm-email?email=ada@example.com&token=tok123") {
		t.Errorf("confirmation link missing:\n%s", body)
	}
}

func TestRenderRejectsBadTemplate(t *testing.T) {
	if _, err := Render("broken", "{{ .Name", nil); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLogMailerRecords(t *testing.T) {
	m := NewLogMailer(zap.NewNop())

	msg := Message{To: "ada@example.com", Subject: "Welcome", Body: "hello"}
	if err := m.Send(context.Background(), msg); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if len(m.Sent) != 1 || m.Sent[0] != msg {
		t.Errorf("message not recorded: %+v", m.Sent)
	}
}
