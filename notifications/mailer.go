package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/pureaura/clinic-backend/configs"
)

// Mailer transmits a single rendered message. Implementations must be safe
// for concurrent use.
type Mailer interface {
	Send(toName, toEmail, subject, htmlContent string) error
}

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

type BrevoMailer struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	Client      *http.Client
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func NewBrevoMailer(apiKey, senderEmail, senderName string) *BrevoMailer {
	return &BrevoMailer{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *BrevoMailer) Send(toName, toEmail, subject, htmlContent string) error {
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": m.SenderName, "email": m.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", brevoEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", m.APIKey)
	req.Header.Set("content-type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to send email via Brevo: status %d, body %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// LogMailer is the degraded delivery mode: the event is recorded to the
// operational log and nothing is transmitted.
type LogMailer struct{}

func (LogMailer) Send(toName, toEmail, subject, htmlContent string) error {
	log.Printf("[mail disabled] to=%s (%s) subject=%q", toEmail, toName, subject)
	return nil
}

// NewMailerFromEnv picks the transport from MAIL_MODE. Anything other than a
// fully configured "brevo" degrades to the log transport.
func NewMailerFromEnv() Mailer {
	mode := config.ConfigOr("MAIL_MODE", "log")
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.ConfigOr("EMAIL_SENDER_NAME", "Pure Aura Clinic")

	if mode == "brevo" && apiKey != "" && senderEmail != "" {
		log.Printf("✅ Email transport initialized, sender %s <%s>", senderName, senderEmail)
		return NewBrevoMailer(apiKey, senderEmail, senderName)
	}

	if mode == "brevo" {
		log.Println("⚠️ MAIL_MODE=brevo but API key or sender missing, falling back to log-only delivery")
	} else {
		log.Println("⚠️ Email delivery disabled, events will be logged only")
	}
	return LogMailer{}
}
