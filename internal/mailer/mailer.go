package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Config holds SMTP relay settings. The join form works without them: an
// unconfigured mailer logs submissions instead of relaying.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
	Timeout   time.Duration
}

// Configured reports whether real transport credentials are present. The
// placeholder username from the sample .env counts as unconfigured.
func (c Config) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != "" &&
		c.Username != "your-email@gmail.com"
}

// Submission is one "join us" form entry.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Age     string
	State   string
	Country string
	Message string
}

var bodyTmpl = template.Must(template.New("join").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #2ecc71; color: white; padding: 20px; text-align: center; }
    .content { background: #f9f9f9; padding: 20px; border: 1px solid #ddd; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #555; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h2>New Member Registration</h2></div>
    <div class="content">
      <div class="field"><span class="label">Name:</span> {{.Name}}</div>
      <div class="field"><span class="label">Email:</span> {{.Email}}</div>
      <div class="field"><span class="label">Phone:</span> {{.Phone}}</div>
      <div class="field"><span class="label">Age:</span> {{.Age}}</div>
      <div class="field"><span class="label">State:</span> {{.State}}</div>
      <div class="field"><span class="label">Country:</span> {{.Country}}</div>
      <div class="field">
        <div class="label">Message:</div>
        <div style="margin-top: 10px; padding: 10px; background: white; border-left: 3px solid #2ecc71;">{{.Message}}</div>
      </div>
    </div>
  </div>
</body>
</html>`))

// RenderBody produces the HTML notification body for a submission.
func RenderBody(s Submission) (string, error) {
	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("render mail body: %w", err)
	}
	return buf.String(), nil
}

// Mailer relays join submissions over SMTP with STARTTLS and short fixed
// timeouts. A new client is dialed per send; there is no connection pooling,
// queueing or retry.
type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Configured() bool { return m.cfg.Configured() }

// Send relays the submission to the configured recipient. The caller's
// context bounds the whole dial-and-send cycle.
func (m *Mailer) Send(ctx context.Context, s Submission) error {
	body, err := RenderBody(s)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat("Chinar Charity Foundation", m.cfg.Username); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.cfg.Recipient); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	if err := msg.ReplyTo(s.Email); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}
	msg.Subject("New Member Registration - Chinar Charity Foundation")
	msg.SetBodyString(gomail.TypeTextHTML, body)

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
