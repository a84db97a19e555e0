package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"

	"courtvista-backend/internal/config"
	"courtvista-backend/internal/models"
)

// Sender delivers one HTML email and returns the provider message id.
type Sender interface {
	SendHTML(ctx context.Context, toEmail, toName, subject, htmlBody string) (string, error)
}

const bookingReceivedTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Hello {{.ClientName}},</p>
  <p>We have received your consultation request with {{.LawyerName}}. The lawyer will review it shortly.</p>
  <ul>
    <li>Case type: {{.CaseType}}</li>
    {{if .Date}}<li>Date: {{.Date}}</li>{{end}}
    {{if .Time}}<li>Time: {{.Time}}</li>{{end}}
    <li>Reference: {{.ID}}</li>
  </ul>
  <p>Thank you for using CourtVista.</p>
</body>
</html>`

const statusChangedTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Hello {{.ClientName}},</p>
  {{if .Confirmed}}
  <p>{{.LawyerName}} has confirmed your consultation. You can now message the lawyer from your CourtVista inbox.</p>
  {{else}}
  <p>{{.LawyerName}} is unable to take your consultation. You can search for another lawyer on CourtVista.</p>
  {{end}}
  <ul>
    <li>Case type: {{.CaseType}}</li>
    {{if .Date}}<li>Date: {{.Date}}</li>{{end}}
    {{if .Time}}<li>Time: {{.Time}}</li>{{end}}
    <li>Reference: {{.ID}}</li>
  </ul>
</body>
</html>`

var (
	bookingReceivedTmpl = template.Must(template.New("booking_received").Parse(bookingReceivedTemplate))
	statusChangedTmpl   = template.Must(template.New("status_changed").Parse(statusChangedTemplate))
)

type consultationEmailData struct {
	ID         string
	ClientName string
	LawyerName string
	CaseType   string
	Date       string
	Time       string
	Confirmed  bool
}

func emailData(c models.Consultation) consultationEmailData {
	caseType := c.CaseTypeName
	if caseType == "" {
		caseType = "Consultation"
	}
	return consultationEmailData{
		ID:         c.ID,
		ClientName: c.ClientName,
		LawyerName: c.LawyerName,
		CaseType:   caseType,
		Date:       c.Date,
		Time:       c.Time,
		Confirmed:  c.Status == models.StatusConfirmed,
	}
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]+>`)
	blankPattern = regexp.MustCompile(`\n\s*\n+`)
)

func plainText(htmlBody string) string {
	s := tagPattern.ReplaceAllString(htmlBody, "")
	s = html.UnescapeString(s)
	s = blankPattern.ReplaceAllString(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ConsultationMailer emails clients about their consultation requests.
type ConsultationMailer struct {
	sender Sender
}

func NewConsultationMailer(sender Sender) *ConsultationMailer {
	return &ConsultationMailer{sender: sender}
}

func (m *ConsultationMailer) BookingReceived(ctx context.Context, c models.Consultation) (string, error) {
	body, err := render(bookingReceivedTmpl, emailData(c))
	if err != nil {
		return "", err
	}
	subject := fmt.Sprintf("Consultation request received - %s", c.LawyerName)
	return m.sender.SendHTML(ctx, c.ClientEmail, c.ClientName, subject, body)
}

func (m *ConsultationMailer) StatusChanged(ctx context.Context, c models.Consultation) (string, error) {
	body, err := render(statusChangedTmpl, emailData(c))
	if err != nil {
		return "", err
	}
	subject := fmt.Sprintf("Consultation declined - %s", c.LawyerName)
	if c.Status == models.StatusConfirmed {
		subject = fmt.Sprintf("Consultation confirmed - %s", c.LawyerName)
	}
	return m.sender.SendHTML(ctx, c.ClientEmail, c.ClientName, subject, body)
}

// FromConfig builds the mailer for the configured provider. It returns nil when
// mail is disabled or the provider lacks credentials.
func FromConfig(cfg *config.Config) *ConsultationMailer {
	switch strings.ToLower(cfg.MailProvider) {
	case "brevo":
		if c := NewBrevoClient(cfg.BrevoAPIKey, cfg.MailSenderEmail, cfg.MailSenderName, cfg.BrevoSandbox); c != nil {
			return NewConsultationMailer(c)
		}
	case "sendgrid":
		if c := NewSendGridClient(cfg.SendGridAPIKey, cfg.MailSenderEmail, cfg.MailSenderName); c != nil {
			return NewConsultationMailer(c)
		}
	}
	return nil
}
