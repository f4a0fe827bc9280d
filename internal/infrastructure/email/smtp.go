package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for ticket links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketCreated(to string, ticketID uint, ticketSubject, priority string) error {
	ticketURL := s.ticketURL(ticketID)

	subject := fmt.Sprintf("New Ticket #%d: %s", ticketID, ticketSubject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>A new ticket has been opened</h2>
			<p><strong>#%d: %s</strong></p>
			<p>Priority: %s</p>
			<p><a href="%s">View Ticket</a></p>
		</body>
		</html>
	`, ticketID, ticketSubject, priority, ticketURL)

	plainBody := fmt.Sprintf(`
A new ticket has been opened.

#%d: %s
Priority: %s

View it at:
%s
	`, ticketID, ticketSubject, priority, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketUpdated(to string, ticketID uint, ticketSubject, status string) error {
	ticketURL := s.ticketURL(ticketID)

	subject := fmt.Sprintf("Ticket #%d Updated: %s", ticketID, ticketSubject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>A ticket you follow has been updated</h2>
			<p><strong>#%d: %s</strong></p>
			<p>Current status: %s</p>
			<p><a href="%s">View Ticket</a></p>
		</body>
		</html>
	`, ticketID, ticketSubject, status, ticketURL)

	plainBody := fmt.Sprintf(`
A ticket you follow has been updated.

#%d: %s
Current status: %s

View it at:
%s
	`, ticketID, ticketSubject, status, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketCommented(to string, ticketID uint, ticketSubject string) error {
	ticketURL := s.ticketURL(ticketID)

	subject := fmt.Sprintf("New Comment on Ticket #%d: %s", ticketID, ticketSubject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>A new comment was posted</h2>
			<p><strong>#%d: %s</strong></p>
			<p><a href="%s">View Ticket</a></p>
		</body>
		</html>
	`, ticketID, ticketSubject, ticketURL)

	plainBody := fmt.Sprintf(`
A new comment was posted.

#%d: %s

View it at:
%s
	`, ticketID, ticketSubject, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) ticketURL(ticketID uint) string {
	return fmt.Sprintf("%s/tickets/%d", s.config.BaseURL, ticketID)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
