// Package mailer is the outbound email capability. The concrete sender is
// resolved once at startup: with SMTP credentials configured it delivers over
// SMTP, otherwise it degrades to a log-only sender that prints the code to
// the server console.
package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/jobboardhq/jobboard-backend/config"
	"github.com/jobboardhq/jobboard-backend/internal/interfaces"
)

const (
	verifySubject = "Email Verification - JobBoard"
	resetSubject  = "Password Reset - JobBoard"

	dialTimeout = 8 * time.Second
	connTimeout = 15 * time.Second
)

// New picks the sender implementation from the configuration.
func New(cfg config.Config) interfaces.Mailer {
	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("SMTP credentials not set - using log-only mail sender")
		return &LogSender{}
	}

	host := cfg.SMTPHost
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := cfg.SMTPPort
	if port == "" {
		port = "587"
	}

	from := cfg.MailFrom
	if from == "" {
		from = cfg.EmailUser
	}

	return &SMTPSender{
		host:     host,
		port:     port,
		username: cfg.EmailUser,
		password: cfg.EmailPass,
		from:     from,
		fromName: cfg.MailFromName,
	}
}

type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func (s *SMTPSender) SendVerificationCode(to, code string) error {
	body, err := renderCodeTemplate(verifyTemplate, code)
	if err != nil {
		return err
	}
	return s.send(to, verifySubject, body)
}

func (s *SMTPSender) SendPasswordResetCode(to, code string) error {
	body, err := renderCodeTemplate(resetTemplate, code)
	if err != nil {
		return err
	}
	return s.send(to, resetSubject, body)
}

func (s *SMTPSender) send(to, subject, htmlBody string) error {
	fromHeader := s.from
	if s.fromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", s.fromName, s.from)
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	log.Printf("[MAIL] smtp sending to=%s via=%s", to, s.host+":"+s.port)

	if err := s.sendSMTPWithTimeout(to, []byte(msg)); err != nil {
		return err
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (s *SMTPSender) sendSMTPWithTimeout(to string, msg []byte) error {
	addr := s.host + ":" + s.port

	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return err
	}
	// Deadline covers the whole SMTP conversation so a stalled server cannot
	// hang the request.
	_ = conn.SetDeadline(time.Now().Add(connTimeout))

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := c.Auth(auth); err != nil {
		return err
	}

	if err := c.Mail(s.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// LogSender prints codes to the server log instead of sending mail. It always
// reports success.
type LogSender struct{}

func (*LogSender) SendVerificationCode(to, code string) error {
	log.Printf("[MAIL] mock verification code for %s: %s", to, code)
	return nil
}

func (*LogSender) SendPasswordResetCode(to, code string) error {
	log.Printf("[MAIL] mock password reset code for %s: %s", to, code)
	return nil
}

func renderCodeTemplate(tmpl *template.Template, code string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string{"Code": code}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var verifyTemplate = template.Must(template.New("verify").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb; text-align: center;">JobBoard Email Verification</h2>
  <p>Thank you for registering with JobBoard!</p>
  <p>Your verification code is:</p>
  <div style="background-color: #f3f4f6; padding: 20px; text-align: center; margin: 20px 0;">
    <h1 style="color: #2563eb; font-size: 32px; margin: 0; letter-spacing: 5px;">{{.Code}}</h1>
  </div>
  <p>This code will expire in 10 minutes.</p>
  <p>If you didn't create an account with JobBoard, please ignore this email.</p>
</div>`))

var resetTemplate = template.Must(template.New("reset").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626; text-align: center;">JobBoard Password Reset</h2>
  <p>You requested a password reset for your JobBoard account.</p>
  <p>Your password reset code is:</p>
  <div style="background-color: #fef2f2; padding: 20px; text-align: center; margin: 20px 0; border: 2px solid #fecaca;">
    <h1 style="color: #dc2626; font-size: 32px; margin: 0; letter-spacing: 5px;">{{.Code}}</h1>
  </div>
  <p>This code will expire in 10 minutes.</p>
  <p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
</div>`))
