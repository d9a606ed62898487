package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	from     mail.Address
}

func NewSMTPMailer(host string, port int, user, password, from, fromName string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     mail.Address{Name: fromName, Address: from},
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) error {
	msg := buildMessage(m.from, to, subject, html, time.Now())
	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))

	log.WithFields(log.Fields{"to": to, "via": addr}).Debug("smtp sending")
	if err := m.deliver(ctx, addr, to, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	log.WithField("to", to).Info("mail sent")
	return nil
}

func (m *SMTPMailer) deliver(ctx context.Context, addr, to string, msg []byte) error {
	d := net.Dialer{Timeout: 8 * time.Second}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	// the whole conversation shares one deadline
	deadline := time.Now().Add(15 * time.Second)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	_ = conn.SetDeadline(deadline)

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}
	if m.user != "" {
		if err := c.Auth(smtp.PlainAuth("", m.user, m.password, m.host)); err != nil {
			return err
		}
	}

	if err := c.Mail(m.from.Address); err != nil {
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

func buildMessage(from mail.Address, to, subject, html string, at time.Time) []byte {
	return []byte(strings.Join([]string{
		"From: " + from.String(),
		"To: " + to,
		"Subject: " + mime.QEncoding.Encode("utf-8", subject),
		"Date: " + at.Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		html,
	}, "\r\n"))
}
