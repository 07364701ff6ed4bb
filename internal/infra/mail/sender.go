package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"gopkg.in/gomail.v2"
)

type DigestData struct {
	Date            string
	Total           int
	Pending         int
	ProgressPercent int
}

const digestTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Focus-IN lead digest for {{.Date}}</h2>
  <p>
    The registry currently tracks <strong>{{.Total}}</strong> leads.
    {{.Pending}} are still pending and outreach progress stands at
    <strong>{{.ProgressPercent}}%</strong>.
  </p>
  <p>The full registry snapshot is attached as JSON.</p>
</body>
</html>`

type DigestSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewDigestSender(host string, port int, user, password, from string) *DigestSender {
	return &DigestSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendLeadDigest emails the registry summary with the exported
// snapshot attached.
func (s *DigestSender) SendLeadDigest(to string, data DigestData, snapshot []byte) error {
	t, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		return fmt.Errorf("parse digest template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render digest template: %w", err)
	}

	filename := fmt.Sprintf("focus-in-leads-%s.json", time.Now().Format("2006-01-02"))

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Focus-IN lead digest (%s)", data.Date))
	m.SetBody("text/html", body.String())
	m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(snapshot)
		return err
	}))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send digest email: %w", err)
	}
	return nil
}
