package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<h2>Thanks for your order{{if .Name}}, {{.Name}}{{end}}!</h2>
<p>Your payment for the <strong>{{.PackageName}}</strong> package (${{printf "%.2f" .Amount}}) is confirmed.</p>
<p>We'll reach out within one business day to kick off your project.</p>
<p>— PJC Web Designs</p>
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendWelcome(to, name, packageName string, amount float64) error {
	data := WelcomeEmailData{
		Name:        name,
		PackageName: packageName,
		Amount:      amount,
	}

	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering welcome email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your PJC Web Designs order is confirmed")
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending welcome email: %w", err)
	}
	return nil
}
