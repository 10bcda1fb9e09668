package mail

type WelcomeEmailData struct {
	Name        string
	PackageName string
	Amount      float64
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
