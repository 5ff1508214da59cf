package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

func smtpConfig() (host, port, from, pass string) {
	host = os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port = os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from = os.Getenv("EMAIL_USER")
	pass = os.Getenv("EMAIL_PASSWORD")
	return
}

func send(toEmail, subject, body string) error {
	host, port, from, pass := smtpConfig()

	msg := []byte("From: Travel Itinerary <" + from + ">\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body)

	auth := smtp.PlainAuth("", from, pass, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{toEmail}, msg)
}

// SendPasswordResetEmail mails the reset link. The link expires in 30 minutes.
func SendPasswordResetEmail(toEmail, resetURL string) error {
	body := fmt.Sprintf(
		"We received a request to reset your password.\n\n"+
			"Open the link below to create a new password:\n\n%s\n\n"+
			"This link will expire in 30 minutes. If you didn't request a "+
			"password reset, please ignore this email.\n", resetURL)
	return send(toEmail, "Password Reset Link - Travel Itinerary", body)
}

func SendWelcomeEmail(toEmail, userName string) error {
	body := fmt.Sprintf(
		"Welcome, %s!\n\n"+
			"Thank you for creating an account with Travel Itinerary. "+
			"You can now create custom itineraries, organize activities by day "+
			"and get personalized recommendations.\n", userName)
	return send(toEmail, "Welcome to Travel Itinerary!", body)
}
