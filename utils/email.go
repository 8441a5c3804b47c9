package utils

import (
	"fmt"

	"github.com/betterspace/better-space-api/config"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.C.EmailUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		config.C.SMTPHost,
		config.C.SMTPPort,
		config.C.EmailUser,
		config.C.EmailPass,
	)

	return d.DialAndSend(m)
}

// SendOTPEmail delivers a one-time code to the user.
func SendOTPEmail(to, code string) error {
	body := fmt.Sprintf(`
		<html>
			<body>
				<h2>Better Space OTP Verification</h2>
				<p>Your One-Time Password (OTP) is:</p>
				<h1 style="color: #007bff; letter-spacing: 5px;">%s</h1>
				<p>This code will expire in %d minutes.</p>
				<p>If you did not request this code, please ignore this email.</p>
				<br>
				<p>Best regards,<br>Better Space Team</p>
			</body>
		</html>
	`, code, config.C.OTPTTLMin)

	return SendEmail(to, "Better Space - Your OTP Verification Code", body)
}
