package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"streeskill/config"
)

func sendHTMLEmail(to, subjectLine, body string) error {
	if config.AppConfig.EmailSender == "" {
		// Mail is optional; skip silently when no sender is configured
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	subject := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subjectLine)
	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}

	return nil
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome to StreeSkill, %s!</h2>
					<p style="font-size: 16px; color: #555555;">Your account is ready. Pick a course, watch a few reels, and start learning a skill you can earn from.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Thank you for joining us.</p>
				</div>
			</body>
		</html>
	`, name)

	return sendHTMLEmail(email, "Welcome to StreeSkill", body)
}

// SendOrderStatusEmail notifies a seller that one of their orders changed status
func SendOrderStatusEmail(email, productTitle, status string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Order Update</h2>
					<p style="font-size: 16px; color: #555555;">Your order for <b>%s</b> is now <b>%s</b>.</p>
				</div>
			</body>
		</html>
	`, productTitle, status)

	return sendHTMLEmail(email, "StreeSkill Order Update", body)
}

// SendUnreadDigestEmail tells a user how many notifications await them
func SendUnreadDigestEmail(email, name string, count int64) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Hi %s</h2>
					<p style="font-size: 16px; color: #555555;">You have <b>%d</b> unread notification(s) waiting in StreeSkill.</p>
				</div>
			</body>
		</html>
	`, name, count)

	return sendHTMLEmail(email, "You have unread notifications", body)
}
