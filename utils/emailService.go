package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"lms/config"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Learnly <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	fmt.Printf("--- Sending Email ---\nTo: %v\nSubject: %s\nFrom: %s\n", to, subject, from)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	fmt.Println("--- Email Sent Successfully ---")
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.content h2 { color: #1A1A40; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #28A745; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #28A745; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNLY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Learnly. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a new learner after signup
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to Learnly! Your account is ready.</p>
		<p>Browse our catalog, enroll in a course and start learning today.</p>
	`, name)
	go SendEmail([]string{email}, "Welcome to Learnly!", getEmailTemplate("Welcome Aboard", body))
}

// SendOTPEmail delivers a one-time password
func SendOTPEmail(email, name, otp string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your one-time password is:</p>
		<div class="info-box"><strong style="font-size: 22px; letter-spacing: 4px;">%s</strong></div>
		<p>The code is valid for 10 minutes. If you did not request it, you can ignore this email.</p>
	`, name, otp)
	return SendEmail([]string{email}, "Your Learnly Verification Code", getEmailTemplate("Verification Code", body))
}

// SendCourseCompletedEmail congratulates a learner on finishing a course
func SendCourseCompletedEmail(email, name, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You have completed <strong>%s</strong>.</p>
		<p>You can now request your certificate from your dashboard.</p>
	`, name, courseTitle)
	return SendEmail([]string{email}, "Course Completed!", getEmailTemplate("Congratulations!", body))
}

// SendCertificateEmail notifies a learner their certificate was issued
func SendCertificateEmail(email, name, courseTitle, certNumber string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your certificate for <strong>%s</strong> has been issued.</p>
		<div class="info-box">Certificate Number: <strong>%s</strong></div>
		<p>You can download it from your dashboard at any time.</p>
	`, name, courseTitle, certNumber)
	return SendEmail([]string{email}, "Your Certificate is Ready!", getEmailTemplate("Certificate Issued", body))
}

// SendPaymentConfirmationEmail confirms a subscription purchase
func SendPaymentConfirmationEmail(email, name, planName string, expiresAt *time.Time) {
	expiryStr := ""
	if expiresAt != nil {
		expiryStr = fmt.Sprintf("<p>Your access is valid until <strong>%s</strong>.</p>", expiresAt.Format("January 2, 2006"))
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment for the <strong>%s</strong> plan was successful.</p>
		%s
		<p>Premium courses are now unlocked for your account.</p>
	`, name, planName, expiryStr)
	go SendEmail([]string{email}, "Payment Confirmed", getEmailTemplate("Payment Successful", body))
}

// SendSubscriptionExpiryReminder warns a learner before their plan expires
func SendSubscriptionExpiryReminder(email, name, planName string, expiresAt *time.Time) {
	expiryStr := "soon"
	if expiresAt != nil {
		expiryStr = expiresAt.Format("January 2, 2006")
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your <strong>%s</strong> plan expires on <strong>%s</strong>.</p>
		<p>Renew before then to keep access to your premium courses.</p>
	`, name, planName, expiryStr)
	go SendEmail([]string{email}, "Your Learnly Plan is Expiring Soon", getEmailTemplate("Subscription Expiring", body))
}

// SendSubscriptionExpiredEmail tells a learner their plan has expired
func SendSubscriptionExpiredEmail(email, name, planName string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your <strong>%s</strong> plan has expired.</p>
		<p>Your progress is saved. Renew any time to pick up where you left off.</p>
	`, name, planName)
	go SendEmail([]string{email}, "Your Learnly Plan Has Expired", getEmailTemplate("Subscription Expired", body))
}
