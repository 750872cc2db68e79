package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"elms/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email. SendGrid is used when an API key is
// configured, SMTP otherwise. Callers fire this from a goroutine; failures
// are logged, never surfaced to the request.
func SendEmail(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig
	if cfg.SendGridAPIKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	if cfg.EmailSender == "" {
		log.Printf("Email transport not configured, skipping: %s", subject)
		return nil
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject, htmlBody string) error {
	cfg := config.AppConfig
	from := mail.NewEmail("LearnSphere", cfg.EmailSender)

	for _, rcpt := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", rcpt), "", htmlBody)
		client := sendgrid.NewSendClient(cfg.SendGridAPIKey)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email (%d): %s", resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid status %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnSphere <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// HTML wrapper shared by every outbound email
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B5C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B5C; line-height: 1.6; }
			.content h2 { color: #1A2B5C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #4A90D9; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4A90D9; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNSPHERE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnSphere. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to LearnSphere"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>LearnSphere</strong>! Your account has been created.</p>
		<p>Browse the course catalog, pick a session, and start learning.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment confirmation
func SendEnrollmentEmail(email, name, courseTitle string, sessionDate time.Time) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Session date:</strong> %s
		</div>
		<p>The meeting link is available on your dashboard.</p>
	`, name, courseTitle, sessionDate.Format("Mon, 02 Jan 2006 15:04 MST"))

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Confirmed", body))
}

// 3. Enrollment cancellation
func SendEnrollmentCancelledEmail(email, name, courseTitle string) {
	subject := "Enrollment Cancelled: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your enrollment in <strong>%s</strong> has been cancelled.</p>
		<p>You can re-enroll any time while seats remain.</p>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Cancelled", body))
}

// 4. Course approved (to trainer)
func SendCourseApprovedEmail(trainerEmail, trainerName, courseTitle string) {
	subject := "Course Approved: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Great news! Your course <strong>%s</strong> has been APPROVED.</p>
		<p>It is now visible in the public catalog and open for enrollment.</p>
	`, trainerName, courseTitle)

	go SendEmail([]string{trainerEmail}, subject, getEmailTemplate("Course Approved", body))
}

// 5. Course rejected (to trainer)
func SendCourseRejectedEmail(trainerEmail, trainerName, courseTitle, reason string) {
	subject := "Course Rejected: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, your course <strong>%s</strong> was rejected.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>Please make the necessary changes and submit again.</p>
	`, trainerName, courseTitle, reason)

	go SendEmail([]string{trainerEmail}, subject, getEmailTemplate("Course Rejected", body))
}

// 6. Payment status update
func SendPaymentStatusEmail(email, name, description, status string) {
	subject := fmt.Sprintf("Payment %s: %s", status, description)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment for <strong>%s</strong> is now <strong>%s</strong>.</p>
		<p>Check your dashboard for details.</p>
	`, name, description, status)

	go SendEmail([]string{email}, subject, getEmailTemplate("Payment Update", body))
}

// 7. Subscription activated
func SendSubscriptionEmail(email, name, planName string, endDate time.Time) {
	subject := "Subscription Active: " + planName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> subscription is active until <strong>%s</strong>.</p>
		<p>You can now enroll in any approved course session.</p>
	`, name, planName, endDate.Format("02 Jan 2006"))

	go SendEmail([]string{email}, subject, getEmailTemplate("Subscription Active", body))
}

// 8. Subscription expiry reminder
func SendSubscriptionExpiryReminder(email, name string, endDate *time.Time) {
	subject := "Your subscription expires soon"
	when := "soon"
	if endDate != nil {
		when = endDate.Format("02 Jan 2006")
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your subscription expires on <strong>%s</strong>.</p>
		<div class="info-box">Renew now to keep access to live sessions.</div>
		<a href="#" class="btn">Renew Subscription</a>
	`, name, when)

	go SendEmail([]string{email}, subject, getEmailTemplate("Subscription Expiring", body))
}

// 9. Password reset
func SendPasswordResetEmail(email, name, token string) {
	subject := "Reset your LearnSphere password"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to reset your password. Use the token below within the next hour:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>If you did not request this, you can safely ignore this email.</p>
	`, name, token)

	go SendEmail([]string{email}, subject, getEmailTemplate("Password Reset", body))
}
