package notifications

import (
	"fmt"
	"html"
	"strings"

	"github.com/pureaura/clinic-backend/models"
)

// nl2br escapes user-supplied text and converts line breaks to markup so
// free-text fields cannot smuggle HTML into the rendered message.
func nl2br(s string) string {
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

func (d *Dispatcher) clinicSignature() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<p>📍 %s</p><p>📞 %s</p>", nl2br(d.Clinic.Address), nl2br(d.Clinic.Phone))
	if d.Clinic.Hours != "" {
		fmt.Fprintf(&sb, "<p>🕐 %s</p>", nl2br(d.Clinic.Hours))
	}
	fmt.Fprintf(&sb, "<br><p>Best regards,<br>%s Team</p>", nl2br(d.Clinic.Name))
	return sb.String()
}

func bookingOperatorBody(b *models.Booking) string {
	var sb strings.Builder
	sb.WriteString("<h2>New Booking Request</h2>")
	fmt.Fprintf(&sb, "<p><strong>Name:</strong> %s</p>", nl2br(b.CustomerName))
	fmt.Fprintf(&sb, "<p><strong>Email:</strong> %s</p>", nl2br(b.CustomerEmail))
	fmt.Fprintf(&sb, "<p><strong>Phone:</strong> %s</p>", nl2br(b.CustomerPhone))
	fmt.Fprintf(&sb, "<p><strong>Service:</strong> %s</p>", nl2br(b.ServiceName))
	fmt.Fprintf(&sb, "<p><strong>Date:</strong> %s</p>", b.AppointmentDate.Format("2006-01-02"))
	fmt.Fprintf(&sb, "<p><strong>Time:</strong> %s</p>", nl2br(b.AppointmentTime))
	if b.Message != "" {
		fmt.Fprintf(&sb, "<p><strong>Message:</strong> %s</p>", nl2br(b.Message))
	}
	fmt.Fprintf(&sb, "<p><em>Status: %s</em></p>", b.Status)
	return sb.String()
}

func (d *Dispatcher) bookingAckBody(b *models.Booking) string {
	return fmt.Sprintf(
		"<h2>Thank You for Your Booking Request!</h2>"+
			"<p>Dear %s,</p>"+
			"<p>We have received your request for <strong>%s</strong> on %s at %s.</p>"+
			"<p>We will confirm your appointment within 24 hours.</p>"+
			"<br><p>Visit us at:</p>%s",
		nl2br(b.CustomerName), nl2br(b.ServiceName),
		b.AppointmentDate.Format("2006-01-02"), nl2br(b.AppointmentTime),
		d.clinicSignature(),
	)
}

func contactOperatorBody(msg ContactPayload) string {
	var sb strings.Builder
	sb.WriteString("<h2>New Contact Form Message</h2>")
	fmt.Fprintf(&sb, "<p><strong>Name:</strong> %s</p>", nl2br(msg.Name))
	fmt.Fprintf(&sb, "<p><strong>Email:</strong> %s</p>", nl2br(msg.Email))
	if msg.Phone != "" {
		fmt.Fprintf(&sb, "<p><strong>Phone:</strong> %s</p>", nl2br(msg.Phone))
	}
	if msg.Subject != "" {
		fmt.Fprintf(&sb, "<p><strong>Subject:</strong> %s</p>", nl2br(msg.Subject))
	}
	fmt.Fprintf(&sb, "<p><strong>Message:</strong></p><p>%s</p>", nl2br(msg.Message))
	return sb.String()
}

func (d *Dispatcher) contactAckBody(msg ContactPayload) string {
	return fmt.Sprintf(
		"<h2>We Received Your Message</h2>"+
			"<p>Dear %s,</p>"+
			"<p>Thank you for contacting %s. We will get back to you within 24 hours.</p>"+
			"<br>%s",
		nl2br(msg.Name), nl2br(d.Clinic.Name), d.clinicSignature(),
	)
}

func newsletterOperatorBody(email, name string) string {
	var sb strings.Builder
	sb.WriteString("<h2>New Newsletter Subscription</h2>")
	fmt.Fprintf(&sb, "<p><strong>Email:</strong> %s</p>", nl2br(email))
	if name != "" {
		fmt.Fprintf(&sb, "<p><strong>Name:</strong> %s</p>", nl2br(name))
	}
	sb.WriteString("<p><em>Subscribed via Pure Aura Clinic website</em></p>")
	return sb.String()
}

func (d *Dispatcher) newsletterWelcomeBody(name string) string {
	greeting := "<p>Hello!</p>"
	if name != "" {
		greeting = fmt.Sprintf("<p>Dear %s,</p>", nl2br(name))
	}
	return fmt.Sprintf(
		"<h2>Welcome to Our Newsletter!</h2>"+
			"%s"+
			"<p>Thank you for subscribing to the %s newsletter.</p>"+
			"<p>You'll receive updates about:</p>"+
			"<ul>"+
			"<li>✨ New treatments and services</li>"+
			"<li>💄 Beauty tips and skincare advice</li>"+
			"<li>🎉 Special offers and promotions</li>"+
			"<li>📅 Upcoming events and workshops</li>"+
			"</ul>"+
			"<br><p>Visit us at:</p>%s",
		greeting, nl2br(d.Clinic.Name), d.clinicSignature(),
	)
}

func pendingDigestBody(bookings []models.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h2>Pending Booking Requests: %d</h2>", len(bookings))
	sb.WriteString("<p>The following booking requests from the last 24 hours are still awaiting confirmation:</p><ul>")
	for _, b := range bookings {
		fmt.Fprintf(&sb, "<li>%s — %s on %s at %s</li>",
			nl2br(b.CustomerName), nl2br(b.ServiceName),
			b.AppointmentDate.Format("2006-01-02"), nl2br(b.AppointmentTime))
	}
	sb.WriteString("</ul>")
	return sb.String()
}
