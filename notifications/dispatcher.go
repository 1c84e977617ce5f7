package notifications

import (
	"fmt"
	"log"

	"github.com/pureaura/clinic-backend/models"
)

// ClinicInfo carries the display details rendered into submitter-facing
// messages, loaded from the settings table at startup.
type ClinicInfo struct {
	Name    string
	Address string
	Phone   string
	Hours   string
}

type ContactPayload struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Dispatcher renders and transmits the operator/submitter message pair for
// each notification event. Transport failures are logged and absorbed here;
// they never reach the triggering request, the persisted record is the
// source of truth.
type Dispatcher struct {
	Mailer        Mailer
	OperatorEmail string
	Clinic        ClinicInfo
}

func NewDispatcher(mailer Mailer, operatorEmail string, clinic ClinicInfo) *Dispatcher {
	return &Dispatcher{
		Mailer:        mailer,
		OperatorEmail: operatorEmail,
		Clinic:        clinic,
	}
}

func (d *Dispatcher) deliver(event, toName, toEmail, subject, htmlContent string) {
	if err := d.Mailer.Send(toName, toEmail, subject, htmlContent); err != nil {
		log.Printf("🔥 Failed to send %s email to %s: %v", event, toEmail, err)
		return
	}
	log.Printf("✅ Sent %s email to %s", event, toEmail)
}

func (d *Dispatcher) BookingCreated(b *models.Booking) {
	d.deliver("booking-created", d.Clinic.Name, d.OperatorEmail,
		fmt.Sprintf("New Booking Request: %s", b.ServiceName),
		bookingOperatorBody(b))
	d.deliver("booking-created", b.CustomerName, b.CustomerEmail,
		fmt.Sprintf("Your Booking Request at %s", d.Clinic.Name),
		d.bookingAckBody(b))
}

func (d *Dispatcher) ContactMessage(msg ContactPayload) {
	subject := "New Contact Form Message"
	if msg.Subject != "" {
		subject = fmt.Sprintf("Contact Form: %s", msg.Subject)
	}
	d.deliver("contact", d.Clinic.Name, d.OperatorEmail, subject, contactOperatorBody(msg))
	d.deliver("contact", msg.Name, msg.Email,
		fmt.Sprintf("We Received Your Message - %s", d.Clinic.Name),
		d.contactAckBody(msg))
}

func (d *Dispatcher) NewsletterSignup(email, name string) {
	d.deliver("newsletter", d.Clinic.Name, d.OperatorEmail,
		"New Newsletter Subscription", newsletterOperatorBody(email, name))
	d.deliver("newsletter", name, email,
		fmt.Sprintf("Welcome to %s Newsletter", d.Clinic.Name),
		d.newsletterWelcomeBody(name))
}

func (d *Dispatcher) PendingBookingsDigest(bookings []models.Booking) {
	d.deliver("pending-digest", d.Clinic.Name, d.OperatorEmail,
		fmt.Sprintf("Daily Digest: %d Pending Booking Request(s)", len(bookings)),
		pendingDigestBody(bookings))
}
