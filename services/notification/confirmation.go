package notification

import (
	"fmt"
	"strings"

	"salonbook/models"
)

// BookingConfirmation builds the email sent after checkout. Prices are rendered by formatPrice.
func BookingConfirmation(profile models.Profile, appt models.Appointment, staffName string, formatPrice func(int64) string) models.EmailMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Ciao %s,\n\n", firstName(profile.FullName))
	fmt.Fprintf(&b, "your appointment on %s at %s with %s is %s.\n\n", appt.Date, appt.StartTime, staffName, statusText(appt.Status))
	for _, s := range appt.Services {
		fmt.Fprintf(&b, "- %s (%d min) %s\n", s.ServiceName, s.DurationMin, formatPrice(s.Price))
	}
	for _, p := range appt.Products {
		fmt.Fprintf(&b, "- %s x%d %s\n", p.ProductName, p.Quantity, formatPrice(p.Price*int64(p.Quantity)))
	}
	fmt.Fprintf(&b, "\nTotal: %s", formatPrice(appt.TotalPrice))
	switch {
	case appt.PaymentMethod == models.PaymentOnline && appt.PaymentStatus == models.PaymentPaid:
		b.WriteString(" (paid online)")
	case appt.PaymentMethod == models.PaymentOnline:
		b.WriteString(" (awaiting online payment)")
	default:
		b.WriteString(" (to pay in store)")
	}
	b.WriteString("\n\nSee you soon!\nHair Style")

	return models.EmailMessage{
		To:      profile.Email,
		ToName:  profile.FullName,
		Subject: fmt.Sprintf("Appointment %s - %s %s", statusText(appt.Status), appt.Date, appt.StartTime),
		Body:    b.String(),
	}
}

func statusText(status string) string {
	if status == models.StatusConfirmed {
		return "confirmed"
	}
	return "requested"
}

func firstName(full string) string {
	if f := strings.Fields(full); len(f) > 0 {
		return f[0]
	}
	return "there"
}

// AppointmentReminder builds the email sent the day before a visit.
func AppointmentReminder(profile models.Profile, appt models.Appointment, staffName string) models.EmailMessage {
	names := make([]string, len(appt.Services))
	for i, s := range appt.Services {
		names[i] = s.ServiceName
	}
	body := fmt.Sprintf("Ciao %s,\n\nthis is a reminder of your appointment on %s at %s with %s (%s).\n\n"+
		"If you cannot make it, please cancel from the app.\n\nHair Style",
		firstName(profile.FullName), appt.Date, appt.StartTime, staffName, strings.Join(names, ", "))

	return models.EmailMessage{
		To:      profile.Email,
		ToName:  profile.FullName,
		Subject: fmt.Sprintf("Reminder: your appointment on %s at %s", appt.Date, appt.StartTime),
		Body:    body,
	}
}
