package admin

import (
	"salonbook/models"
)

// policiesUpdated is the date the current policy texts took effect.
const policiesUpdated = "2025-01-15"

// LegalSections returns all policy documents.
func (a *DefaultAdminService) LegalSections() []models.LegalSection {
	return []models.LegalSection{
		{
			ID:       "tos",
			Title:    "Terms of Service",
			Summary:  "These terms govern bookings made through the Hair Style app.",
			Content:  termsOfService(),
			Audience: models.AudienceCustomer,
			Version:  "v1.0",
			Updated:  policiesUpdated,
		},
		{
			ID:       "privacy",
			Title:    "Privacy Policy",
			Summary:  "How Hair Style collects and uses personal data.",
			Content:  privacyPolicy(),
			Audience: models.AudienceAll,
			Version:  "v1.0",
			Updated:  policiesUpdated,
		},
		{
			ID:       "cancellation",
			Title:    "Payment & Cancellation Policy",
			Summary:  "How online payments, in-store payments and cancellations work.",
			Content:  cancellationPolicy(),
			Audience: models.AudienceAll,
			Version:  "v1.0",
			Updated:  policiesUpdated,
		},
		{
			ID:       "client-notes",
			Title:    "Client Notes Guidelines",
			Summary:  "What staff may record about clients and how.",
			Content:  clientNotesGuidelines(),
			Audience: models.AudienceStaff,
			Version:  "v1.0",
			Updated:  policiesUpdated,
		},
	}
}

// LegalSectionsFor returns the documents relevant to audience.
func (a *DefaultAdminService) LegalSectionsFor(audience string) []models.LegalSection {
	filtered := []models.LegalSection{}
	for _, section := range a.LegalSections() {
		if section.Audience == models.AudienceAll || section.Audience == audience {
			filtered = append(filtered, section)
		}
	}
	return filtered
}

func termsOfService() string {
	return `By booking through the Hair Style app you agree to these Terms of Service.

1. Accounts: You are responsible for the accuracy of your contact details.
2. Bookings: An appointment is reserved for the staff member, date and time you select.
3. Prices: Prices shown include applicable discounts and are charged in euro.
4. Loyalty: Points are earned on the amount paid and have no cash value.
5. Conduct: Repeated no-shows may lead to online booking being disabled.`
}

func privacyPolicy() string {
	return `Hair Style collects only the data needed to manage your appointments.

1. Data We Collect: Name, email, phone number, booking history, loyalty balance.
2. How We Use It: Scheduling, reminders, payments and receipts.
3. Third Parties: Stripe (payments) and our email provider (confirmations and reminders).
4. Rights: You can request a copy or deletion of your data at the front desk.`
}

func cancellationPolicy() string {
	return `1. Online payments are processed securely by Stripe and receive an extra discount.
2. Unpaid online bookings are released if the payment is not completed within 30 minutes.
3. In-store payments are settled at the end of your visit.
4. Pending and confirmed appointments can be cancelled from the app.
5. Points redeemed on a booking that is never paid are returned to your balance.`
}

func clientNotesGuidelines() string {
	return `- Record colour formulas, allergies and preferences only.
- Keep notes factual and professional.
- Never record payment details in notes.
- Allergy notes must be checked before every chemical service.`
}
