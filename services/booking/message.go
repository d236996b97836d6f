package booking

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"katwate/models"
	"katwate/utils"
)

const rule = "----------------------------------"

// ReservationMessage renders the WhatsApp text for a reservation request.
func (s *DefaultBookingService) ReservationMessage(req models.ReservationRequest, roomLabel string, b models.PriceBreakdown) string {
	var sb strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&sb, "%-16s : %s\n", label, value)
	}

	sb.WriteString("New Reservation Request\n\n")
	sb.WriteString(s.ResortName + "\n")
	sb.WriteString(rule + "\n")
	line("Package Type", req.PackageType.Label())
	line("Room / Package", roomLabel)
	if req.PackageType == models.PackageNight {
		line("Check-in Date", req.CheckInDate)
		line("Check-out Date", req.CheckOutDate)
	} else {
		line("Date", req.CheckInDate)
	}
	line("Adults", fmt.Sprint(req.AdultCount))
	line("Children", fmt.Sprint(req.ChildCount))
	line("AC Option", yesNo(req.ACOption))
	if b.TotalPrice != nil {
		line("Estimated Price", utils.FormatRupees(*b.TotalPrice)+" (Inclusive of GST)")
	} else {
		line("Price", "To be confirmed")
	}
	if r := strings.TrimSpace(req.SpecialRequests); r != "" {
		line("Special Requests", r)
	}
	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("Thank you for the reservation request.\n")
	sb.WriteString("Kindly confirm availability at your earliest convenience.")
	return sb.String()
}

// EventMessage renders the WhatsApp text for an event enquiry.
func (s *DefaultBookingService) EventMessage(req models.EventEnquiry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New Event Enquiry from %s Website:\n", s.ResortName)
	fmt.Fprintf(&sb, "* Event Type: %s\n", capitalize(strings.TrimSpace(req.EventType)))
	fmt.Fprintf(&sb, "* Start Date: %s\n", req.CheckInDate)
	if req.CheckOutDate != "" {
		fmt.Fprintf(&sb, "* End Date: %s\n", req.CheckOutDate)
	}
	fmt.Fprintf(&sb, "* Adults: %d\n", req.Adults)
	fmt.Fprintf(&sb, "* Children: %d\n", req.Children)
	sb.WriteString("* Price: To be confirmed (inclusive of GST)\n")
	if r := strings.TrimSpace(req.SpecialRequests); r != "" {
		fmt.Fprintf(&sb, "* Special Requests: %s\n", r)
	}
	sb.WriteString("Thank you for your enquiry. We will confirm availability and pricing shortly.")
	return sb.String()
}

// WhatsAppLink builds a wa.me deep link carrying text.
func WhatsAppLink(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "https://wa.me/" + digits + "?text=" + encodeURIComponent(text)
}

// encodeURIComponent percent-encodes every byte except the characters left
// alone by JavaScript's encodeURIComponent.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
