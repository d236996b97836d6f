package guest

import (
	"regexp"
	"strings"
	"time"

	"katwate/models"
	"katwate/utils"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern     = regexp.MustCompile(`^\+?\d{10,12}$`)
	passportPattern   = regexp.MustCompile(`^[A-Za-z0-9]{6,9}$`)
	licensePattern    = regexp.MustCompile(`^[A-Za-z0-9]{8,16}$`)
	nationalIDPattern = regexp.MustCompile(`^\d{8,12}$`)
)

var roomTypeNames = map[string]string{
	"single":      "Single Room",
	"double":      "Double Room",
	"suite":       "Suite",
	"single room": "Single Room",
	"double room": "Double Room",
}

// normalizeRoomType maps the loose spellings staff type into the canonical
// room category names. Unknown values are kept as entered.
func normalizeRoomType(roomType string) string {
	if name, ok := roomTypeNames[strings.ToLower(strings.TrimSpace(roomType))]; ok {
		return name
	}
	return roomType
}

var statuses = []string{models.StatusConfirmed, models.StatusCheckedIn, models.StatusCheckedOut}

// validate checks g. Past check-in dates are only refused for new guests so
// that existing stays can still be checked out.
func validate(g *models.Guest, today string, isNew bool) error {
	if strings.TrimSpace(g.Name) == "" || strings.TrimSpace(g.Email) == "" ||
		strings.TrimSpace(g.CheckIn) == "" || strings.TrimSpace(g.RoomType) == "" {
		return utils.NewValidationError("Missing required guest fields: name, email, checkIn, roomType")
	}
	if !emailPattern.MatchString(g.Email) {
		return utils.NewValidationError("Invalid email format")
	}
	if g.Mobile != "" && !mobilePattern.MatchString(g.Mobile) {
		return utils.NewValidationError("Invalid mobile number. Must be 10-12 digits")
	}
	if err := validateIdentity(g.IDType, g.IDNumber); err != nil {
		return err
	}
	if g.NumberOfGuests < 0 {
		return utils.NewValidationError("Number of guests cannot be negative")
	}

	if _, err := time.Parse(utils.DateLayout, g.CheckIn); err != nil {
		return utils.NewValidationError("Invalid check-in date")
	}
	if isNew && g.CheckIn < today {
		return utils.NewValidationError("Check-in date cannot be in the past")
	}
	if g.CheckOut != "" {
		if _, err := time.Parse(utils.DateLayout, g.CheckOut); err != nil {
			return utils.NewValidationError("Invalid check-out date")
		}
		if g.CheckOut <= g.CheckIn {
			return utils.NewValidationError("Check-out date must be after check-in date")
		}
	}

	if g.Status == "" {
		g.Status = models.StatusConfirmed
	}
	for _, st := range statuses {
		if g.Status == st {
			return nil
		}
	}
	return utils.NewValidationError("Invalid status")
}

func validateIdentity(idType, idNumber string) error {
	if idType == "" && idNumber == "" {
		return nil
	}
	if idType == "" || idNumber == "" {
		return utils.NewValidationError("Both ID type and ID number must be provided together")
	}
	switch strings.ToLower(idType) {
	case "passport":
		if !passportPattern.MatchString(idNumber) {
			return utils.NewValidationError("Invalid passport number. Must be 6-9 alphanumeric characters")
		}
	case "driver license":
		if !licensePattern.MatchString(idNumber) {
			return utils.NewValidationError("Invalid driver's license number. Must be 8-16 alphanumeric characters")
		}
	case "national id":
		if !nationalIDPattern.MatchString(idNumber) {
			return utils.NewValidationError("Invalid national ID number. Must be 8-12 digits")
		}
	default:
		return utils.NewValidationError("Unsupported ID type")
	}
	return nil
}
