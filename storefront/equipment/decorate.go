package equipment

import (
	"errors"
	"fmt"
	"time"
)

// Decoration types accepted by Decorate
const (
	DecorationWarranty     = "warranty"
	DecorationInstallation = "installation"
	DecorationMaintenance  = "maintenance"
	DecorationInsurance    = "insurance"
	DecorationPremium      = "premium"
)

const defaultMaintenanceVisits = 12

// ErrUnknownDecoration is returned for an unsupported decoration type
var ErrUnknownDecoration = errors.New("invalid decoration type")

// Decoration is a request to add one feature (or the premium bundle) to an item
type Decoration struct {
	Type              string `json:"decoration_type"`
	WarrantyMonths    int    `json:"warranty_months,omitempty"`
	MaintenanceVisits int    `json:"maintenance_visits,omitempty"`
	InsuranceLevel    string `json:"insurance_level,omitempty"`
}

// Decorate applies d to item. now is used as the installation date.
func Decorate(item Item, d Decoration, now time.Time) (Item, error) {
	switch d.Type {
	case DecorationWarranty:
		years := d.WarrantyMonths / 12
		if years < 1 {
			years = 1
		}
		return WithWarranty(item, years)
	case DecorationInstallation:
		return WithInstallation(item, now), nil
	case DecorationMaintenance:
		visits := d.MaintenanceVisits
		if visits == 0 {
			visits = defaultMaintenanceVisits
		}
		return WithMaintenance(item, visits)
	case DecorationInsurance:
		level := d.InsuranceLevel
		if level == "" {
			level = InsuranceBasic
		}
		return WithInsurance(item, level), nil
	case DecorationPremium:
		return WithPremiumPackage(item, now), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDecoration, d.Type)
}
