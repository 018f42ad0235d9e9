package services

import (
	"regexp"
	"strings"
)

// Carrier tags produced by CarrierClassifier.
const (
	CarrierUPS    = "UPS"
	CarrierFedEx  = "FedEx"
	CarrierDHL    = "DHL"
	CarrierUSPS   = "USPS"
	CarrierAmazon = "Amazon Logistics"
)

// trackingURLTemplates maps a carrier tag to its tracking URL prefix.
func trackingURLTemplates() map[string]string {
	return map[string]string{
		CarrierUPS:    "https://www.ups.com/track?tracknum=",
		CarrierFedEx:  "https://www.fedex.com/fedextrack/?trknbr=",
		CarrierDHL:    "https://www.dhl.com/en/express/tracking.html?AWB=",
		CarrierUSPS:   "https://tools.usps.com/go/TrackConfirmAction?tLabels=",
		CarrierAmazon: "https://track.amazon.com/tracking/",
	}
}

var (
	upsShipmentNumber = regexp.MustCompile(`^1Z[A-Z0-9]{16}$`)
	upsNumeric        = regexp.MustCompile(`^\d{18}$`)
	upsInternational  = regexp.MustCompile(`^[A-Z]{2}\d{9}US$`)

	fedexNumeric  = regexp.MustCompile(`^(\d{12}|\d{14}|\d{15}|\d{20}|\d{22})$`)
	fedexPrefixed = regexp.MustCompile(`^(96|0[2-9])\d{10,20}$`)

	dhlNumeric  = regexp.MustCompile(`^\d{10,11}$`)
	dhlPrefixed = regexp.MustCompile(`^(JJD|JVGL|GM|LX|RX)\d{10,20}$`)

	uspsNumeric       = regexp.MustCompile(`^(94|92|93|82|71|61|42|41|40|23|03|02|01)\d{18,24}$`)
	uspsInternational = regexp.MustCompile(`^[A-Z]{2}\d{9}US$`)
	uspsPrefix        = regexp.MustCompile(`^(94|92|93|82|71|61|42|41|40|23|03|02|01)`)

	amazonNumber = regexp.MustCompile(`^TBA\d{12,13}$`)
)

// CarrierClassifier is a domain service mapping a tracking-number string
// to a carrier tag and a tracking URL. Both operations are total and
// side-effect-free: any input yields a result, never an error.
//
// Pattern rules are evaluated in a fixed priority order: UPS, FedEx, DHL,
// USPS, Amazon Logistics. Unrecognized numbers default to USPS, the most
// common domestic carrier.
type CarrierClassifier struct{}

// NewCarrierClassifier creates a new CarrierClassifier instance.
func NewCarrierClassifier() CarrierClassifier {
	return CarrierClassifier{}
}

// Classify returns the carrier tag for a tracking number.
//
// Recognized shapes, in priority order:
//   - UPS: "1Z" + 16 alphanumerics, 18 digits, or 2 letters + 9 digits + "US"
//   - FedEx: 12/14/15/20/22 digits not carrying a USPS service prefix,
//     or "96"/"02"-"09" prefixed digit runs
//   - DHL: 10-11 digits, or "JJD"/"JVGL"/"GM"/"LX"/"RX" prefixed digit runs
//   - USPS: a USPS service prefix followed by 18-24 digits,
//     or 2 letters + 9 digits + "US"
//   - Amazon Logistics: "TBA" + 12-13 digits
//
// Anything else defaults to USPS. All whitespace is stripped and the
// input upper-cased first; carriers print numbers with internal spaces.
func (CarrierClassifier) Classify(trackingNumber string) string {
	number := strings.ToUpper(strings.Join(strings.Fields(trackingNumber), ""))

	switch {
	case upsShipmentNumber.MatchString(number),
		upsNumeric.MatchString(number),
		upsInternational.MatchString(number):
		return CarrierUPS

	case fedexNumeric.MatchString(number) && !uspsPrefix.MatchString(number),
		fedexPrefixed.MatchString(number):
		return CarrierFedEx

	case dhlNumeric.MatchString(number),
		dhlPrefixed.MatchString(number):
		return CarrierDHL

	case uspsNumeric.MatchString(number),
		uspsInternational.MatchString(number):
		return CarrierUSPS

	case amazonNumber.MatchString(number):
		return CarrierAmazon

	default:
		return CarrierUSPS
	}
}

// TrackingURL builds the carrier-specific tracking URL for a number.
// The carrier tag is matched case-insensitively; unknown carriers and
// empty numbers yield the placeholder "#".
func (CarrierClassifier) TrackingURL(trackingNumber, carrier string) string {
	if trackingNumber == "" {
		return "#"
	}
	for tag, template := range trackingURLTemplates() {
		if strings.EqualFold(tag, carrier) {
			return template + trackingNumber
		}
	}
	return "#"
}
