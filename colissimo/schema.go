package colissimo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

//Constants enforced by the SoColissimo specification
const (
	returnTypePDF    = "CreatePDFFile"
	serviceTypeSO    = "SO"
	defaultLanguage  = "FR"
	defaultAlert     = "none"
	insuranceRange   = "00"
	defaultDelivery  = "DOM"
	validationOffset = 7 * 24 * time.Hour
	dateTimeFormat   = "2006-01-02T15:04:05"
)

//DeliveryModes accepted by ParcelVO
var DeliveryModes = []string{"DOM", "RDV", "BPR", "ACP", "CDI", "A2P", "MRL", "CIT", "DOS", "CMT", "BDP"}

//Countries accepted by AddressVO
var Countries = []string{"FR", "MC"}

//Civilities accepted by AddressVO
var Civilities = []string{"M", "Mlle", "Mme"}

type schemaErrors struct {
	schema string
	fields []string
}

func (s *schemaErrors) addf(format string, args ...interface{}) {
	s.fields = append(s.fields, fmt.Sprintf(format, args...))
}

func (s *schemaErrors) err() error {
	if len(s.fields) == 0 {
		return nil
	}
	return &ValidationError{Schema: s.schema, Fields: s.fields}
}

func inChoices(value string, choices []string) bool {
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}

// buildLetter validates the caller fields, applies schema defaults and
// constants and merges everything into the full letter payload.
func buildLetter(creds Credentials, service ServiceCallContext, parcel Parcel, recipient Recipient, sender Sender) (letterVO, error) {
	svc, err := service.build()
	if err != nil {
		return letterVO{}, err
	}
	prc, err := parcel.build()
	if err != nil {
		return letterVO{}, err
	}
	dest, err := recipient.build()
	if err != nil {
		return letterVO{}, err
	}
	exp, err := sender.build()
	if err != nil {
		return letterVO{}, err
	}
	return letterVO{
		Password:       creds.Password,
		ContractNumber: creds.ContractNumber,
		Service:        svc,
		Parcel:         prc,
		Dest:           dest,
		Exp:            exp,
	}, nil
}

func (s ServiceCallContext) build() (serviceCallContextVO, error) {
	errs := &schemaErrors{schema: "ServiceCallContextV2"}
	if s.DateDeposite.IsZero() {
		errs.addf("dateDeposite is required")
	}
	if s.CommercialName == "" {
		errs.addf("commercialName is required")
	}
	if s.VATCode != nil && (*s.VATCode < 0 || *s.VATCode > 2) {
		errs.addf("VATCode %d is not a valid choice", *s.VATCode)
	}
	if s.VATPercentage != nil && (*s.VATPercentage < 0 || *s.VATPercentage > 9999) {
		errs.addf("VATPercentage %d is out of range", *s.VATPercentage)
	}
	if s.VATAmount != nil && *s.VATAmount < 0 {
		errs.addf("VATAmount must not be negative")
	}
	if s.TransportationAmount != nil && *s.TransportationAmount < 0 {
		errs.addf("transportationAmount must not be negative")
	}
	if s.TotalAmount != nil && *s.TotalAmount < 0 {
		errs.addf("totalAmount must not be negative")
	}
	if err := errs.err(); err != nil {
		return serviceCallContextVO{}, err
	}
	return serviceCallContextVO{
		DateDeposite:         s.DateDeposite.Format(dateTimeFormat),
		DateValidation:       time.Now().Add(validationOffset).Format(dateTimeFormat),
		ReturnType:           returnTypePDF,
		ServiceType:          serviceTypeSO,
		CRBT:                 false,
		PortPaye:             false,
		LanguageConsignor:    defaultLanguage,
		LanguageConsignee:    defaultLanguage,
		CommercialName:       s.CommercialName,
		VATCode:              s.VATCode,
		VATPercentage:        s.VATPercentage,
		VATAmount:            s.VATAmount,
		TransportationAmount: s.TransportationAmount,
		TotalAmount:          s.TotalAmount,
		CommandNumber:        s.CommandNumber,
	}, nil
}

func (p Parcel) build() (parcelVO, error) {
	errs := &schemaErrors{schema: "ParcelVO"}
	if p.Weight <= 0 {
		errs.addf("weight is required and must be positive")
	} else if p.Weight > 30 {
		errs.addf("weight must not exceed 30 kg")
	} else if math.Abs(p.Weight*100-math.Round(p.Weight*100)) > 1e-9 {
		errs.addf("weight allows 2 decimal places at most")
	}
	mode := p.DeliveryMode
	if mode == "" {
		mode = defaultDelivery
	} else if !inChoices(mode, DeliveryModes) {
		errs.addf("DeliveryMode %s is not a valid choice", mode)
	}
	if p.InsuranceValue != nil && *p.InsuranceValue < 0 {
		errs.addf("insuranceValue must not be negative")
	}
	if p.HorsGabaritAmount != nil && *p.HorsGabaritAmount < 0 {
		errs.addf("HorsGabaritAmount must not be negative")
	}
	if err := errs.err(); err != nil {
		return parcelVO{}, err
	}
	return parcelVO{
		Weight:            formatWeight(p.Weight),
		InsuranceRange:    insuranceRange,
		DeliveryMode:      mode,
		ReturnReceipt:     false,
		Recommendation:    false,
		HorsGabarit:       p.HorsGabarit,
		InsuranceValue:    p.InsuranceValue,
		HorsGabaritAmount: p.HorsGabaritAmount,
		Instructions:      p.Instructions,
	}, nil
}

//formatWeight drops the decimal part of integral weights
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func (a Address) build(forRecipient bool) (addressVO, error) {
	errs := &schemaErrors{schema: "AddressVO"}
	if forRecipient {
		if a.Name == "" {
			errs.addf("Name is required")
		}
		if a.Surname == "" {
			errs.addf("Surname is required")
		}
		if a.Email == "" {
			errs.addf("email is required")
		}
	}
	if a.Email != "" && !validEmail(a.Email) {
		errs.addf("email %s is not a valid address", a.Email)
	}
	if a.Line2 == "" {
		errs.addf("line2 is required")
	}
	if a.CountryCode == "" {
		errs.addf("countryCode is required")
	} else if !inChoices(a.CountryCode, Countries) {
		errs.addf("countryCode %s is not a valid choice", a.CountryCode)
	}
	if a.City == "" {
		errs.addf("city is required")
	}
	if a.PostalCode == "" {
		errs.addf("postalCode is required")
	}
	if a.Civility != "" && !inChoices(a.Civility, Civilities) {
		errs.addf("Civility %s is not a valid choice", a.Civility)
	}
	if err := errs.err(); err != nil {
		return addressVO{}, err
	}
	return addressVO{
		CompanyName: a.CompanyName,
		Civility:    a.Civility,
		Name:        a.Name,
		Surname:     a.Surname,
		Email:       a.Email,
		Line0:       a.Line0,
		Line1:       a.Line1,
		Line2:       a.Line2,
		Line3:       a.Line3,
		CountryCode: a.CountryCode,
		City:        a.City,
		PostalCode:  a.PostalCode,
		Phone:       a.Phone,
		Mobile:      a.Mobile,
		DoorCode1:   a.DoorCode1,
		DoorCode2:   a.DoorCode2,
		Interphone:  a.Interphone,
	}, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func (r Recipient) build() (destEnvVO, error) {
	address, err := r.Address.build(true)
	if err != nil {
		return destEnvVO{}, err
	}
	return destEnvVO{
		Alert:               defaultAlert,
		CodeBarForReference: false,
		DeliveryError:       false,
		Address:             address,
	}, nil
}

func (s Sender) build() (expEnvVO, error) {
	address, err := s.Address.build(false)
	if err != nil {
		return expEnvVO{}, err
	}
	return expEnvVO{
		Alert:   defaultAlert,
		Address: address,
	}, nil
}
