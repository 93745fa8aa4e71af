/*
Package colissimo is client for the SoColissimo letter web service
https://ws.colissimo.fr/soap.shippingclpV2/services/
*/
package colissimo

import (
	"context"
	"time"
)

//Service URLs
const (
	BaseServiceURL = "https://ws.colissimo.fr/soap.shippingclpV2/services/"
	WSDLURL        = BaseServiceURL + "WSColiPosteLetterService?wsdl"
	EndpointURL    = BaseServiceURL + "WSColiPosteLetterService"
	SupervisionURL = "http://ws.colissimo.fr/supervisionWSShipping/supervision.jsp"
)

// LetterService describes the SoColissimo letter service.
type LetterService interface {
	GetLetter(ctx context.Context, service ServiceCallContext, parcel Parcel, recipient Recipient, sender Sender) (parcelNumber, pdfURL string, err error)
	CheckService(ctx context.Context) (bool, error)
}

// ServiceCallContext represent ServiceCallContextV2 caller fields
type ServiceCallContext struct {
	DateDeposite         time.Time `json:"dateDeposite"`
	CommercialName       string    `json:"commercialName"`
	VATCode              *int      `json:"VATCode,omitempty"`
	VATPercentage        *int      `json:"VATPercentage,omitempty"`
	VATAmount            *int      `json:"VATAmount,omitempty"`
	TransportationAmount *int      `json:"transportationAmount,omitempty"`
	TotalAmount          *int      `json:"totalAmount,omitempty"`
	CommandNumber        string    `json:"commandNumber,omitempty"`
}

// Parcel represent ParcelVO caller fields
type Parcel struct {
	Weight            float64 `json:"weight"`
	DeliveryMode      string  `json:"DeliveryMode,omitempty"`
	HorsGabarit       bool    `json:"horsGabarit,omitempty"`
	InsuranceValue    *int    `json:"insuranceValue,omitempty"`
	HorsGabaritAmount *int    `json:"HorsGabaritAmount,omitempty"`
	Instructions      string  `json:"Instructions,omitempty"`
}

// Address is shared by sender and recipient (AddressVO)
type Address struct {
	Name        string `json:"Name,omitempty"`
	Surname     string `json:"Surname,omitempty"`
	Email       string `json:"email,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Civility    string `json:"Civility,omitempty"`
	//Etage, couloir, escalier, № d'appartement
	Line0 string `json:"line0,omitempty"`
	//Entree, batiment, immeuble, residence
	Line1 string `json:"line1,omitempty"`
	//Numero et libelle de voie
	Line2 string `json:"line2"`
	//Lieu dit ou autre mention
	Line3       string `json:"line3,omitempty"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Phone       string `json:"phone,omitempty"`
	Mobile      string `json:"MobileNumber,omitempty"`
	DoorCode1   string `json:"DoorCode1,omitempty"`
	DoorCode2   string `json:"DoorCode2,omitempty"`
	Interphone  string `json:"Interphone,omitempty"`
}

// Recipient represent DestEnvVO caller fields
type Recipient struct {
	Address Address `json:"addressVO"`
}

// Sender represent ExpEnvVO caller fields
type Sender struct {
	Address Address `json:"addressVO"`
}
