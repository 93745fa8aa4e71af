package colissimo

import "encoding/xml"

//SOAP 1.1 wire format for the WSColiPosteLetterService rpc endpoint

type requestEnvelope struct {
	XMLName xml.Name    `xml:"soapenv:Envelope"`
	NS      string      `xml:"xmlns:soapenv,attr"`
	Body    requestBody `xml:"soapenv:Body"`
}

type requestBody struct {
	GetLetter getLetterColissimo `xml:"getLetterColissimo"`
}

type getLetterColissimo struct {
	Letter letterVO `xml:"letter"`
}

type letterVO struct {
	Password       string               `xml:"password"`
	ContractNumber int                  `xml:"contractNumber"`
	Service        serviceCallContextVO `xml:"service"`
	Parcel         parcelVO             `xml:"parcel"`
	Dest           destEnvVO            `xml:"dest"`
	Exp            expEnvVO             `xml:"exp"`
}

type serviceCallContextVO struct {
	DateDeposite         string `xml:"dateDeposite"`
	DateValidation       string `xml:"dateValidation"`
	ReturnType           string `xml:"returnType"`
	ServiceType          string `xml:"serviceType"`
	CRBT                 bool   `xml:"crbt"`
	PortPaye             bool   `xml:"portPaye"`
	LanguageConsignor    string `xml:"languageConsignor"`
	LanguageConsignee    string `xml:"languageConsignee"`
	CommercialName       string `xml:"commercialName"`
	VATCode              *int   `xml:"VATCode,omitempty"`
	VATPercentage        *int   `xml:"VATPercentage,omitempty"`
	VATAmount            *int   `xml:"VATAmount,omitempty"`
	TransportationAmount *int   `xml:"transportationAmount,omitempty"`
	TotalAmount          *int   `xml:"totalAmount,omitempty"`
	CommandNumber        string `xml:"commandNumber,omitempty"`
}

type parcelVO struct {
	Weight            string `xml:"weight"`
	InsuranceRange    string `xml:"insuranceRange"`
	DeliveryMode      string `xml:"DeliveryMode"`
	ReturnReceipt     bool   `xml:"ReturnReceipt"`
	Recommendation    bool   `xml:"Recommendation"`
	HorsGabarit       bool   `xml:"horsGabarit,omitempty"`
	InsuranceValue    *int   `xml:"insuranceValue,omitempty"`
	HorsGabaritAmount *int   `xml:"HorsGabaritAmount,omitempty"`
	Instructions      string `xml:"Instructions,omitempty"`
}

type addressVO struct {
	CompanyName string `xml:"companyName,omitempty"`
	Civility    string `xml:"Civility,omitempty"`
	Name        string `xml:"Name,omitempty"`
	Surname     string `xml:"Surname,omitempty"`
	Email       string `xml:"email,omitempty"`
	Line0       string `xml:"line0,omitempty"`
	Line1       string `xml:"line1,omitempty"`
	Line2       string `xml:"line2"`
	Line3       string `xml:"line3,omitempty"`
	CountryCode string `xml:"countryCode"`
	City        string `xml:"city"`
	PostalCode  string `xml:"postalCode"`
	Phone       string `xml:"phone,omitempty"`
	Mobile      string `xml:"MobileNumber,omitempty"`
	DoorCode1   string `xml:"DoorCode1,omitempty"`
	DoorCode2   string `xml:"DoorCode2,omitempty"`
	Interphone  string `xml:"Interphone,omitempty"`
}

type destEnvVO struct {
	Alert               string    `xml:"alert"`
	CodeBarForReference bool      `xml:"codeBarForreference"`
	DeliveryError       bool      `xml:"deliveryError"`
	Address             addressVO `xml:"addressVO"`
}

type expEnvVO struct {
	Alert   string    `xml:"alert"`
	Address addressVO `xml:"addressVO"`
}

type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

type responseBody struct {
	GetLetter *getLetterColissimoResponse `xml:"getLetterColissimoResponse"`
	Fault     *soapFault                  `xml:"Fault"`
}

type getLetterColissimoResponse struct {
	Return letterResponse `xml:"return"`
}

type letterResponse struct {
	ErrorID      int    `xml:"errorID"`
	Error        string `xml:"error"`
	ParcelNumber string `xml:"parcelNumber"`
	PDFURL       string `xml:"PdfUrl"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	Detail string `xml:"detail"`
}
