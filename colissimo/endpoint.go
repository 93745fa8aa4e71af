package colissimo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
)

// Endpoints collects all of the endpoints that compose the letter
// service client. It's meant to be used as a helper struct, to collect
// all of the endpoints into a single parameter.
type Endpoints struct {
	GetLetterEndpoint    endpoint.Endpoint
	CheckServiceEndpoint endpoint.Endpoint

	creds Credentials
}

//*************** GetLetter

// GetLetterRequest collects the request parameters for the GetLetter method.
type GetLetterRequest struct {
	Letter letterVO
}

//String implementing Stringer interface, keeps the password out of transport logs
func (r GetLetterRequest) String() string {
	return fmt.Sprintf("GetLetterRequest{contract:%d dest:%s %s %s}",
		r.Letter.ContractNumber, r.Letter.Dest.Address.CountryCode, r.Letter.Dest.Address.PostalCode, r.Letter.Dest.Address.City)
}

// GetLetterResponse collects the response parameters for the GetLetter method.
type GetLetterResponse struct {
	Return      *letterResponse
	Fault       *soapFault
	RawResponse string
}

func (r GetLetterResponse) check() error {
	if r.Fault != nil {
		msg := r.Fault.String
		if r.Fault.Code != "" {
			msg = fmt.Sprintf("%s: %s", r.Fault.Code, r.Fault.String)
		}
		return &ServiceError{Message: msg}
	}
	if r.Return == nil {
		return errors.New("Empty response")
	}
	if r.Return.ErrorID != 0 {
		return &ServiceError{ErrorID: r.Return.ErrorID, Message: r.Return.Error}
	}
	return nil
}

// GetLetter implements LetterService. Primarily useful in a client.
// It merges the validated caller fields with the credentials into the
// full letter payload and issues a single synchronous call.
func (e Endpoints) GetLetter(ctx context.Context, service ServiceCallContext, parcel Parcel, recipient Recipient, sender Sender) (string, string, error) {
	letter, err := buildLetter(e.creds, service, parcel, recipient, sender)
	if err != nil {
		return "", "", err
	}
	response, err := e.GetLetterEndpoint(ctx, GetLetterRequest{Letter: letter})
	if err != nil {
		return "", "", err
	}
	resp := response.(GetLetterResponse)
	if err = resp.check(); err != nil {
		return "", "", err
	}
	return resp.Return.ParcelNumber, resp.Return.PDFURL, nil
}

//*************** CheckService

// CheckServiceRequest collects the request parameters for the CheckService method.
type CheckServiceRequest struct{}

// CheckServiceResponse collects the response parameters for the CheckService method.
type CheckServiceResponse struct {
	OK bool
}

// CheckService implements LetterService. Tells if the colissimo
// supervision endpoint reports the service up and healthy.
func (e Endpoints) CheckService(ctx context.Context) (bool, error) {
	response, err := e.CheckServiceEndpoint(ctx, CheckServiceRequest{})
	if err != nil {
		return false, err
	}
	resp := response.(CheckServiceResponse)
	return resp.OK, nil
}
