package colissimo

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

//shape of the envelope as the remote endpoint receives it
type recvEnvelope struct {
	Letter letterVO `xml:"Body>getLetterColissimo>letter"`
}

const successResponse = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
<soapenv:Body>
<ns1:getLetterColissimoResponse xmlns:ns1="http://ws.colissimo.fr">
<return>
<errorID>0</errorID>
<error></error>
<parcelNumber>8R12345678901</parcelNumber>
<PdfUrl>https://ws.colissimo.fr/letters/8R12345678901.pdf</PdfUrl>
</return>
</ns1:getLetterColissimoResponse>
</soapenv:Body>
</soapenv:Envelope>`

const errorResponse = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
<soapenv:Body>
<ns1:getLetterColissimoResponse xmlns:ns1="http://ws.colissimo.fr">
<return>
<errorID>30109</errorID>
<error>Le mot de passe est incorrect</error>
</return>
</ns1:getLetterColissimoResponse>
</soapenv:Body>
</soapenv:Envelope>`

const faultResponse = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
<soapenv:Body>
<soapenv:Fault>
<faultcode>soapenv:Server</faultcode>
<faultstring>Internal error</faultstring>
</soapenv:Fault>
</soapenv:Body>
</soapenv:Envelope>`

func newTestService(t *testing.T, handler http.HandlerFunc) LetterService {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	svc, err := New(ts.URL, ts.URL+"/supervision", testCreds(), nil, nil)
	assert.NoError(t, err)
	return svc
}

func TestGetLetterSuccess(t *testing.T) {
	var received recvEnvelope
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "text/xml")
		data, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, xml.Unmarshal(data, &received))
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		io.WriteString(w, successResponse)
	})

	parcelNumber, pdfURL, err := svc.GetLetter(context.Background(), testServiceCallContext(), testParcel(), testRecipient(), testSender())
	assert.NoError(t, err)
	assert.Equal(t, "8R12345678901", parcelNumber)
	assert.Equal(t, "https://ws.colissimo.fr/letters/8R12345678901.pdf", pdfURL)

	//letter merged from credentials, caller fields and schema constants
	assert.Equal(t, 123, received.Letter.ContractNumber)
	assert.Equal(t, "password", received.Letter.Password)
	assert.Equal(t, "CreatePDFFile", received.Letter.Service.ReturnType)
	assert.Equal(t, "SO", received.Letter.Service.ServiceType)
	assert.Equal(t, "Chuck Norris", received.Letter.Service.CommercialName)
	assert.Equal(t, "10.2", received.Letter.Parcel.Weight)
	assert.Equal(t, "DOM", received.Letter.Parcel.DeliveryMode)
	assert.Equal(t, "00", received.Letter.Parcel.InsuranceRange)
	assert.Equal(t, "none", received.Letter.Dest.Alert)
	assert.Equal(t, "Norris", received.Letter.Dest.Address.Name)
	assert.Equal(t, "Bourg-en-Bresse", received.Letter.Dest.Address.City)
	assert.Equal(t, "none", received.Letter.Exp.Alert)
	assert.Equal(t, "01000", received.Letter.Exp.Address.PostalCode)
}

func TestGetLetterRemoteError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		io.WriteString(w, errorResponse)
	})

	_, _, err := svc.GetLetter(context.Background(), testServiceCallContext(), testParcel(), testRecipient(), testSender())
	assert.Error(t, err)
	var svcErr *ServiceError
	if assert.True(t, errors.As(err, &svcErr)) {
		assert.Equal(t, 30109, svcErr.ErrorID)
		assert.Contains(t, svcErr.Message, "mot de passe")
	}
}

func TestGetLetterFault(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, faultResponse)
	})

	_, _, err := svc.GetLetter(context.Background(), testServiceCallContext(), testParcel(), testRecipient(), testSender())
	assert.Error(t, err)
	var svcErr *ServiceError
	if assert.True(t, errors.As(err, &svcErr)) {
		assert.Contains(t, svcErr.Message, "Internal error")
	}
}

func TestGetLetterWrongStatus(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, _, err := svc.GetLetter(context.Background(), testServiceCallContext(), testParcel(), testRecipient(), testSender())
	assert.Error(t, err)
	var svcErr *ServiceError
	if assert.True(t, errors.As(err, &svcErr)) {
		assert.Contains(t, svcErr.Message, "502")
	}
}

func TestGetLetterNoCallOnInvalidInput(t *testing.T) {
	var calls int
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, _, err := svc.GetLetter(context.Background(), testServiceCallContext(), Parcel{Weight: 31}, testRecipient(), testSender())
	assert.Error(t, err)
	assert.Equal(t, 0, calls)
}

func TestDecodeDebugRawResponse(t *testing.T) {
	makeResponse := func() *http.Response {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       ioutil.NopCloser(strings.NewReader(successResponse)),
		}
	}

	ctx := context.WithValue(context.Background(), HTTPDebug, true)
	decoded, err := decodeGetLetterResponse(ctx, makeResponse())
	assert.NoError(t, err)
	resp := decoded.(GetLetterResponse)
	assert.Equal(t, successResponse, resp.RawResponse)

	decoded, err = decodeGetLetterResponse(context.Background(), makeResponse())
	assert.NoError(t, err)
	resp = decoded.(GetLetterResponse)
	assert.Empty(t, resp.RawResponse)
}

func TestCheckService(t *testing.T) {
	body := "  [OK]  "
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	})

	ok, err := svc.CheckService(context.Background())
	assert.NoError(t, err)
	assert.True(t, ok)

	body = "[KO]"
	ok, err = svc.CheckService(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
}
