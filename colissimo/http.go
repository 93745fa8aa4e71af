package colissimo

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io/ioutil"
	http1 "net/http"
	"net/url"
	"strings"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/transport/http"
)

// HTTPDebug is the context key that requests raw response dumps.
var HTTPDebug ContextKey

// ContextKey is just an empty struct. It exists so HTTPDebug can be
// an immutable public variable with a unique type. It's immutable
// because nobody else can create a ContextKey, being unexported.
type ContextKey struct{}

const soapNS = "http://schemas.xmlsoap.org/soap/envelope/"

// New returns a LetterService backed by the remote web service.
// Empty instance or supervision fall back on the production
// EndpointURL / SupervisionURL.
func New(instance, supervision string, creds Credentials, options map[string][]http.ClientOption, mdw map[string][]endpoint.Middleware) (LetterService, error) {
	if instance == "" {
		instance = EndpointURL
	}
	if supervision == "" {
		supervision = SupervisionURL
	}
	if !strings.HasPrefix(instance, "http") {
		instance = "http://" + instance
	}
	u, err := url.Parse(instance)
	if err != nil {
		return nil, err
	}
	su, err := url.Parse(supervision)
	if err != nil {
		return nil, err
	}
	var getLetterEndpoint endpoint.Endpoint
	{
		getLetterEndpoint = http.NewClient("POST", u, encodeGetLetterRequest, decodeGetLetterResponse, options["GetLetter"]...).Endpoint()
		for _, m := range mdw["GetLetter"] {
			getLetterEndpoint = m(getLetterEndpoint)
		}
	}
	var checkServiceEndpoint endpoint.Endpoint
	{
		checkServiceEndpoint = http.NewClient("GET", su, encodeCheckServiceRequest, decodeCheckServiceResponse, options["CheckService"]...).Endpoint()
		for _, m := range mdw["CheckService"] {
			checkServiceEndpoint = m(checkServiceEndpoint)
		}
	}

	return Endpoints{
		GetLetterEndpoint:    getLetterEndpoint,
		CheckServiceEndpoint: checkServiceEndpoint,
		creds:                creds,
	}, nil
}

func encodeGetLetterRequest(_ context.Context, r *http1.Request, request interface{}) error {
	req := request.(GetLetterRequest)
	envelope := requestEnvelope{
		NS:   soapNS,
		Body: requestBody{GetLetter: getLetterColissimo{Letter: req.Letter}},
	}
	buffer := new(bytes.Buffer)
	buffer.WriteString(xml.Header)
	if err := xml.NewEncoder(buffer).Encode(envelope); err != nil {
		return err
	}
	r.Header.Set("Content-Type", "text/xml; charset=utf-8")
	r.Header.Set("SOAPAction", `""`)
	r.Body = ioutil.NopCloser(buffer)
	return nil
}

func decodeGetLetterResponse(ctx context.Context, r *http1.Response) (interface{}, error) {
	//SOAP faults come back with status 500, keep the body in that case
	if r.StatusCode != http1.StatusOK && r.StatusCode != http1.StatusInternalServerError {
		return nil, statusError(r.StatusCode)
	}
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	var resp GetLetterResponse
	if isDebugSet(ctx) {
		resp.RawResponse = string(data)
		fmt.Println(resp.RawResponse)
	}
	var envelope responseEnvelope
	if err := xml.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("error while decoding SOAP envelope: %w", err)
	}
	resp.Fault = envelope.Body.Fault
	if envelope.Body.GetLetter != nil {
		ret := envelope.Body.GetLetter.Return
		resp.Return = &ret
	}
	return resp, nil
}

func encodeCheckServiceRequest(_ context.Context, r *http1.Request, request interface{}) error {
	return nil
}

func decodeCheckServiceResponse(_ context.Context, r *http1.Response) (interface{}, error) {
	if r.StatusCode != http1.StatusOK {
		return CheckServiceResponse{OK: false}, nil
	}
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return CheckServiceResponse{OK: strings.TrimSpace(string(data)) == "[OK]"}, nil
}

func statusError(code int) error {
	return &ServiceError{Message: fmt.Sprintf("Wrong http status %d. %s", code, http1.StatusText(code))}
}

func isDebugSet(ctx context.Context) bool {
	if ctx != nil {
		if debug, ok := ctx.Value(HTTPDebug).(bool); ok {
			return debug
		}
	}
	return false
}
