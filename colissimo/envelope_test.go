package colissimo

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalAmountsOnWire(t *testing.T) {
	//a provided zero is a value, not an omitted field
	service := testServiceCallContext()
	service.VATCode = intp(0)
	service.VATAmount = intp(0)
	service.TransportationAmount = intp(0)
	parcel := testParcel()
	parcel.InsuranceValue = intp(0)

	letter, err := buildLetter(testCreds(), service, parcel, testRecipient(), testSender())
	assert.NoError(t, err)

	data, err := xml.Marshal(letter)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "<VATCode>0</VATCode>")
	assert.Contains(t, string(data), "<VATAmount>0</VATAmount>")
	assert.Contains(t, string(data), "<transportationAmount>0</transportationAmount>")
	assert.Contains(t, string(data), "<insuranceValue>0</insuranceValue>")
}

func TestOptionalAmountsOmitted(t *testing.T) {
	letter, err := buildLetter(testCreds(), testServiceCallContext(), testParcel(), testRecipient(), testSender())
	assert.NoError(t, err)

	data, err := xml.Marshal(letter)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "<VATCode>")
	assert.NotContains(t, string(data), "<VATAmount>")
	assert.NotContains(t, string(data), "<VATPercentage>")
	assert.NotContains(t, string(data), "<transportationAmount>")
	assert.NotContains(t, string(data), "<totalAmount>")
	assert.NotContains(t, string(data), "<insuranceValue>")
	assert.NotContains(t, string(data), "<HorsGabaritAmount>")
}
