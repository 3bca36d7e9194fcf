package brevo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testLead() Lead {
	return Lead{
		FirstName:   "Amine",
		LastName:    "Baccouche",
		Email:       "amine@example.com",
		Phone:       "20123456",
		CountryCode: "+216",
		Locale:      "fr",
	}
}

func TestSubmitLead_SendsFormFields(t *testing.T) {
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		gotForm = map[string]string{
			"FIRSTNAME":         r.PostForm.Get("FIRSTNAME"),
			"LASTNAME":          r.PostForm.Get("LASTNAME"),
			"EMAIL":             r.PostForm.Get("EMAIL"),
			"SMS":               r.PostForm.Get("SMS"),
			"SMS__COUNTRY_CODE": r.PostForm.Get("SMS__COUNTRY_CODE"),
			"locale":            r.PostForm.Get("locale"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	err := client.SubmitLead(context.Background(), testLead())
	require.NoError(t, err)

	assert.Equal(t, "Amine", gotForm["FIRSTNAME"])
	assert.Equal(t, "amine@example.com", gotForm["EMAIL"])
	assert.Equal(t, "20123456", gotForm["SMS"])
	assert.Equal(t, "+216", gotForm["SMS__COUNTRY_CODE"])
	assert.Equal(t, "fr", gotForm["locale"])
}

func TestSubmitLead_ClientErrorIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	err := client.SubmitLead(context.Background(), testLead())
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSubmitLead_ServerErrorIsTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	// The legacy flow proceeded to the thank-you page regardless of
	// provider outages; the relay keeps that contract.
	err := client.SubmitLead(context.Background(), testLead())
	assert.NoError(t, err)
}

func TestSubmitLead_NetworkError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, nopLogger{})

	err := client.SubmitLead(context.Background(), testLead())
	assert.ErrorIs(t, err, ErrInternal)
}
