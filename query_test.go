package patternsapi

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwbench/patterns-api/serializer"
)

func TestRequestSerializer(t *testing.T) {
	s, err := requestSerializer(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, serializer.FormatJSON, s.Format())

	s, err = requestSerializer(url.Values{"format": {"xml"}})
	require.NoError(t, err)
	assert.Equal(t, serializer.FormatXML, s.Format())

	_, err = requestSerializer(url.Values{"format": {"toml"}})
	var ufe *serializer.UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "toml", ufe.Value)
}

func TestParseLimit(t *testing.T) {
	v, err := parseLimit(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, defaultListLimit, v)

	v, err = parseLimit(url.Values{"limit": {"10"}})
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = parseLimit(url.Values{"limit": {"9999"}})
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, v)

	for _, bad := range []string{"0", "-5", "ten"} {
		_, err := parseLimit(url.Values{"limit": {bad}})
		var qe *QueryError
		assert.ErrorAs(t, err, &qe, "limit %q", bad)
	}
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "10.1.2.3", clientKey(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientKey(r))
}

func TestClientLimiter(t *testing.T) {
	l := NewClientLimiter(1, 2)

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst of 2 exhausted")
	assert.True(t, l.Allow("b"), "separate clients have separate buckets")
}
