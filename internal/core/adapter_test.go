package core

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"pearlcfg/internal/model"
	"pearlcfg/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	cfg := &model.Config{
		Devices: []model.DeviceConfig{
			{Name: "pearl-1", Address: "192.168.1.10", Scheme: "http", Channels: 2},
			{Name: "pearl-2", Address: "pearl2.local:8443", Scheme: "https", Channels: 1},
		},
	}
	return NewAdapter(cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestAdapter_Convert(t *testing.T) {
	a := newTestAdapter(t)

	tests := []struct {
		name     string
		raw      string
		from, to string
		expected string
	}{
		{
			name:     "response to query",
			raw:      "slicemode = on audiopreset = test",
			from:     "response",
			to:       "query",
			expected: "?audiopreset=test&slicemode=on",
		},
		{
			name:     "response to json",
			raw:      "framesize = 1920x1080 autoframesize = codec = h264",
			from:     "response",
			to:       "json",
			expected: "{\n  \"autoframesize\": \"\",\n  \"codec\": \"h264\",\n  \"framesize\": \"1920x1080\"\n}",
		},
		{
			name:     "query to response",
			raw:      "?vbitrate=4000&codec=h264",
			from:     "query",
			to:       "response",
			expected: "codec = h264 vbitrate = 4000",
		},
		{
			name:     "empty response to query",
			raw:      "",
			from:     "response",
			to:       "query",
			expected: "?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := a.Convert(tt.raw, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestAdapter_ConvertErrors(t *testing.T) {
	a := newTestAdapter(t)

	_, err := a.Convert("x", "csv", "json")
	assert.True(t, errors.Is(err, parser.ErrUnknownFormat))

	_, err = a.Convert("x", "json", "xml")
	assert.True(t, errors.Is(err, parser.ErrUnknownFormat))

	_, err = a.Convert("not json", "json", "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json")
}

func TestAdapter_SetParamsURL(t *testing.T) {
	a := newTestAdapter(t)

	u, err := a.SetParamsURL("pearl-1", 2, model.Params{"slicemode": "on", "audiopreset": "test"})
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.10/admin/channel2/set_params.cgi?audiopreset=test&slicemode=on", u)

	u, err = a.SetParamsURL("pearl-2", 1, model.Params{})
	require.NoError(t, err)
	assert.Equal(t, "https://pearl2.local:8443/admin/channel1/set_params.cgi?", u)
}

func TestAdapter_GetParamsURL(t *testing.T) {
	a := newTestAdapter(t)

	u, err := a.GetParamsURL("pearl-1", 1, []string{"vbitrate", "framesize", "vbitrate"})
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.10/admin/channel1/get_params.cgi?framesize&vbitrate", u)
}

func TestAdapter_URLErrors(t *testing.T) {
	a := newTestAdapter(t)

	_, err := a.SetParamsURL("pearl-9", 1, model.Params{"codec": "h264"})
	assert.True(t, errors.Is(err, ErrUnknownDevice))

	_, err = a.SetParamsURL("pearl-1", 0, model.Params{"codec": "h264"})
	assert.True(t, errors.Is(err, ErrInvalidChannel))

	_, err = a.GetParamsURL("pearl-2", 2, []string{"codec"})
	assert.True(t, errors.Is(err, ErrInvalidChannel))

	_, err = a.SetParamsURL("pearl-1", 1, model.Params{"codec": "h264", "bogus": "1", "other": "2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKey))
	assert.Contains(t, err.Error(), `"bogus"`)
	assert.Contains(t, err.Error(), `"other"`)

	_, err = a.GetParamsURL("pearl-1", 1, []string{"no_key"})
	assert.True(t, errors.Is(err, ErrUnknownKey))
}

func TestNewAdapter_NilConfig(t *testing.T) {
	a := NewAdapter(nil, nil)

	_, err := a.Device("anything")
	assert.True(t, errors.Is(err, ErrUnknownDevice))

	p, err := a.Parser("response")
	require.NoError(t, err)
	params, err := p.Decode("type = 2 type = 6")
	require.NoError(t, err)
	assert.Equal(t, model.Params{"type": "6"}, params)
}
