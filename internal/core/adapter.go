// Package core contains the orchestration layer of pearlcfg. It ties the
// loaded configuration to the format parsers and builds device request URLs.
package core

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"pearlcfg/internal/keys"
	"pearlcfg/internal/model"
	"pearlcfg/internal/parser"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrUnknownDevice is returned when a device name is not configured.
	ErrUnknownDevice = errors.New("unknown device")
	// ErrInvalidChannel is returned for a channel outside the device's range.
	ErrInvalidChannel = errors.New("invalid channel")
	// ErrUnknownKey is returned when a request names a key outside the registry.
	ErrUnknownKey = errors.New("unknown configuration key")
)

// Adapter converts device responses between formats and builds the admin API
// URLs for the configured devices.
type Adapter struct {
	cfg     *model.Config
	parsers map[string]parser.Parser
	devices map[string]model.DeviceConfig
	log     *slog.Logger
}

// NewAdapter creates an Adapter for cfg and registers every known parser
// format. A nil logger falls back to slog.Default().
func NewAdapter(cfg *model.Config, logger *slog.Logger) *Adapter {
	if cfg == nil {
		cfg = &model.Config{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	a := &Adapter{
		cfg:     cfg,
		parsers: make(map[string]parser.Parser),
		devices: make(map[string]model.DeviceConfig),
		log:     logger,
	}

	// register parser formats
	for _, name := range parser.Formats() {
		p, _ := parser.New(name)
		a.parsers[name] = p
	}

	for _, d := range cfg.Devices {
		if _, dup := a.devices[d.Name]; dup {
			logger.Warn("duplicate device name, keeping last", "device", d.Name)
		}
		a.devices[d.Name] = d
	}
	return a
}

// Parser returns the registered parser for format.
func (a *Adapter) Parser(format string) (parser.Parser, error) {
	p, ok := a.parsers[format]
	if !ok {
		return nil, fmt.Errorf("%w %q", parser.ErrUnknownFormat, format)
	}
	return p, nil
}

// Convert decodes raw with the from format and re-encodes it with to.
func (a *Adapter) Convert(raw, from, to string) (string, error) {
	in, err := a.Parser(from)
	if err != nil {
		return "", err
	}
	out, err := a.Parser(to)
	if err != nil {
		return "", err
	}

	params, err := in.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", from, err)
	}
	a.log.Debug("decoded configuration", "format", from, "entries", len(params))

	s, err := out.Encode(params)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", to, err)
	}
	return s, nil
}

// Device returns the configuration of the named device.
func (a *Adapter) Device(name string) (model.DeviceConfig, error) {
	d, ok := a.devices[name]
	if !ok {
		return model.DeviceConfig{}, fmt.Errorf("%w %q", ErrUnknownDevice, name)
	}
	return d, nil
}

// SetParamsURL builds the request that writes params to a device channel.
func (a *Adapter) SetParamsURL(device string, channel int, params model.Params) (string, error) {
	base, err := a.channelURL(device, channel)
	if err != nil {
		return "", err
	}
	if err := checkKeys(params.Keys()); err != nil {
		return "", err
	}
	return base + "/set_params.cgi" + parser.CreateQueryString(params), nil
}

// GetParamsURL builds the request that reads the given keys from a device
// channel. Keys are de-duplicated and sent in ascending order.
func (a *Adapter) GetParamsURL(device string, channel int, names []string) (string, error) {
	base, err := a.channelURL(device, channel)
	if err != nil {
		return "", err
	}
	if err := checkKeys(names); err != nil {
		return "", err
	}

	set := make(model.Params, len(names))
	for _, n := range names {
		set[n] = ""
	}
	return base + "/get_params.cgi?" + strings.Join(set.Keys(), "&"), nil
}

func (a *Adapter) channelURL(device string, channel int) (string, error) {
	d, err := a.Device(device)
	if err != nil {
		return "", err
	}
	if channel < 1 || channel > d.Channels {
		return "", fmt.Errorf("%w %d for device %q (1..%d)", ErrInvalidChannel, channel, d.Name, d.Channels)
	}
	scheme := d.Scheme
	if scheme == "" {
		scheme = "http"
	}
	return scheme + "://" + d.Address + "/admin/channel" + strconv.Itoa(channel), nil
}

// checkKeys reports every name outside the key registry.
func checkKeys(names []string) error {
	var result *multierror.Error
	for _, n := range names {
		if !keys.IsKey(n) {
			result = multierror.Append(result, fmt.Errorf("%w %q", ErrUnknownKey, n))
		}
	}
	return result.ErrorOrNil()
}
