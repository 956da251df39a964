package mobiledetect

import "github.com/dmitrymomot/uadetect/pkg/rules"

// Provider serves the baseline tables.
type Provider struct{}

// New returns the baseline rule provider.
func New() *Provider { return &Provider{} }

func (*Provider) PhoneDevices() *rules.Table     { return phoneDevices.Clone() }
func (*Provider) TabletDevices() *rules.Table    { return tabletDevices.Clone() }
func (*Provider) OperatingSystems() *rules.Table { return operatingSystems.Clone() }
func (*Provider) Browsers() *rules.Table         { return browsers.Clone() }
func (*Provider) Properties() *rules.Table       { return properties.Clone() }
func (*Provider) Utilities() *rules.Table        { return utilities.Clone() }
